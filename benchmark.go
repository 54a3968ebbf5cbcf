package main

import (
	"context"
	"flag"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"math/rand"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"
)

var (
	benchmarkCount = flag.Int("benchmark.count", 1000, "the random routing count for benchmark")
	benchmarkSeed  = flag.Int64("benchmark.seed", 0, "the seed for benchmark")
	benchmarkCPU   = flag.Int("benchmark.cpu", 1, "the cpu count for benchmark")
)

type benchmarkResult struct {
	count   int
	success int32
	elapsed time.Duration
}

func runBenchmark(server *RoutePlannerServer) benchmarkResult {
	log.Logger.SetLevel(logrus.WarnLevel)
	// 设置随机种子
	e := rand.New(rand.NewSource(*benchmarkSeed))
	// 随机生成benchmarkCount个路径规划请求，每个请求的起点和终点都是随机的
	n := server.router.NodeCount()
	if n == 0 || *benchmarkCount <= 0 {
		log.Warn("benchmark skipped: empty graph or no request")
		return benchmarkResult{}
	}
	reqs := make([]*connect.Request[GetRouteRequest], *benchmarkCount)
	for i := 0; i < *benchmarkCount; i++ {
		reqs[i] = connect.NewRequest(&GetRouteRequest{
			Start: e.Intn(n),
			End:   e.Intn(n),
		})
	}

	// 开始benchmark
	start := time.Now()
	var wg sync.WaitGroup
	var success atomic.Int32
	handle := func(req *connect.Request[GetRouteRequest]) {
		res, err := server.GetRoute(context.Background(), req)
		if err != nil {
			log.Error("benchmark failed, err:", err)
			return
		}
		if res.Msg.Route != nil {
			success.Add(1)
		}
	}
	if *benchmarkCPU == 1 {
		for _, req := range reqs {
			handle(req)
		}
	} else {
		// 设置cpu数量
		runtime.GOMAXPROCS(*benchmarkCPU)
		wg.Add(*benchmarkCount)
		for _, req := range reqs {
			go func(req *connect.Request[GetRouteRequest]) {
				defer wg.Done()
				handle(req)
			}(req)
		}
		wg.Wait()
	}
	timeCost := time.Since(start) * time.Duration(*benchmarkCPU)
	log.Error(
		"benchmark finished", "\n",
		"count:", *benchmarkCount, "\n",
		"time:", timeCost, "\n",
		"avg:", timeCost/time.Duration(*benchmarkCount), "\n",
		"success:", success.Load(), "\n",
	)
	return benchmarkResult{count: *benchmarkCount, success: success.Load(), elapsed: timeCost}
}
