package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var (
	// 配置信息
	mongoURI        = flag.String("mongo_uri", "", "mongo db uri")
	graphPathStr    = flag.String("graph", "", "road graph file or database and collection [format: {fspath} or {db}.{col}]")
	directed        = flag.Bool("directed", true, "treat arcs as one-way; false adds the reverse of every arc")
	costModel       = flag.String("cost-model", "distance", "initial arc cost model [distance, travel_time]")
	maxVehicleSpeed = flag.Float64("max-speed", 130, "max vehicle speed in km/h for the travel_time cost model")
	planPath        = flag.String("plan", "", "HCL query plan file; run it and exit instead of serving")
	grpcEndpoint    = flag.String("listen", "localhost:52111", "connect listening address")
	logLevel        = flag.String("log-level", "info", "log level [debug, info, warn, error, fatal, panic]")

	// 性能测试
	benchmark = flag.Bool("benchmark", false, "benchmark mode")
	pprofAddr = flag.String("pprof", "localhost:52112", "pprof listening address")

	LOG_LEVELS = map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"fatal": logrus.FatalLevel,
		"panic": logrus.PanicLevel,
	}
)

func main() {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	flag.Parse()
	if level, ok := LOG_LEVELS[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		logrus.Fatalf("invalid log level: %s", *logLevel)
	}

	graphPath, err := NewPath(*graphPathStr)
	if err != nil {
		log.Fatalf("invalid graph path: %s", err)
	}
	r, err := LoadRouter(*mongoURI, graphPath, *directed)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := r.SetCostModel(*costModel, *maxVehicleSpeed); err != nil {
		log.Fatalf("invalid cost model: %v", err)
	}

	if *planPath != "" {
		// 批量查询
		plan, err := LoadPlan(*planPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if _, err := RunPlan(r, plan); err != nil {
			log.Fatalf("failed to run plan: %v", err)
		}
		return
	}

	// 启动导航服务
	server := NewRoutePlannerServer(r)

	if *pprofAddr != "" {
		// 启动pprof
		startHTTPDebugger(*pprofAddr)
	}

	if *benchmark {
		// 性能测试
		runBenchmark(server)
		return
	}

	addr := *grpcEndpoint
	// 使用HTTP/2 w.o. TLS
	s := &http.Server{
		Addr:    addr,
		Handler: h2c.NewHandler(server.Handler(), &http2.Server{}),
	}

	// 优雅退出
	// 创建监听退出chan
	signalCh := make(chan os.Signal, 1)
	//监听指定信号 ctrl+c kill
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		log.Info("stopping...")
		go func() {
			<-signalCh
			os.Exit(1) // 强制结束
		}()
		// 暂停接收新查询
		server.Suspend()
		s.Close()
		// 退出导航服务
		server.Close()
		os.Exit(0)
	}()

	log.Infof("server listening at %v", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("failed to serve: %v", err)
	}
	time.Sleep(1 * time.Second) // 延迟等待"优雅退出"
	log.Info("routeplanner closes")
}
