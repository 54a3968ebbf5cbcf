package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"connectrpc.com/connect"
	"git.fiblab.net/general/common/v2/mongoutil"
	"git.fiblab.net/sim/routeplanner/router"
	"git.fiblab.net/sim/routeplanner/router/algo"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoutePlannerServer struct {
	router *router.Router

	// 接口开启true或关闭false
	ok bool
	// 条件变量
	cond *sync.Cond
}

// 读入路网，graphPath为文件时按文本格式读入，否则从mongo读入
func LoadRouter(mongoURI string, graphPath *Path, directed bool) (*router.Router, error) {
	if graphPath == nil {
		return nil, errors.New("no graph source")
	}
	var g *algo.Graph
	var err error
	if graphPath.IsFile() {
		g, err = router.LoadGraphFromFile(graphPath.File, directed)
	} else {
		var client *mongo.Client = mongoutil.NewClient(mongoURI)
		defer client.Disconnect(context.Background())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		g, err = router.LoadGraphFromMongo(ctx, mongoutil.GetMongoColl(client, graphPath), directed)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load graph from %s: %w", graphPath, err)
	}
	return router.New(g), nil
}

func NewRoutePlannerServer(r *router.Router) *RoutePlannerServer {
	return &RoutePlannerServer{
		router: r,
		ok:     true, cond: sync.NewCond(&sync.Mutex{})}
}

// 注册所有connect接口与健康检查
func (s *RoutePlannerServer) Handler() http.Handler {
	opts := []connect.HandlerOption{connect.WithCodec(jsonCodec{})}
	m := mux.NewRouter()
	m.Handle(GetRouteProcedure, connect.NewUnaryHandler(GetRouteProcedure, s.GetRoute, opts...))
	m.Handle(GetReachableProcedure, connect.NewUnaryHandler(GetReachableProcedure, s.GetReachable, opts...))
	m.Handle(GetLargestComponentProcedure, connect.NewUnaryHandler(GetLargestComponentProcedure, s.GetLargestComponent, opts...))
	m.Handle(GetFurthestNodeProcedure, connect.NewUnaryHandler(GetFurthestNodeProcedure, s.GetFurthestNode, opts...))
	m.Handle(SetCostModelProcedure, connect.NewUnaryHandler(SetCostModelProcedure, s.SetCostModel, opts...))
	m.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %d nodes\n", s.router.NodeCount())
	}).Methods(http.MethodGet)
	return m
}

// 暂停-恢复机制
func (s *RoutePlannerServer) wait() {
	s.cond.L.Lock()
	for !s.ok {
		// 暂停中
		s.cond.Wait()
	}
	s.cond.L.Unlock()
}

func toConnectError(err error) error {
	if errors.Is(err, algo.ErrOutOfRange) || errors.Is(err, algo.ErrInvalidParameter) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

func toRouteBody(r *router.Route) *RouteBody {
	return &RouteBody{
		NodeIds:     r.NodeIDs,
		CostModel:   r.CostModel,
		Cost:        r.Cost,
		DistanceKm:  r.DistanceKm,
		TravelHours: r.TravelHours,
		TravelTime:  r.TravelTime(),
	}
}

func (s *RoutePlannerServer) GetRoute(
	ctx context.Context,
	req *connect.Request[GetRouteRequest],
) (*connect.Response[GetRouteResponse], error) {
	s.wait()
	in := req.Msg
	log.Debugf("Search route from %v to %v", in.Start, in.End)
	route, err := s.router.SearchRoute(in.Start, in.End)
	if err != nil {
		if errors.Is(err, router.ErrNoPath) {
			// 无法找到通路，返回空响应
			return connect.NewResponse(&GetRouteResponse{}), nil
		}
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetRouteResponse{Route: toRouteBody(route)}), nil
}

func (s *RoutePlannerServer) GetReachable(
	ctx context.Context,
	req *connect.Request[GetReachableRequest],
) (*connect.Response[GetReachableResponse], error) {
	s.wait()
	set, err := s.router.Reachable(req.Msg.Start)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetReachableResponse{Count: set.Size, NodeIds: set.NodeIDs}), nil
}

func (s *RoutePlannerServer) GetLargestComponent(
	ctx context.Context,
	req *connect.Request[GetLargestComponentRequest],
) (*connect.Response[GetLargestComponentResponse], error) {
	s.wait()
	set := s.router.LargestComponent()
	return connect.NewResponse(&GetLargestComponentResponse{Size: set.Size, NodeIds: set.NodeIDs}), nil
}

func (s *RoutePlannerServer) GetFurthestNode(
	ctx context.Context,
	req *connect.Request[GetFurthestNodeRequest],
) (*connect.Response[GetFurthestNodeResponse], error) {
	s.wait()
	route, err := s.router.FurthestFrom(req.Msg.Start)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetFurthestNodeResponse{NodeId: route.End, Route: toRouteBody(route)}), nil
}

func (s *RoutePlannerServer) SetCostModel(
	ctx context.Context,
	req *connect.Request[SetCostModelRequest],
) (*connect.Response[SetCostModelResponse], error) {
	in := req.Msg
	if err := s.router.SetCostModel(in.CostModel, in.MaxVehicleSpeed); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SetCostModelResponse{CostModel: s.router.CostModel()}), nil
}

// 暂停导航服务
func (s *RoutePlannerServer) Suspend() {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	s.ok = false
}

// 恢复导航服务
func (s *RoutePlannerServer) Resume() {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	s.ok = true
	s.cond.Broadcast()
}

// 关闭导航服务
func (s *RoutePlannerServer) Close() {
	s.router.Close()
}
