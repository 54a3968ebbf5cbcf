package router

import (
	"fmt"

	"git.fiblab.net/sim/routeplanner/router/algo"
)

func (r *Router) checkNodeID(name string, id int) error {
	if !r.graph.HasNode(id) {
		return fmt.Errorf("%w: %s node %d not in [0, %d)", algo.ErrOutOfRange, name, id, r.graph.NodeCount())
	}
	return nil
}

// 计算start到end的最短路
// 每次查询使用独立的SearchContext，可以并发调用
func (r *Router) SearchRoute(start, end int) (route *Route, err error) {
	// panic recover
	defer func() {
		if e := recover(); e != nil {
			route = nil
			err = fmt.Errorf("panic: SearchRoute %v with input start=%v, end=%v", e, start, end)
			log.Errorln(err)
		}
	}()

	if err := r.checkNodeID("start", start); err != nil {
		return nil, err
	}
	if err := r.checkNodeID("end", end); err != nil {
		return nil, err
	}
	c, err := r.graph.ComputeShortestPaths(start)
	if err != nil {
		return nil, err
	}
	if !c.Reached(end) {
		log.Debugf("routing failed, no path between node %v and node %v", start, end)
		return nil, ErrNoPath
	}
	return routeFromContext(c, end), nil
}

func routeFromContext(c *algo.SearchContext, end int) *Route {
	model := c.CostModel()
	distanceKm, hours := c.TravelTo(end, model.SpeedCap())
	return &Route{
		Start:       c.Start(),
		End:         end,
		CostModel:   model.Name(),
		Cost:        c.Distance(end),
		NodeIDs:     c.NodePathTo(end),
		DistanceKm:  distanceKm,
		TravelHours: hours,
	}
}

// 从start出发代价最大的可达节点及其路径
func (r *Router) FurthestFrom(start int) (*Route, error) {
	if err := r.checkNodeID("start", start); err != nil {
		return nil, err
	}
	c, err := r.graph.ComputeShortestPaths(start)
	if err != nil {
		return nil, err
	}
	return routeFromContext(c, c.FurthestNode()), nil
}

// 从start出发可到达的所有节点
func (r *Router) Reachable(start int) (*NodeSet, error) {
	if err := r.checkNodeID("start", start); err != nil {
		return nil, err
	}
	ids, err := r.graph.ReachableNodes(start)
	if err != nil {
		return nil, err
	}
	return &NodeSet{Size: len(ids), NodeIDs: ids}, nil
}

// 最大连通分量
func (r *Router) LargestComponent() *NodeSet {
	size, ids := r.graph.ComputeLargestConnectedComponent()
	return &NodeSet{Size: size, NodeIDs: ids}
}
