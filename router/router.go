package router

import (
	"fmt"

	"git.fiblab.net/sim/routeplanner/router/algo"
)

type Router struct {
	// 路网图，读入后结构不变，仅弧代价随代价模型改变
	graph *algo.Graph
}

func New(graph *algo.Graph) *Router {
	return &Router{graph: graph}
}

// 切换代价模型，所有弧的代价重新计算
// 与进行中的查询互斥，切换期间查询会等待
func (r *Router) SetCostModel(kind string, maxVehicleSpeed float64) error {
	switch kind {
	case COST_MODEL_DISTANCE:
		r.graph.SetArcCostsToDistance()
	case COST_MODEL_TRAVEL_TIME:
		if err := r.graph.SetArcCostsToTravelTime(maxVehicleSpeed); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown cost model %q", algo.ErrInvalidParameter, kind)
	}
	log.Infof("cost model set to %s (max vehicle speed %v)", kind, r.graph.CostModel().SpeedCap())
	return nil
}

// getter

func (r *Router) Graph() *algo.Graph {
	return r.graph
}

func (r *Router) CostModel() string {
	return r.graph.CostModel().Name()
}

func (r *Router) NodeCount() int {
	return r.graph.NodeCount()
}

func (r *Router) HasNodeID(id int) bool {
	return r.graph.HasNode(id)
}

// close
func (r *Router) Close() {}
