package router

import (
	"errors"
	"fmt"

	"git.fiblab.net/sim/routeplanner/router/algo"
)

const (
	COST_MODEL_DISTANCE    = "distance"
	COST_MODEL_TRAVEL_TIME = "travel_time"
)

var (
	// 错误：起点无法到达终点
	ErrNoPath = errors.New("routing failed: no path")
)

// 一次路径查询的结果
type Route struct {
	Start       int
	End         int
	CostModel   string
	Cost        int64   // 按代价模型计算的总代价（米或秒）
	NodeIDs     []int   // 依次经过的节点，含起终点
	DistanceKm  float64 // 总长度（km）
	TravelHours float64 // 总用时（h）
}

func (r *Route) TravelTime() string {
	return algo.FormatTravelTime(r.TravelHours)
}

func (r *Route) String() string {
	return fmt.Sprintf("Distance: %.3f km\tTime: %s", r.DistanceKm, r.TravelTime())
}

// 连通分量或可达集合
type NodeSet struct {
	Size    int
	NodeIDs []int
}
