package algo

import (
	"fmt"
	"math"
)

// 弧代价模型
type CostModel interface {
	Name() string
	ArcCost(a *Arc) int64
	// 统计路径用时时使用的车速上限（km/h）
	SpeedCap() float64
}

// 代价为长度（米）
type DistanceCost struct{}

func (DistanceCost) Name() string {
	return "distance"
}

func (DistanceCost) ArcCost(a *Arc) int64 {
	return a.Distance
}

func (DistanceCost) SpeedCap() float64 {
	return UnlimitedSpeed
}

// 代价为通行时间（整秒），车速取弧限速与车辆最高速度的较小者
type TravelTimeCost struct {
	maxVehicleSpeed float64
}

func NewTravelTimeCost(maxVehicleSpeed float64) (TravelTimeCost, error) {
	if !(maxVehicleSpeed > 0) {
		return TravelTimeCost{}, fmt.Errorf("%w: max vehicle speed must be > 0, got %v", ErrInvalidParameter, maxVehicleSpeed)
	}
	return TravelTimeCost{maxVehicleSpeed: maxVehicleSpeed}, nil
}

func (TravelTimeCost) Name() string {
	return "travel_time"
}

func (c TravelTimeCost) ArcCost(a *Arc) int64 {
	speed := math.Min(float64(a.MaxSpeed), c.maxVehicleSpeed)
	// math.Round: 四舍五入，0.5远离0
	return int64(math.Round(float64(a.Distance) / (speed / KMH_PER_MPS)))
}

func (c TravelTimeCost) SpeedCap() float64 {
	return c.maxVehicleSpeed
}

// 用新的代价模型重新计算所有弧的代价，与进行中的最短路计算互斥
func (g *Graph) ApplyCostModel(m CostModel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.arcs {
		g.arcs[i].Cost = m.ArcCost(&g.arcs[i])
	}
	g.model = m
	log.Debugf("arc costs set to %s for %d arcs", m.Name(), len(g.arcs))
}

func (g *Graph) SetArcCostsToDistance() {
	g.ApplyCostModel(DistanceCost{})
}

func (g *Graph) SetArcCostsToTravelTime(maxVehicleSpeed float64) error {
	m, err := NewTravelTimeCost(maxVehicleSpeed)
	if err != nil {
		return err
	}
	g.ApplyCostModel(m)
	return nil
}

func (g *Graph) CostModel() CostModel {
	token := g.mu.RLock()
	defer g.mu.RUnlock(token)
	return g.model
}
