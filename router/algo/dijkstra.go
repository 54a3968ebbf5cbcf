package algo

import (
	"container/heap"
	"fmt"

	"github.com/samber/lo"
)

// 单次最短路计算的临时状态，与图分离，不同的SearchContext可以并发使用同一张图
// 同一个SearchContext不能被并发使用
type SearchContext struct {
	g *Graph
	// 最近一次计算的起点，-1表示尚未计算
	start int
	// 计算时使用的代价模型
	model CostModel

	dist    []int64 // 暂定距离，Unreached表示未到达
	settled []bool
	parent  []int // 回溯弧在g.arcs中的下标，NoArc表示无
	pq      PriorityQueue
}

func NewSearchContext(g *Graph) *SearchContext {
	n := g.NodeCount()
	c := &SearchContext{
		g:       g,
		dist:    make([]int64, n),
		settled: make([]bool, n),
		parent:  make([]int, n),
		pq:      make(PriorityQueue, 0),
	}
	c.Reset()
	return c
}

// 清空所有节点的临时状态
func (c *SearchContext) Reset() {
	c.start = -1
	c.model = nil
	for i := range c.dist {
		c.dist[i] = Unreached
		c.settled[i] = false
		c.parent[i] = NoArc
	}
	c.pq = c.pq[:0]
}

// 新建SearchContext并计算从start出发的最短路
func (g *Graph) ComputeShortestPaths(start int) (*SearchContext, error) {
	c := NewSearchContext(g)
	if err := c.ComputeShortestPaths(start); err != nil {
		return nil, err
	}
	return c, nil
}

// Dijkstra算法，计算从start到所有节点的最短距离
// 堆中不做decrease-key，距离变小时重新入堆，弹出已settled的节点直接丢弃
// 弧代价为负时结果无定义
func (c *SearchContext) ComputeShortestPaths(start int) error {
	if !c.g.HasNode(start) {
		return fmt.Errorf("%w: start node %d not in [0, %d)", ErrOutOfRange, start, c.g.NodeCount())
	}
	g := c.g
	token := g.mu.RLock()
	defer g.mu.RUnlock(token)

	c.Reset()
	c.start = start
	c.model = g.model
	c.dist[start] = 0
	heap.Push(&c.pq, &Item{Value: start, Priority: 0})
	for c.pq.Len() > 0 {
		cur := heap.Pop(&c.pq).(*Item).Value
		if c.settled[cur] {
			// 过期的重复项
			continue
		}
		c.settled[cur] = true
		for _, i := range g.adj[cur] {
			arc := &g.arcs[i]
			head := arc.Head
			if c.settled[head] {
				continue
			}
			candidate := c.dist[cur] + arc.Cost
			if c.dist[head] == Unreached || candidate < c.dist[head] {
				c.dist[head] = candidate
				c.parent[head] = i
				heap.Push(&c.pq, &Item{Value: head, Priority: candidate})
			}
		}
	}
	return nil
}

func (c *SearchContext) Start() int {
	return c.start
}

// 计算时使用的代价模型，尚未计算时为nil
func (c *SearchContext) CostModel() CostModel {
	return c.model
}

// 最短距离，未到达时为Unreached
func (c *SearchContext) Distance(id int) int64 {
	return c.dist[id]
}

func (c *SearchContext) Reached(id int) bool {
	return c.dist[id] != Unreached
}

func (c *SearchContext) Settled(id int) bool {
	return c.settled[id]
}

// 到达id所经过的最后一条弧
func (c *SearchContext) Parent(id int) (Arc, bool) {
	if c.parent[id] == NoArc {
		return Arc{}, false
	}
	token := c.g.mu.RLock()
	defer c.g.mu.RUnlock(token)
	return c.g.arcs[c.parent[id]], true
}

// 所有节点的最短距离，下标为节点id
func (c *SearchContext) Distances() []int64 {
	return append([]int64(nil), c.dist...)
}

// 沿回溯弧重建从起点到target的路径，按行进顺序返回经过的弧
// target未到达或为起点时返回空
func (c *SearchContext) PathTo(target int) []Arc {
	token := c.g.mu.RLock()
	defer c.g.mu.RUnlock(token)
	arcsBeforeReversed := make([]Arc, 0)
	for cur := target; c.parent[cur] != NoArc; {
		arc := c.g.arcs[c.parent[cur]]
		arcsBeforeReversed = append(arcsBeforeReversed, arc)
		cur = arc.Tail
	}
	return lo.Reverse(arcsBeforeReversed)
}

// 从起点到target经过的节点id，target未到达时返回nil
func (c *SearchContext) NodePathTo(target int) []int {
	if !c.Reached(target) {
		return nil
	}
	return append([]int{c.start}, lo.Map(c.PathTo(target), func(a Arc, _ int) int {
		return a.Head
	})...)
}

// 统计到target路径的总长度（km）与总用时（h），车速取弧限速与speedCap的较小者
// 调用前应检查target是否可达
func (c *SearchContext) TravelTo(target int, speedCap float64) (distanceKm float64, hours float64) {
	for _, arc := range c.PathTo(target) {
		distanceKm += float64(arc.Distance) / 1000
		hours += ArcTravelHours(&arc, speedCap)
	}
	return
}

// 距离最远的已到达节点，相同时取id较小者；尚未计算时返回-1
func (c *SearchContext) FurthestNode() int {
	maxDist, furthest := Unreached, -1
	for id, d := range c.dist {
		if d > maxDist {
			maxDist, furthest = d, id
		}
	}
	return furthest
}
