package algo

import (
	"fmt"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"
)

// 路网图，读入完成后结构不再变化
type Graph struct {
	// 节点，下标即节点id
	nodes []Node
	// 所有弧，无向图中的反向弧单独存储
	arcs []Arc
	// 邻接表，node id -> 出弧在arcs中的下标（按插入顺序）
	// Runtime期间结构不变，但arc cost会随代价模型改变，因此需要考虑并发问题
	adj [][]int
	// AddArc的调用次数，即文件头中的弧数
	numArcs int
	// 是否已经从文件读入过
	loaded bool
	// 当前代价模型
	model CostModel

	mu *xsync.RBMutex
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make([]Node, 0),
		arcs:  make([]Arc, 0),
		adj:   make([][]int, 0),
		model: DistanceCost{},
		mu:    xsync.NewRBMutex(),
	}
}

// 加入节点，id必须是下一个连续的id
func (g *Graph) AddNode(id int, lat, lon float64) error {
	if id != len(g.nodes) {
		return fmt.Errorf("%w: node id %d is not the next dense id %d", ErrMalformedInput, id, len(g.nodes))
	}
	g.nodes = append(g.nodes, Node{ID: id, P: geometry.Point{X: lon, Y: lat}})
	g.adj = append(g.adj, make([]int, 0))
	return nil
}

// 加入弧，directed为false时同时在head的邻接表中加入反向弧
func (g *Graph) AddArc(tail, head int, distance, maxSpeed int64, directed bool) error {
	if !g.HasNode(tail) {
		return fmt.Errorf("%w: arc tail %d not in [0, %d)", ErrOutOfRange, tail, len(g.nodes))
	}
	if !g.HasNode(head) {
		return fmt.Errorf("%w: arc head %d not in [0, %d)", ErrOutOfRange, head, len(g.nodes))
	}
	if distance < 0 {
		return fmt.Errorf("%w: arc %d->%d has negative distance %d", ErrMalformedInput, tail, head, distance)
	}
	if maxSpeed <= 0 {
		return fmt.Errorf("%w: arc %d->%d has non-positive max speed %d", ErrMalformedInput, tail, head, maxSpeed)
	}
	g.appendArc(Arc{Tail: tail, Head: head, Distance: distance, MaxSpeed: maxSpeed})
	if !directed {
		g.appendArc(Arc{Tail: head, Head: tail, Distance: distance, MaxSpeed: maxSpeed})
	}
	g.numArcs++
	return nil
}

func (g *Graph) appendArc(a Arc) {
	a.Cost = g.model.ArcCost(&a)
	g.adj[a.Tail] = append(g.adj[a.Tail], len(g.arcs))
	g.arcs = append(g.arcs, a)
}

func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// 加入的弧数，不计无向图中自动生成的反向弧
func (g *Graph) ArcCount() int {
	return g.numArcs
}

func (g *Graph) Node(id int) Node {
	return g.nodes[id]
}

// 节点的所有出弧（拷贝），顺序与插入顺序一致
func (g *Graph) Neighbors(id int) []Arc {
	token := g.mu.RLock()
	defer g.mu.RUnlock(token)
	return lo.Map(g.adj[id], func(i int, _ int) Arc {
		return g.arcs[i]
	})
}

// 所有弧（拷贝），按tail id和插入顺序排列
func (g *Graph) Arcs() []Arc {
	token := g.mu.RLock()
	defer g.mu.RUnlock(token)
	arcs := make([]Arc, 0, len(g.arcs))
	for _, out := range g.adj {
		for _, i := range out {
			arcs = append(arcs, g.arcs[i])
		}
	}
	return arcs
}

func (g *Graph) String() string {
	arcs := g.Arcs()
	return fmt.Sprint(lo.Map(arcs, func(a Arc, _ int) string {
		return fmt.Sprintf("%d->%d(%d)", a.Tail, a.Head, a.Cost)
	}))
}
