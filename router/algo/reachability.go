package algo

import "fmt"

// 广度优先搜索，标记从start出发可到达的所有节点
// 返回可到达节点数（含start）与标记数组
func (g *Graph) ComputeReachableNodes(start int) (int, []bool, error) {
	if !g.HasNode(start) {
		return 0, nil, fmt.Errorf("%w: start node %d not in [0, %d)", ErrOutOfRange, start, len(g.nodes))
	}
	marked := make([]bool, len(g.nodes))
	marked[start] = true
	numMarked := 1
	currentLevel := []int{start}
	for len(currentLevel) > 0 {
		nextLevel := make([]int, 0)
		for _, cur := range currentLevel {
			for _, i := range g.adj[cur] {
				head := g.arcs[i].Head
				if !marked[head] {
					marked[head] = true
					numMarked++
					nextLevel = append(nextLevel, head)
				}
			}
		}
		currentLevel = nextLevel
	}
	return numMarked, marked, nil
}

// 从start出发可到达的所有节点id（升序）
func (g *Graph) ReachableNodes(start int) ([]int, error) {
	n, marked, err := g.ComputeReachableNodes(start)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, n)
	for id, m := range marked {
		if m {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
