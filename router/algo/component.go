package algo

// 依次从未访问节点（按id后进先出）出发做BFS，
// 对每个分量回调 (可到达节点数, 本次新归入的节点)
func (g *Graph) sweepComponents(visit func(numMarked int, members []int)) {
	n := len(g.nodes)
	visited := make([]bool, n)
	next := n - 1
	for {
		// 取出id最大的未访问节点
		for next >= 0 && visited[next] {
			next--
		}
		if next < 0 {
			return
		}
		start := next
		visited[start] = true
		// start一定合法，不会出错
		numMarked, marked, _ := g.ComputeReachableNodes(start)
		members := []int{start}
		for id, m := range marked {
			if m && !visited[id] {
				visited[id] = true
				members = append(members, id)
			}
		}
		visit(numMarked, members)
	}
}

// 最大连通分量
// 返回分量大小（该次BFS可到达的节点数）与本次归入该分量的节点id，起点在首位
// 大小相同时保留先找到的分量；空图返回(0, nil)
func (g *Graph) ComputeLargestConnectedComponent() (int, []int) {
	size := 0
	var lcc []int
	g.sweepComponents(func(numMarked int, members []int) {
		if numMarked > size {
			size = numMarked
			lcc = members
		}
	})
	return size, lcc
}

// 所有分量的节点id，按发现顺序排列，互不相交且覆盖所有节点
func (g *Graph) ConnectedComponents() [][]int {
	comps := make([][]int, 0)
	g.sweepComponents(func(_ int, members []int) {
		comps = append(comps, members)
	})
	return comps
}
