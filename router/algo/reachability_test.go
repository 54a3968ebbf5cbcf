package algo_test

import (
	"testing"

	"git.fiblab.net/sim/routeplanner/router/algo"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeReachableNodes(t *testing.T) {
	g := loadTestGraph(t, "testdata/test2.graph")
	for start, expected := range map[int]int{0: 4, 4: 6, 5: 6, 6: 1} {
		n, marked, err := g.ComputeReachableNodes(start)
		require.NoError(t, err)
		assert.Equal(t, expected, n, "start %d", start)
		assert.Len(t, marked, g.NodeCount())
		assert.True(t, marked[start])
		assert.Equal(t, n, lo.Count(marked, true))
	}

	ids, err := g.ReachableNodes(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids)
}

func TestComputeReachableNodesFullGraph(t *testing.T) {
	g := algo.NewGraph()
	require.NoError(t, g.ReadGraphFromFile("testdata/test.graph", false))
	// 无向图中0可以到达所有节点
	n, _, err := g.ComputeReachableNodes(0)
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), n)

	// 有向图中4无法回到0
	g = loadTestGraph(t, "testdata/test.graph")
	n, marked, err := g.ComputeReachableNodes(4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Less(t, n, g.NodeCount())
	assert.False(t, marked[0])
}

func TestComputeReachableNodesOutOfRange(t *testing.T) {
	g := loadTestGraph(t, "testdata/test.graph")
	_, _, err := g.ComputeReachableNodes(5)
	assert.ErrorIs(t, err, algo.ErrOutOfRange)
	_, err = g.ReachableNodes(-1)
	assert.ErrorIs(t, err, algo.ErrOutOfRange)
}
