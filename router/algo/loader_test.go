package algo_test

import (
	"strings"
	"testing"

	"git.fiblab.net/sim/routeplanner/router/algo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGraphFromFile(t *testing.T) {
	g := loadTestGraph(t, "testdata/test.graph")
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 6, g.ArcCount())
	assert.Equal(t, "[0->1(30) 0->2(70) 1->2(20) 2->3(50) 3->1(40) 4->3(20)]", g.String())
	assert.Equal(t, 49.04, g.Node(4).Latitude())
	assert.Equal(t, 7.04, g.Node(4).Longitude())
}

func TestReadGraphUndirected(t *testing.T) {
	g := algo.NewGraph()
	require.NoError(t, g.ReadGraphFromFile("testdata/test.graph", false))
	assert.Equal(t, 6, g.ArcCount())
	assert.Len(t, g.Arcs(), 12)
	// 0的出弧只有原始弧，1的出弧包含反向弧
	assert.Len(t, g.Neighbors(0), 2)
	heads := make([]int, 0)
	for _, a := range g.Neighbors(1) {
		heads = append(heads, a.Head)
	}
	assert.Equal(t, []int{0, 2, 3}, heads)
}

func TestReadGraphComments(t *testing.T) {
	input := `# header comment
2
# between headers
1

0 1.5 2.5
#0 9 9
1 3.5 4.5
0 1 10 50
`
	g := algo.NewGraph()
	require.NoError(t, g.ReadGraph(strings.NewReader(input), true))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.ArcCount())
}

func TestReadGraphTwice(t *testing.T) {
	g := loadTestGraph(t, "testdata/test.graph")
	err := g.ReadGraphFromFile("testdata/test.graph", true)
	assert.ErrorIs(t, err, algo.ErrMalformedInput)
	assert.Contains(t, err.Error(), "already read in")
}

func TestReadGraphMissingNodeLine(t *testing.T) {
	// 声明3个节点但只有2行，第一条弧被当作节点行
	g := algo.NewGraph()
	err := g.ReadGraphFromFile("testdata/missing_node.graph", true)
	assert.ErrorIs(t, err, algo.ErrMalformedInput)
	assert.Contains(t, err.Error(), "node info line")
}

func TestReadGraphMalformed(t *testing.T) {
	cases := map[string]string{
		"bad node count":    "x\n0\n",
		"negative count":    "-1\n0\n",
		"node columns":      "1\n0\n0 1.0\n",
		"node id":           "1\n0\nzero 1.0 2.0\n",
		"latitude":          "1\n0\n0 north 2.0\n",
		"arc columns":       "2\n1\n0 0 0\n1 0 0\n0 1 10\n",
		"arc distance":      "2\n1\n0 0 0\n1 0 0\n0 1 1.5 50\n",
		"arc speed":         "2\n1\n0 0 0\n1 0 0\n0 1 10 fast\n",
		"non dense node id": "2\n0\n0 0 0\n5 0 0\n",
		"truncated":         "3\n0\n0 0 0\n",
		"empty":             "# nothing\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			g := algo.NewGraph()
			assert.ErrorIs(t, g.ReadGraph(strings.NewReader(input), true), algo.ErrMalformedInput)
		})
	}
}

func TestReadGraphArcOutOfRange(t *testing.T) {
	g := algo.NewGraph()
	err := g.ReadGraph(strings.NewReader("2\n1\n0 0 0\n1 0 0\n0 2 10 50\n"), true)
	assert.ErrorIs(t, err, algo.ErrOutOfRange)
	assert.Contains(t, err.Error(), "line 5")
}

func TestReadGraphMissingFile(t *testing.T) {
	g := algo.NewGraph()
	assert.Error(t, g.ReadGraphFromFile("testdata/does_not_exist.graph", true))
}
