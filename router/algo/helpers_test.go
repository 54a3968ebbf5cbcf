package algo_test

import (
	"testing"

	"git.fiblab.net/sim/routeplanner/router/algo"
	"github.com/stretchr/testify/require"
)

func loadTestGraph(t *testing.T, name string) *algo.Graph {
	t.Helper()
	g := algo.NewGraph()
	require.NoError(t, g.ReadGraphFromFile(name, true))
	return g
}
