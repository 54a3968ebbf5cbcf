package main

import (
	"os"
	"path/filepath"
	"testing"

	"git.fiblab.net/sim/routeplanner/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlan(t *testing.T) {
	plan, err := LoadPlan("testdata/plan.hcl")
	require.NoError(t, err)
	require.Len(t, plan.CostModels, 2)
	require.Len(t, plan.Queries, 3)
	assert.Nil(t, plan.Queries[1].Target)

	s := newTestServer(t)
	results, err := RunPlan(s.router, plan)
	require.NoError(t, err)
	require.Len(t, results, 6)

	assert.Equal(t, "distance", results[0].CostModel)
	assert.Equal(t, int64(100), results[0].Route.Cost)
	assert.Equal(t, 3, results[1].Route.End)
	assert.ErrorIs(t, results[2].Err, router.ErrNoPath)

	assert.Equal(t, "travel_time", results[3].CostModel)
	assert.Equal(t, int64(12), results[3].Route.Cost)
	assert.Equal(t, int64(8), results[4].Route.Cost)
	assert.Equal(t, "[travel_time/furthest] 1 -> 3 Distance: 0.070 km\tTime: 0 hour(s) and 0 minute(s)", results[4].String())
}

func TestLoadPlanEnv(t *testing.T) {
	t.Setenv("PLAN_START", "4")
	name := filepath.Join(t.TempDir(), "env.hcl")
	require.NoError(t, os.WriteFile(name, []byte(`
query "from_env" {
  start  = env.PLAN_START
  target = 1
}
`), 0o644))
	plan, err := LoadPlan(name)
	require.NoError(t, err)
	assert.Equal(t, 4, plan.Queries[0].Start)

	s := newTestServer(t)
	results, err := RunPlan(s.router, plan)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "distance", results[0].CostModel)
	assert.Equal(t, []int{4, 3, 1}, results[0].Route.NodeIDs)
}

func TestLoadPlanErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.hcl")
	require.NoError(t, os.WriteFile(empty, []byte(`cost_model "distance" {}`), 0o644))
	_, err := LoadPlan(empty)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(bad, []byte(`query "x" { start = }`), 0o644))
	_, err = LoadPlan(bad)
	assert.Error(t, err)

	s := newTestServer(t)
	_, err = RunPlan(s.router, &Plan{
		CostModels: []*PlanCostModel{{Kind: "travel_time"}},
		Queries:    []*PlanQuery{{Name: "q", Start: 0}},
	})
	assert.Error(t, err)
}
