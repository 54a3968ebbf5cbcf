package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"git.fiblab.net/sim/routeplanner/router"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// 批量查询计划文件
//
//	cost_model "travel_time" {
//	  max_speed = 130
//	}
//	query "longest" {
//	  start = 5508637
//	}
//	query "to_work" {
//	  start  = 5508637
//	  target = 4435496
//	}
//
// 依次应用每个cost_model，并在其下运行所有query；没有target的query查询最远节点
type Plan struct {
	CostModels []*PlanCostModel `hcl:"cost_model,block"`
	Queries    []*PlanQuery     `hcl:"query,block"`
}

type PlanCostModel struct {
	Kind     string  `hcl:"kind,label"`
	MaxSpeed float64 `hcl:"max_speed,optional"`
}

type PlanQuery struct {
	Name   string `hcl:"name,label"`
	Start  int    `hcl:"start"`
	Target *int   `hcl:"target,optional"`
}

type PlanResult struct {
	Query     string
	CostModel string
	Route     *router.Route
	Err       error
}

func (r *PlanResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("[%s/%s] %v", r.CostModel, r.Query, r.Err)
	}
	return fmt.Sprintf("[%s/%s] %d -> %d %s", r.CostModel, r.Query, r.Route.Start, r.Route.End, r.Route)
}

// 表达式中可以通过env.NAME引用环境变量
func planEvalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

func LoadPlan(filename string) (*Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", filename, diags)
	}
	var plan Plan
	diags = gohcl.DecodeBody(file.Body, planEvalContext(), &plan)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plan file %s: %w", filename, diags)
	}
	if len(plan.Queries) == 0 {
		return nil, fmt.Errorf("plan file %s has no query", filename)
	}
	return &plan, nil
}

// 运行计划，单个查询失败不影响其他查询；代价模型设置失败则终止
func RunPlan(r *router.Router, plan *Plan) ([]*PlanResult, error) {
	costModels := plan.CostModels
	if len(costModels) == 0 {
		// 使用当前代价模型
		costModels = []*PlanCostModel{nil}
	}
	results := make([]*PlanResult, 0, len(costModels)*len(plan.Queries))
	for _, cm := range costModels {
		if cm != nil {
			if err := r.SetCostModel(cm.Kind, cm.MaxSpeed); err != nil {
				return results, err
			}
		}
		for _, q := range plan.Queries {
			res := &PlanResult{Query: q.Name, CostModel: r.CostModel()}
			if q.Target != nil {
				res.Route, res.Err = r.SearchRoute(q.Start, *q.Target)
			} else {
				res.Route, res.Err = r.FurthestFrom(q.Start)
			}
			if res.Err != nil && !errors.Is(res.Err, router.ErrNoPath) {
				log.Warnln(res)
			} else {
				log.Infoln(res)
			}
			results = append(results, res)
		}
	}
	return results, nil
}
