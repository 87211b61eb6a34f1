package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/springsim/internal/physics"
	"github.com/san-kum/springsim/internal/sim"
)

var ErrNoCandidate = errors.New("optim: no parameter combination completed")

// Builder builds the engine and metrics for one parameter combination.
type Builder func(cfg physics.Config) (*physics.Engine, []sim.Metric, error)

// GridSearch tries every combination of the listed engine parameters and
// keeps the one with the smallest value of a metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) == 0 || len(params) != len(ranges) {
		return nil, fmt.Errorf("need one value range per parameter, got %d params and %d ranges", len(params), len(ranges))
	}
	known := physics.DefaultConfig().Params()
	for i, name := range params {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("unknown parameter %q", name)
		}
		if len(ranges[i]) == 0 {
			return nil, fmt.Errorf("parameter %q has no values", name)
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Candidates is the number of combinations Search will run.
func (g *GridSearch) Candidates() int {
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

// Search runs every combination for the given run config. Combinations that
// fail to build, are canceled, or end with invalid state are skipped.
func (g *GridSearch) Search(
	ctx context.Context,
	base physics.Config,
	build Builder,
	metricName string,
	run sim.RunConfig,
) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	g.searchRecursive(ctx, 0, base, make(map[string]float64), build, metricName, run, &best, &bestParams)

	if err := ctx.Err(); err != nil {
		return bestParams, best, err
	}
	if bestParams == nil {
		return nil, best, ErrNoCandidate
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	cfg physics.Config,
	current map[string]float64,
	build Builder,
	metricName string,
	run sim.RunConfig,
	best *float64,
	bestParams *map[string]float64,
) {
	if ctx.Err() != nil {
		return
	}

	if depth == len(g.paramNames) {
		eng, metrics, err := build(cfg)
		if err != nil {
			return
		}

		s := sim.New(eng)
		for _, m := range metrics {
			s.AddMetric(m)
		}
		result, err := s.Run(ctx, run)
		if err != nil || len(result.Errors) > 0 {
			return
		}

		val, ok := result.Metrics[metricName]
		if !ok || math.IsNaN(val) {
			return
		}
		if val < *best {
			*best = val
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := cfg
		if err := next.SetParam(paramName, val); err != nil {
			return
		}
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		g.searchRecursive(ctx, depth+1, next, newParams, build, metricName, run, best, bestParams)
	}
}
