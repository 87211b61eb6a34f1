package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/springsim/internal/physics"
)

// Builder constructs the engine and metrics for run idx of an ensemble.
type Builder func(idx int) (*physics.Engine, []Metric, error)

// Ensemble runs independent engines side by side, one goroutine each.
// Engines never share state, so each run is still single-threaded.
type Ensemble struct {
	build   Builder
	numRuns int
}

func NewEnsemble(build Builder, numRuns int) *Ensemble {
	return &Ensemble{build: build, numRuns: numRuns}
}

func (e *Ensemble) Run(ctx context.Context, cfg RunConfig) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			eng, metrics, err := e.build(idx)
			if err != nil {
				errs[idx] = fmt.Errorf("run %d: %w", idx, err)
				return
			}

			s := New(eng)
			for _, m := range metrics {
				s.AddMetric(m)
			}

			results[idx], errs[idx] = s.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
