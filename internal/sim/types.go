package sim

import (
	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/physics"
)

// Metric accumulates a scalar over the steps of a run.
type Metric interface {
	Name() string
	Observe(e *physics.Engine)
	Value() float64
	Reset()
}

// Observer is notified after every completed step. It may read the engine
// but must not mutate it.
type Observer interface {
	OnStep(e *physics.Engine)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(e *physics.Engine)

func (f ObserverFunc) OnStep(e *physics.Engine) { f(e) }

type RunConfig struct {
	Steps         int
	SampleEvery   int
	ValidateState bool
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Steps:         1000,
		SampleEvery:   1,
		ValidateState: true,
	}
}

type Result struct {
	Frames     []dynamo.Frame
	Metrics    map[string]float64
	StepsTaken int
	Energy     []float64
	Errors     []error
}

// Times returns the simulated time of every sampled frame.
func (r *Result) Times() []float64 {
	times := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		times[i] = f.Time
	}
	return times
}
