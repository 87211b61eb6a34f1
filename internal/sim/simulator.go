package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/physics"
)

// Simulator drives an engine for a fixed number of steps. Cancellation is
// checked between steps; a step in progress always completes.
type Simulator struct {
	engine    *physics.Engine
	metrics   []Metric
	observers []Observer
}

func New(engine *physics.Engine) *Simulator {
	return &Simulator{
		engine:    engine,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)      { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)  { s.observers = append(s.observers, o) }
func (s *Simulator) Engine() *physics.Engine { return s.engine }

func (s *Simulator) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Frames:  make([]dynamo.Frame, 0, cfg.Steps/cfg.SampleEvery+1),
		Energy:  make([]float64, 0, cfg.Steps/cfg.SampleEvery+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result.Frames = append(result.Frames, s.engine.Snapshot())
	result.Energy = append(result.Energy, s.engine.Energy())

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, fmt.Errorf("%w: %w", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}

		s.engine.Update()
		result.StepsTaken++

		for _, m := range s.metrics {
			m.Observe(s.engine)
		}
		for _, obs := range s.observers {
			obs.OnStep(s.engine)
		}

		if (i+1)%cfg.SampleEvery != 0 && i+1 != cfg.Steps {
			continue
		}

		frame := s.engine.Snapshot()
		if cfg.ValidateState && !frame.IsValid() {
			result.Errors = append(result.Errors, dynamo.SimError{
				Time:    frame.Time,
				Step:    frame.Step,
				Message: "invalid state (NaN/Inf)",
				Wrapped: dynamo.ErrInvalidState,
			})
			break
		}
		result.Frames = append(result.Frames, frame)
		result.Energy = append(result.Energy, s.engine.Energy())
	}

	s.collect(result)
	return result, nil
}

// RunWithCallback steps the engine until steps are exhausted, ctx is done
// or fn returns false. fn sees the engine after each step.
func (s *Simulator) RunWithCallback(ctx context.Context, steps int, fn func(e *physics.Engine) bool) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}

		s.engine.Update()

		if !fn(s.engine) {
			return nil
		}
	}

	return nil
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg RunConfig) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if cfg.SampleEvery <= 0 {
		return fmt.Errorf("sample stride must be positive, got %d", cfg.SampleEvery)
	}
	return nil
}
