package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for engine construction and simulation.
var (
	// ErrParameterBounds indicates a parameter value is outside its valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidState indicates a particle position or velocity became NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrUnknownParticle indicates a handle that does not name a particle.
	ErrUnknownParticle = errors.New("dynamo: unknown particle")

	// ErrUnknownSpring indicates a handle that does not name a spring.
	ErrUnknownSpring = errors.New("dynamo: unknown spring")

	// ErrSelfSpring indicates a spring whose endpoints are the same particle.
	ErrSelfSpring = errors.New("dynamo: spring endpoints must differ")

	// ErrContextCanceled indicates the simulation was interrupted between steps.
	ErrContextCanceled = errors.New("dynamo: simulation canceled by context")
)

// ValidationError reports a configuration value rejected at construction.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrParameterBounds
}

// Invalid is shorthand for building a *ValidationError.
func Invalid(field string, value float64, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// SimError wraps a failure with the step at which it was detected.
type SimError struct {
	Time    float64
	Step    int
	Message string
	Wrapped error
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

func (e SimError) Unwrap() error {
	return e.Wrapped
}
