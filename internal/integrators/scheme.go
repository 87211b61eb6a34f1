// Package integrators provides the fixed-step schemes a particle uses to
// advance its position and velocity from an accumulated acceleration.
package integrators

import (
	"sort"

	"github.com/san-kum/springsim/internal/dynamo"
)

// Scheme advances one particle by dt given the acceleration accumulated
// during the step. It returns the new position and velocity.
type Scheme interface {
	Name() string
	Step(pos, vel, acc dynamo.Vec2, dt float64) (dynamo.Vec2, dynamo.Vec2)
}

const (
	NameHalfStep = "halfstep"
	NameVerlet   = "verlet"
	NameEuler    = "euler"

	Default = NameHalfStep
)

var registry = map[string]func() Scheme{
	NameHalfStep: func() Scheme { return NewHalfStep() },
	NameVerlet:   func() Scheme { return NewVerlet() },
	NameEuler:    func() Scheme { return NewEuler() },
}

// Get returns the scheme registered under name.
func Get(name string) (Scheme, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, &dynamo.ValidationError{Field: "scheme", Reason: "unknown scheme " + name}
	}
	return fn(), nil
}

// Names lists the registered schemes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
