package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/physics"
)

// Builder returns a fresh engine for the same scene each time it is called.
type Builder func() (*physics.Engine, error)

// LyapunovExponent estimates the largest Lyapunov exponent of a scene by
// trajectory separation: a second copy has one particle shifted by
// perturbation along x, and both are stepped together. After every step the
// growth of the separation over all positions and velocities is logged and
// the separation is scaled back to perturbation, so each step's growth is
// counted once.
func LyapunovExponent(build Builder, particle int, perturbation float64, steps int) (float64, error) {
	if perturbation <= 0 {
		return 0, errors.New("analysis: perturbation must be positive")
	}
	if steps <= 0 {
		return 0, fmt.Errorf("steps must be positive, got %d", steps)
	}

	ref, err := build()
	if err != nil {
		return 0, err
	}
	pert, err := build()
	if err != nil {
		return 0, err
	}
	if ref.NumParticles() != pert.NumParticles() {
		return 0, errors.New("analysis: builder returned different scenes")
	}

	p, err := pert.Particle(particle)
	if err != nil {
		return 0, err
	}
	p.Position.X += perturbation

	d0 := perturbation
	dt := ref.Config().Dt
	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		ref.Update()
		pert.Update()

		sep := separation(ref, pert)
		if math.IsNaN(sep) || math.IsInf(sep, 0) {
			return 0, dynamo.SimError{
				Time:    ref.Time(),
				Step:    ref.Step(),
				Message: "separation diverged",
				Wrapped: dynamo.ErrInvalidState,
			}
		}

		if sep == 0 {
			continue
		}
		sumLog += math.Log(sep / d0)
		count++
		renormalize(ref, pert, d0/sep)
	}

	if count == 0 {
		return 0, nil
	}
	return sumLog / (float64(count) * dt), nil
}

func separation(ref, pert *physics.Engine) float64 {
	a, b := ref.Snapshot(), pert.Snapshot()
	sum := 0.0
	for i := range a.Positions {
		dp := b.Positions[i].Sub(a.Positions[i])
		dv := b.Velocities[i].Sub(a.Velocities[i])
		sum += dp.Dot(dp) + dv.Dot(dv)
	}
	return math.Sqrt(sum)
}

func renormalize(ref, pert *physics.Engine, scale float64) {
	for i := 0; i < ref.NumParticles(); i++ {
		r, _ := ref.Particle(i)
		p, _ := pert.Particle(i)
		p.Position = r.Position.Add(p.Position.Sub(r.Position).Scale(scale))
		p.Velocity = r.Velocity.Add(p.Velocity.Sub(r.Velocity).Scale(scale))
	}
}
