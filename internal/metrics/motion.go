package metrics

import (
	"math"

	"github.com/san-kum/springsim/internal/physics"
	"github.com/san-kum/springsim/internal/sim"
)

// MaxSpeed is the highest particle speed seen during a run.
type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(eng *physics.Engine) {
	for _, p := range eng.Particles() {
		m.max = math.Max(m.max, p.Velocity.Norm())
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// Collisions counts pairwise collision responses over a run.
type Collisions struct {
	name  string
	total int
}

func NewCollisions() *Collisions {
	return &Collisions{name: "collisions"}
}

func (c *Collisions) Name() string { return c.name }

func (c *Collisions) Observe(eng *physics.Engine) {
	c.total += eng.LastCollisions()
}

func (c *Collisions) Value() float64 { return float64(c.total) }
func (c *Collisions) Reset()         { c.total = 0 }

// Standard returns the metric set reported by the CLI.
func Standard() []sim.Metric {
	return []sim.Metric{
		NewEnergy(),
		NewEnergyDrift(),
		NewMaxSpeed(),
		NewCollisions(),
		NewStability(),
	}
}
