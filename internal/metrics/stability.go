package metrics

import (
	"github.com/san-kum/springsim/internal/physics"
)

// Stability is the fraction of observed steps in which every particle is
// finite and inside the world.
type Stability struct {
	name       string
	violations int
	samples    int
}

func NewStability() *Stability {
	return &Stability{name: "stability"}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(eng *physics.Engine) {
	s.samples++
	world := eng.World()
	for _, p := range eng.Particles() {
		if !p.Position.IsValid() || !p.Velocity.IsValid() || !world.Contains(p.Position) {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
