package physics

import (
	"fmt"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/integrators"
)

// Engine owns the particle arena, the springs and the world, and is the
// only thing that advances simulated time. It is not safe for concurrent
// use; readers must not overlap with Update.
type Engine struct {
	cfg       Config
	world     World
	scheme    integrators.Scheme
	particles []Particle
	springs   []Spring
	step      int
	time      float64
	hits      int
}

func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Scheme == "" {
		cfg.Scheme = integrators.Default
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	world, err := NewWorld(dynamo.Zero, cfg.WorldWidth, cfg.WorldHeight)
	if err != nil {
		return nil, err
	}
	scheme, err := integrators.Get(cfg.Scheme)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:       cfg,
		world:     world,
		scheme:    scheme,
		particles: make([]Particle, 0),
		springs:   make([]Spring, 0),
	}, nil
}

// AddParticle appends a particle and returns its id.
func (e *Engine) AddParticle(pos, vel dynamo.Vec2, mat Material) int {
	e.particles = append(e.particles, NewParticle(pos, vel, mat))
	return len(e.particles) - 1
}

// AddSpring connects a and b with the config's default stiffness and damping.
func (e *Engine) AddSpring(a, b int, length float64) (int, error) {
	return e.AddSpringWith(a, b, length, e.cfg.SpringHooke, e.cfg.SpringDamp)
}

func (e *Engine) AddSpringWith(a, b int, length, hooke, damp float64) (int, error) {
	if !e.valid(a) {
		return 0, fmt.Errorf("spring endpoint %d: %w", a, dynamo.ErrUnknownParticle)
	}
	if !e.valid(b) {
		return 0, fmt.Errorf("spring endpoint %d: %w", b, dynamo.ErrUnknownParticle)
	}
	if a == b {
		return 0, fmt.Errorf("spring %d-%d: %w", a, b, dynamo.ErrSelfSpring)
	}
	if length < 0 {
		return 0, dynamo.Invalid("spring length", length, "must not be negative")
	}
	if hooke < 0 {
		return 0, dynamo.Invalid("spring hooke", hooke, "must not be negative")
	}
	if damp < 0 {
		return 0, dynamo.Invalid("spring damp", damp, "must not be negative")
	}
	e.springs = append(e.springs, Spring{A: a, B: b, Length: length, Hooke: hooke, Damp: damp})
	return len(e.springs) - 1, nil
}

// Update advances the simulation by one step of cfg.Dt. Each phase finishes
// before the next starts: integrate every particle, resolve every pair,
// then accumulate spring forces for the following step.
func (e *Engine) Update() {
	for i := range e.particles {
		e.particles[i].Update(e.world, e.cfg, e.scheme)
	}

	e.hits = 0
	for i := 0; i < len(e.particles); i++ {
		for j := i + 1; j < len(e.particles); j++ {
			if e.particles[i].CheckCollision(&e.particles[j], e.cfg.ParticleRadius) {
				e.hits++
			}
		}
	}

	for _, s := range e.springs {
		s.Apply(e.particles)
	}

	e.step++
	e.time += e.cfg.Dt
}

func (e *Engine) valid(id int) bool { return id >= 0 && id < len(e.particles) }

func (e *Engine) Config() Config    { return e.cfg }
func (e *Engine) World() World      { return e.world }
func (e *Engine) Step() int         { return e.step }
func (e *Engine) Time() float64     { return e.time }
func (e *Engine) NumParticles() int { return len(e.particles) }
func (e *Engine) NumSprings() int   { return len(e.springs) }

// SchemeName is the name of the step scheme in use.
func (e *Engine) SchemeName() string { return e.scheme.Name() }

// LastCollisions is the number of pairwise responses in the last Update.
func (e *Engine) LastCollisions() int { return e.hits }

// Particle returns a pointer into the arena for setup and inspection.
func (e *Engine) Particle(id int) (*Particle, error) {
	if !e.valid(id) {
		return nil, fmt.Errorf("particle %d: %w", id, dynamo.ErrUnknownParticle)
	}
	return &e.particles[id], nil
}

func (e *Engine) Spring(id int) (Spring, error) {
	if id < 0 || id >= len(e.springs) {
		return Spring{}, fmt.Errorf("spring %d: %w", id, dynamo.ErrUnknownSpring)
	}
	return e.springs[id], nil
}

// SpringEndpoints returns the positions of the two particles of spring id.
func (e *Engine) SpringEndpoints(id int) (dynamo.Vec2, dynamo.Vec2, error) {
	s, err := e.Spring(id)
	if err != nil {
		return dynamo.Zero, dynamo.Zero, err
	}
	a, b := s.Endpoints(e.particles)
	return a, b, nil
}

// Particles returns a copy of the arena in id order.
func (e *Engine) Particles() []Particle {
	return append([]Particle(nil), e.particles...)
}

// Springs returns a copy of the springs in id order.
func (e *Engine) Springs() []Spring {
	return append([]Spring(nil), e.springs...)
}

// Snapshot captures positions and velocities at the current step.
func (e *Engine) Snapshot() dynamo.Frame {
	f := dynamo.Frame{
		Step:       e.step,
		Time:       e.time,
		Positions:  make([]dynamo.Vec2, len(e.particles)),
		Velocities: make([]dynamo.Vec2, len(e.particles)),
	}
	for i := range e.particles {
		f.Positions[i] = e.particles[i].Position
		f.Velocities[i] = e.particles[i].Velocity
	}
	return f
}

// Energy returns kinetic energy plus the potentials of the gravity force
// (g*y, since gravity is applied as a force of magnitude g) and of every
// spring. Anchors contribute nothing of their own.
func (e *Engine) Energy() float64 {
	total := 0.0
	for i := range e.particles {
		p := &e.particles[i]
		if p.Fixed() {
			continue
		}
		total += p.Kinetic() + e.cfg.Gravity*p.Position.Y
	}
	for _, s := range e.springs {
		total += s.Energy(e.particles)
	}
	return total
}
