package physics

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/integrators"
)

// Particle is a point mass. Acceleration is a per-step accumulator: forces
// applied during a step add into it, Update consumes it and clears it.
type Particle struct {
	Position     dynamo.Vec2
	Velocity     dynamo.Vec2
	Acceleration dynamo.Vec2
	Material     Material
}

func NewParticle(pos, vel dynamo.Vec2, mat Material) Particle {
	return Particle{Position: pos, Velocity: vel, Material: mat}
}

// Mass is shorthand for p.Material.Mass().
func (p *Particle) Mass() float64 { return p.Material.mass }

// Fixed reports whether the particle is a massless anchor.
func (p *Particle) Fixed() bool { return p.Material.mass == 0 }

// Update advances the particle by one step of cfg.Dt. Massless particles
// are anchors and are left untouched, accumulator included.
func (p *Particle) Update(world World, cfg Config, scheme integrators.Scheme) {
	if p.Fixed() {
		return
	}
	m := p.Material.mass

	gravity := dynamo.V(0, cfg.Gravity)
	drag := p.Velocity.Scale(p.Material.friction / m)
	p.ApplyForce(gravity.Neg().Sub(drag))

	p.Position, p.Velocity = scheme.Step(p.Position, p.Velocity, p.Acceleration, cfg.Dt)

	p.ApplyConstraint(world)
	p.Reset()
}

// ApplyForce accumulates force/mass into the acceleration.
func (p *Particle) ApplyForce(force dynamo.Vec2) {
	if p.Fixed() {
		return
	}
	p.Acceleration.AddIn(force.Div(p.Material.mass))
}

// Reset clears the accumulated acceleration.
func (p *Particle) Reset() {
	p.Acceleration = dynamo.Zero
}

// ApplyConstraint reflects the particle off the world edges, scaling the
// reflected velocity by the material bounce. Edges are checked in the order
// x-low, x-high, y-low, y-high.
func (p *Particle) ApplyConstraint(world World) {
	bounce := p.Material.bounce

	if p.Position.X <= 0 {
		p.Position.X = 0
		p.Velocity.X = math.Abs(p.Velocity.X) * bounce
	}
	if p.Position.X >= world.width {
		p.Position.X = world.width
		p.Velocity.X = -math.Abs(p.Velocity.X) * bounce
	}
	if p.Position.Y <= 0 {
		p.Position.Y = 0
		p.Velocity.Y = math.Abs(p.Velocity.Y) * bounce
	}
	if p.Position.Y >= world.height {
		p.Position.Y = world.height
		p.Velocity.Y = -math.Abs(p.Velocity.Y) * bounce
	}
}

// CheckCollision responds to an overlap between p and other, both of the
// given radius. Each particle keeps its speed but is sent directly away
// from the other; this is not an elastic collision. Coincident centres have
// no separating direction and are skipped. It reports whether a response
// was applied.
func (p *Particle) CheckCollision(other *Particle, radius float64) bool {
	delta := other.Position.Sub(p.Position)
	dist := delta.Norm()
	if dist > 2*radius || dist == 0 {
		return false
	}
	u := delta.Normalize()
	p.Velocity = u.Scale(-p.Velocity.Norm())
	other.Velocity = u.Scale(other.Velocity.Norm())
	return true
}

// Displace moves the particle by impulse/mass. It changes position only,
// velocity is untouched.
func (p *Particle) Displace(impulse dynamo.Vec2) {
	if p.Fixed() {
		return
	}
	p.Position.AddIn(impulse.Div(p.Material.mass))
}

// Kinetic returns the kinetic energy 0.5*m*|v|^2.
func (p *Particle) Kinetic() float64 {
	return 0.5 * p.Material.mass * p.Velocity.Dot(p.Velocity)
}

func (p *Particle) SetColor(c color.RGBA)              { p.Material.SetColor(c) }
func (p *Particle) SetFriction(friction float64) error { return p.Material.SetFriction(friction) }
func (p *Particle) SetBounce(bounce float64) error     { return p.Material.SetBounce(bounce) }
func (p *Particle) SetMass(mass float64) error         { return p.Material.SetMass(mass) }

func (p *Particle) String() string {
	return fmt.Sprintf("pos %v | vel %v | acc %v", p.Position, p.Velocity, p.Acceleration)
}
