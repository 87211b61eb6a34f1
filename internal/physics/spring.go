package physics

import "github.com/san-kum/springsim/internal/dynamo"

// Spring couples two particles of the engine's arena by handle.
type Spring struct {
	A, B   int
	Length float64
	Hooke  float64
	Damp   float64
}

// Apply computes the Hookean and damping force and accumulates it into both
// endpoints. Each endpoint scales the force by its own mass; massless
// endpoints receive nothing.
func (s Spring) Apply(particles []Particle) {
	pa, pb := &particles[s.A], &particles[s.B]

	delta := pb.Position.Sub(pa.Position)
	force := s.Hooke * (delta.Norm() - s.Length)
	dv := pb.Velocity.Sub(pa.Velocity)

	if m := pa.Mass(); m != 0 {
		pa.ApplyForce(delta.Scale(force / m).Add(dv.Scale(s.Damp / m)))
	}
	if m := pb.Mass(); m != 0 {
		pb.ApplyForce(delta.Scale(-force / m).Sub(dv.Scale(s.Damp / m)))
	}
}

// Extension is the current length minus the rest length.
func (s Spring) Extension(particles []Particle) float64 {
	return particles[s.B].Position.Distance(particles[s.A].Position) - s.Length
}

// Energy is the elastic potential 0.5*k*x^2.
func (s Spring) Energy(particles []Particle) float64 {
	x := s.Extension(particles)
	return 0.5 * s.Hooke * x * x
}

// Endpoints returns the positions of both particles.
func (s Spring) Endpoints(particles []Particle) (dynamo.Vec2, dynamo.Vec2) {
	return particles[s.A].Position, particles[s.B].Position
}
