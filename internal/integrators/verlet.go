package integrators

import "github.com/san-kum/springsim/internal/dynamo"

// Verlet applies both velocity half-kicks. Forces are only known at the
// start of a step, so the acceleration is held constant across it.
type Verlet struct{}

func NewVerlet() *Verlet { return &Verlet{} }

func (Verlet) Name() string { return NameVerlet }

func (Verlet) Step(pos, vel, acc dynamo.Vec2, dt float64) (dynamo.Vec2, dynamo.Vec2) {
	halfDt := 0.5 * dt
	newPos := pos.Add(vel.Scale(dt)).Add(acc.Scale(halfDt * dt))
	newVel := vel.Add(acc.Scale(halfDt)).Add(acc.Scale(halfDt))
	return newPos, newVel
}
