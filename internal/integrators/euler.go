package integrators

import "github.com/san-kum/springsim/internal/dynamo"

// Euler is semi-implicit (symplectic) Euler: velocity first, then position
// from the updated velocity.
type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (Euler) Name() string { return NameEuler }

func (Euler) Step(pos, vel, acc dynamo.Vec2, dt float64) (dynamo.Vec2, dynamo.Vec2) {
	newVel := vel.Add(acc.Scale(dt))
	return pos.Add(newVel.Scale(dt)), newVel
}
