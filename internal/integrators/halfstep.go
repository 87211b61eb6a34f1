package integrators

import "github.com/san-kum/springsim/internal/dynamo"

// HalfStep is the engine's default scheme. Position gets the full
// second-order update but velocity only receives the first half-kick of a
// velocity-Verlet step; there is no closing half-kick. Verlet is the
// symmetric form.
type HalfStep struct{}

func NewHalfStep() *HalfStep { return &HalfStep{} }

func (HalfStep) Name() string { return NameHalfStep }

func (HalfStep) Step(pos, vel, acc dynamo.Vec2, dt float64) (dynamo.Vec2, dynamo.Vec2) {
	newPos := pos.Add(vel.Scale(dt)).Add(acc.Scale(0.5 * dt * dt))
	newVel := vel.Add(acc.Scale(dt * 0.5))
	return newPos, newVel
}
