// Package dynamo provides the core primitives shared by the particle engine
// and everything that observes it.
//
//   - [Vec2]: 2D vector value type used for positions, velocities and forces
//   - [Frame]: snapshot of every particle at the end of a step
//   - [ValidationError], [SimError]: error types with sentinel unwrapping
//
// # Degenerate Geometry
//
// [Vec2.Normalize] of the zero vector returns the zero vector rather than
// NaN. Callers that need a real direction must check [Vec2.Norm] first:
//
//	d := b.Sub(a)
//	if d.Norm() == 0 {
//	    return // coincident, no direction
//	}
//	u := d.Normalize()
package dynamo
