package analysis

import (
	"fmt"

	"github.com/san-kum/springsim/internal/dynamo"
)

// Axis selects one scalar coordinate of a particle.
type Axis string

const (
	AxisX  Axis = "x"
	AxisY  Axis = "y"
	AxisVX Axis = "vx"
	AxisVY Axis = "vy"
)

func ParseAxis(s string) (Axis, error) {
	switch a := Axis(s); a {
	case AxisX, AxisY, AxisVX, AxisVY:
		return a, nil
	}
	return "", fmt.Errorf("unknown axis %q (want x, y, vx or vy)", s)
}

// Velocity returns the velocity axis paired with a position axis.
func (a Axis) Velocity() Axis {
	switch a {
	case AxisX:
		return AxisVX
	case AxisY:
		return AxisVY
	}
	return a
}

func (a Axis) of(pos, vel dynamo.Vec2) float64 {
	switch a {
	case AxisX:
		return pos.X
	case AxisY:
		return pos.Y
	case AxisVX:
		return vel.X
	default:
		return vel.Y
	}
}

// Series extracts one coordinate of one particle from every frame.
func Series(frames []dynamo.Frame, particle int, axis Axis) ([]float64, error) {
	if _, err := ParseAxis(string(axis)); err != nil {
		return nil, err
	}

	out := make([]float64, len(frames))
	for i, f := range frames {
		if particle < 0 || particle >= len(f.Positions) {
			return nil, fmt.Errorf("particle %d: %w", particle, dynamo.ErrUnknownParticle)
		}
		out[i] = axis.of(f.Positions[particle], f.Velocities[particle])
	}
	return out, nil
}
