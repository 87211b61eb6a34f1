package physics

import "github.com/san-kum/springsim/internal/dynamo"

// World is the rectangular constraint region [0, width] x [0, height].
// Center is an offset carried for renderers; constraints ignore it.
type World struct {
	center        dynamo.Vec2
	width, height float64
}

func NewWorld(center dynamo.Vec2, width, height float64) (World, error) {
	if !(width > 0) {
		return World{}, dynamo.Invalid("world width", width, "must be positive")
	}
	if !(height > 0) {
		return World{}, dynamo.Invalid("world height", height, "must be positive")
	}
	return World{center: center, width: width, height: height}, nil
}

func (w World) Center() dynamo.Vec2 { return w.center }
func (w World) Width() float64      { return w.width }
func (w World) Height() float64     { return w.height }

// Contains reports whether p lies inside the region, edges included.
func (w World) Contains(p dynamo.Vec2) bool {
	return p.X >= 0 && p.X <= w.width && p.Y >= 0 && p.Y <= w.height
}
