package viz

import (
	"math"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/physics"
)

// Projector maps world coordinates onto canvas sub-pixels. The scale is
// uniform so circles stay round, and y is flipped because the world's y
// axis points up.
type Projector struct {
	scale  float64
	height float64
	offX   float64
	offY   float64
}

func NewProjector(world physics.World, c *Canvas) Projector {
	cw, ch := float64(c.Width*2-1), float64(c.Height*4-1)
	scale := math.Min(cw/world.Width(), ch/world.Height())
	return Projector{
		scale:  scale,
		height: world.Height(),
		offX:   (cw - world.Width()*scale) / 2,
		offY:   (ch - world.Height()*scale) / 2,
	}
}

func (p Projector) Project(v dynamo.Vec2) (int, int) {
	x := p.offX + v.X*p.scale
	y := p.offY + (p.height-v.Y)*p.scale
	return int(math.Round(x)), int(math.Round(y))
}

// Radius converts a world length to sub-pixels, never less than one.
func (p Projector) Radius(r float64) int {
	return max(1, int(math.Round(r*p.scale)))
}
