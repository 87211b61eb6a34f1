package analysis

import (
	"strings"

	"github.com/san-kum/springsim/internal/dynamo"
)

type Point struct{ X, Y float64 }

// PhasePortrait2D holds one particle's trajectory in (coordinate, velocity)
// space.
type PhasePortrait2D struct {
	Particle int
	Axis     Axis
	Points   []Point
}

// GeneratePhasePortrait pairs the axis coordinate with its velocity for
// every frame.
func GeneratePhasePortrait(frames []dynamo.Frame, particle int, axis Axis) (*PhasePortrait2D, error) {
	pos, err := Series(frames, particle, axis)
	if err != nil {
		return nil, err
	}
	vel, err := Series(frames, particle, axis.Velocity())
	if err != nil {
		return nil, err
	}

	portrait := &PhasePortrait2D{
		Particle: particle,
		Axis:     axis,
		Points:   make([]Point, len(pos)),
	}
	for i := range pos {
		portrait.Points[i] = Point{X: pos[i], Y: vel[i]}
	}

	return portrait, nil
}

// PhasePortraitToASCII converts phase portrait to ASCII art
func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := portrait.Points[0].X, portrait.Points[0].X
	minY, maxY := portrait.Points[0].Y, portrait.Points[0].Y

	for _, p := range portrait.Points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	// 10% padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for _, p := range portrait.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// zero-velocity line
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
