package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/springsim/internal/physics"
)

// SweepPoint holds the distinct turning points of one coordinate for a
// single parameter value.
type SweepPoint struct {
	Param  float64
	Values []float64
}

// SweepBuilder builds the scene with the named parameter applied.
type SweepBuilder func(cfg physics.Config) (*physics.Engine, error)

type SweepConfig struct {
	Param     string
	Min, Max  float64
	Points    int
	Particle  int
	Axis      Axis
	Transient int
	Record    int
}

// Sweep steps the parameter across [Min, Max], discards Transient steps of
// each run and records the distinct local maxima of the axis coordinate
// over the following Record steps. Each run starts from a fresh engine.
func Sweep(base physics.Config, build SweepBuilder, sc SweepConfig) ([]SweepPoint, error) {
	if _, ok := base.Params()[sc.Param]; !ok {
		return nil, fmt.Errorf("unknown parameter %q", sc.Param)
	}
	if _, err := ParseAxis(string(sc.Axis)); err != nil {
		return nil, err
	}
	if sc.Record < 3 {
		return nil, fmt.Errorf("record must cover at least 3 steps, got %d", sc.Record)
	}

	points := sc.Points
	if points <= 1 {
		points = 2
	}
	step := (sc.Max - sc.Min) / float64(points-1)

	results := make([]SweepPoint, 0, points)
	for i := 0; i < points; i++ {
		param := sc.Min + float64(i)*step

		cfg := base
		if err := cfg.SetParam(sc.Param, param); err != nil {
			return nil, err
		}
		eng, err := build(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", sc.Param, param, err)
		}

		for t := 0; t < sc.Transient; t++ {
			eng.Update()
		}

		values := make([]float64, 0, 16)
		seen := make(map[int64]bool)
		var prev2, prev1 float64
		for t := 0; t < sc.Record; t++ {
			eng.Update()
			p, err := eng.Particle(sc.Particle)
			if err != nil {
				return nil, err
			}
			cur := sc.Axis.of(p.Position, p.Velocity)

			if t >= 2 && prev1 > prev2 && prev1 >= cur {
				// quantize so repeated orbits collapse
				key := int64(math.Round(prev1 * 1000))
				if !seen[key] {
					seen[key] = true
					values = append(values, prev1)
				}
			}
			prev2, prev1 = prev1, cur
		}

		results = append(results, SweepPoint{Param: param, Values: values})
	}

	return results, nil
}

// SweepToASCII plots parameter against recorded values.
func SweepToASCII(data []SweepPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	foundFirst := false
	for _, p := range data {
		for _, v := range p.Values {
			if !foundFirst {
				minVal, maxVal = v, v
				foundFirst = true
				continue
			}
			minVal, maxVal = min(minVal, v), max(maxVal, v)
		}
	}
	if !foundFirst {
		return ""
	}

	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}

		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '•'
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
