package config

import (
	"math"
	"sort"
)

// Presets build scenes for a world of the given size.
var Presets = map[string]func(w, h float64) *Scene{
	"triple":   tripleScene,
	"pendulum": pendulumScene,
	"chain":    chainScene,
	"rain":     rainScene,
	"cloth":    clothScene,
}

// PresetInfo is a one-line description per preset.
var PresetInfo = map[string]string{
	"triple":   "anchor with two springs in series",
	"pendulum": "single mass on a spring",
	"chain":    "hanging chain of springs",
	"rain":     "free particles, collisions only",
	"cloth":    "spring grid pinned along the top",
}

// GetPreset returns the named scene laid out for a w x h world, or nil.
func GetPreset(name string, w, h float64) *Scene {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn(w, h)
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tripleScene is a massless red anchor holding two springs in series.
func tripleScene(w, h float64) *Scene {
	return &Scene{
		Name: "triple",
		Particles: []ParticleSpec{
			{X: w / 2, Y: 500, Mass: ptr(0), Color: "#ff0000"},
			{X: w / 2, Y: 300, Color: "#00ff00"},
			{X: w/2 + 100*math.Cos(90*math.Pi), Y: 200 + 100*math.Sin(90*math.Pi), Color: "#0000ff"},
		},
		Springs: []SpringSpec{
			{A: 0, B: 1, Length: ptr(200)},
			{A: 1, B: 2, Length: ptr(100)},
		},
	}
}

func pendulumScene(w, h float64) *Scene {
	top := h - 50
	return &Scene{
		Name: "pendulum",
		Particles: []ParticleSpec{
			{X: w / 2, Y: top, Mass: ptr(0), Color: "#ff0000"},
			{X: w/2 + 150, Y: top, Color: "#ffff00"},
		},
		Springs: []SpringSpec{
			{A: 0, B: 1, Length: ptr(150)},
		},
	}
}

func chainScene(w, h float64) *Scene {
	const links = 6
	const spacing = 40.0
	s := &Scene{Name: "chain"}
	x0, y := w/2-spacing*links/2, h-80
	for i := 0; i <= links; i++ {
		ps := ParticleSpec{X: x0 + float64(i)*spacing, Y: y, Color: "#00ffff"}
		if i == 0 {
			ps.Mass = ptr(0)
			ps.Color = "#ff0000"
		}
		s.Particles = append(s.Particles, ps)
		if i > 0 {
			s.Springs = append(s.Springs, SpringSpec{A: i - 1, B: i, Length: ptr(spacing)})
		}
	}
	return s
}

func rainScene(w, h float64) *Scene {
	const drops = 12
	s := &Scene{Name: "rain"}
	for i := 0; i < drops; i++ {
		frac := (float64(i) + 0.5) / drops
		s.Particles = append(s.Particles, ParticleSpec{
			X:     frac * w,
			Y:     h - 20 - float64(i%3)*30,
			VX:    (frac - 0.5) * 60,
			VY:    -float64(i%4) * 10,
			Color: "#4488ff",
		})
	}
	return s
}

func clothScene(w, h float64) *Scene {
	const cols, rows = 6, 4
	const spacing = 40.0
	s := &Scene{Name: "cloth"}
	x0, y0 := w/2-spacing*(cols-1)/2, h-60

	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ps := ParticleSpec{X: x0 + float64(c)*spacing, Y: y0 - float64(r)*spacing, Color: "#ffffff"}
			if r == 0 {
				ps.Mass = ptr(0)
				ps.Color = "#ff0000"
			}
			s.Particles = append(s.Particles, ps)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols && r > 0 {
				s.Springs = append(s.Springs, SpringSpec{A: idx(r, c), B: idx(r, c+1)})
			}
			if r+1 < rows {
				s.Springs = append(s.Springs, SpringSpec{A: idx(r, c), B: idx(r+1, c)})
			}
		}
	}
	return s
}
