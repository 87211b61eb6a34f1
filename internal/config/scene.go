package config

import (
	"fmt"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/physics"
)

// Scene lists the particles and springs an engine starts with.
type Scene struct {
	Name      string         `yaml:"name"`
	Particles []ParticleSpec `yaml:"particles"`
	Springs   []SpringSpec   `yaml:"springs"`
}

// ParticleSpec describes one particle. Nil material fields fall back to the
// physics defaults.
type ParticleSpec struct {
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	VX       float64  `yaml:"vx,omitempty"`
	VY       float64  `yaml:"vy,omitempty"`
	Mass     *float64 `yaml:"mass,omitempty"`
	Friction *float64 `yaml:"friction,omitempty"`
	Bounce   *float64 `yaml:"bounce,omitempty"`
	Color    string   `yaml:"color,omitempty"`
}

// SpringSpec connects particles A and B by index. A nil Length uses the
// endpoint distance at build time.
type SpringSpec struct {
	A      int      `yaml:"a"`
	B      int      `yaml:"b"`
	Length *float64 `yaml:"length,omitempty"`
	Hooke  *float64 `yaml:"hooke,omitempty"`
	Damp   *float64 `yaml:"damp,omitempty"`
}

// Build constructs an engine from cfg and populates it from the scene.
func Build(cfg physics.Config, scene *Scene) (*physics.Engine, error) {
	eng, err := physics.NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	if scene == nil {
		return eng, nil
	}

	for i, ps := range scene.Particles {
		mat, err := ps.material(cfg)
		if err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		eng.AddParticle(dynamo.V(ps.X, ps.Y), dynamo.V(ps.VX, ps.VY), mat)
	}

	for i, ss := range scene.Springs {
		hooke, damp := cfg.SpringHooke, cfg.SpringDamp
		if ss.Hooke != nil {
			hooke = *ss.Hooke
		}
		if ss.Damp != nil {
			damp = *ss.Damp
		}
		var length float64
		if ss.Length != nil {
			length = *ss.Length
		} else if ss.A >= 0 && ss.A < len(scene.Particles) && ss.B >= 0 && ss.B < len(scene.Particles) {
			a, b := scene.Particles[ss.A], scene.Particles[ss.B]
			length = dynamo.V(a.X, a.Y).Distance(dynamo.V(b.X, b.Y))
		}
		if _, err := eng.AddSpringWith(ss.A, ss.B, length, hooke, damp); err != nil {
			return nil, fmt.Errorf("spring %d: %w", i, err)
		}
	}

	return eng, nil
}

func (ps ParticleSpec) material(cfg physics.Config) (physics.Material, error) {
	mass, friction, bounce := cfg.ParticleMass, cfg.MaterialFriction, cfg.MaterialBounce
	if ps.Mass != nil {
		mass = *ps.Mass
	}
	if ps.Friction != nil {
		friction = *ps.Friction
	}
	if ps.Bounce != nil {
		bounce = *ps.Bounce
	}
	col := cfg.MaterialColor
	if ps.Color != "" {
		c, err := ParseColor(ps.Color)
		if err != nil {
			return physics.Material{}, err
		}
		col = c
	}
	return physics.NewMaterial(mass, friction, bounce, col)
}

// Resolve picks the scene to run: the one in the file if present, else the
// named preset.
func Resolve(file *File, preset string) (*Scene, error) {
	if file != nil && file.Scene != nil && preset == "" {
		return file.Scene, nil
	}
	if preset == "" {
		preset = DefaultScene
	}
	w, h := physics.DefaultWorldWidth, physics.DefaultWorldHeight
	if file != nil {
		w, h = file.Physics.WorldWidth, file.Physics.WorldHeight
	}
	scene := GetPreset(preset, w, h)
	if scene == nil {
		return nil, fmt.Errorf("unknown scene: %s (available: %v)", preset, ListPresets())
	}
	return scene, nil
}

func ptr(v float64) *float64 { return &v }
