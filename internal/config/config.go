package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springsim/internal/physics"
)

const DefaultScene = "triple"

// File is the on-disk configuration: engine parameters plus an optional
// scene. Fields left out of the YAML keep their defaults.
type File struct {
	Physics PhysicsConfig `yaml:"physics"`
	Scene   *Scene        `yaml:"scene,omitempty"`
}

type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	Dt               float64 `yaml:"dt"`
	Scheme           string  `yaml:"scheme"`
	SpringHooke      float64 `yaml:"spring_hooke"`
	SpringDamp       float64 `yaml:"spring_damp"`
	ParticleMass     float64 `yaml:"particle_mass"`
	ParticleRadius   float64 `yaml:"particle_radius"`
	MaterialFriction float64 `yaml:"material_friction"`
	MaterialBounce   float64 `yaml:"material_bounce"`
	MaterialColor    string  `yaml:"material_color"`
	WorldWidth       float64 `yaml:"world_width"`
	WorldHeight      float64 `yaml:"world_height"`
}

func DefaultConfig() *File {
	return &File{Physics: FromPhysics(physics.DefaultConfig())}
}

// FromPhysics converts an engine config to its YAML form.
func FromPhysics(c physics.Config) PhysicsConfig {
	return PhysicsConfig{
		Gravity:          c.Gravity,
		Dt:               c.Dt,
		Scheme:           c.Scheme,
		SpringHooke:      c.SpringHooke,
		SpringDamp:       c.SpringDamp,
		ParticleMass:     c.ParticleMass,
		ParticleRadius:   c.ParticleRadius,
		MaterialFriction: c.MaterialFriction,
		MaterialBounce:   c.MaterialBounce,
		MaterialColor:    FormatColor(c.MaterialColor),
		WorldWidth:       c.WorldWidth,
		WorldHeight:      c.WorldHeight,
	}
}

// Engine converts the YAML form to a validated engine config.
func (p PhysicsConfig) Engine() (physics.Config, error) {
	c := physics.Config{
		Gravity:          p.Gravity,
		Dt:               p.Dt,
		Scheme:           p.Scheme,
		SpringHooke:      p.SpringHooke,
		SpringDamp:       p.SpringDamp,
		ParticleMass:     p.ParticleMass,
		ParticleRadius:   p.ParticleRadius,
		MaterialFriction: p.MaterialFriction,
		MaterialBounce:   p.MaterialBounce,
		WorldWidth:       p.WorldWidth,
		WorldHeight:      p.WorldHeight,
		MaterialColor:    physics.DefaultMaterialColor,
	}
	if p.MaterialColor != "" {
		col, err := ParseColor(p.MaterialColor)
		if err != nil {
			return physics.Config{}, err
		}
		c.MaterialColor = col
	}
	if err := c.Validate(); err != nil {
		return physics.Config{}, err
	}
	return c, nil
}

func Parse(data []byte) (*File, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Marshal(cfg *File) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func Save(path string, cfg *File) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParseColor reads a #rrggbb string.
func ParseColor(hex string) (color.RGBA, error) {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", hex)
}

func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
