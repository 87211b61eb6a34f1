package physics

import (
	"fmt"
	"image/color"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/integrators"
)

const (
	DefaultGravity          = 9.81
	DefaultDt               = 0.01
	DefaultSpringHooke      = 1.0
	DefaultSpringDamp       = 0.1
	DefaultParticleMass     = 1.0
	DefaultParticleRadius   = 5.0
	DefaultMaterialFriction = 0.1
	DefaultMaterialBounce   = 0.4
	DefaultWorldWidth       = 800.0
	DefaultWorldHeight      = 600.0
)

// DefaultMaterialColor is white.
var DefaultMaterialColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Config is the parameter set an Engine is built with. It is copied into
// the engine, so two engines with different configs never interfere.
type Config struct {
	Gravity          float64
	Dt               float64
	SpringHooke      float64
	SpringDamp       float64
	ParticleMass     float64
	ParticleRadius   float64
	MaterialFriction float64
	MaterialBounce   float64
	MaterialColor    color.RGBA
	WorldWidth       float64
	WorldHeight      float64
	Scheme           string
}

func DefaultConfig() Config {
	return Config{
		Gravity:          DefaultGravity,
		Dt:               DefaultDt,
		SpringHooke:      DefaultSpringHooke,
		SpringDamp:       DefaultSpringDamp,
		ParticleMass:     DefaultParticleMass,
		ParticleRadius:   DefaultParticleRadius,
		MaterialFriction: DefaultMaterialFriction,
		MaterialBounce:   DefaultMaterialBounce,
		MaterialColor:    DefaultMaterialColor,
		WorldWidth:       DefaultWorldWidth,
		WorldHeight:      DefaultWorldHeight,
		Scheme:           integrators.Default,
	}
}

// Validate checks every field an Engine depends on.
func (c Config) Validate() error {
	if c.Dt <= 0 {
		return dynamo.Invalid("dt", c.Dt, "must be positive")
	}
	if c.ParticleRadius < 0 {
		return dynamo.Invalid("particle radius", c.ParticleRadius, "must not be negative")
	}
	if c.SpringHooke < 0 {
		return dynamo.Invalid("spring hooke", c.SpringHooke, "must not be negative")
	}
	if c.SpringDamp < 0 {
		return dynamo.Invalid("spring damp", c.SpringDamp, "must not be negative")
	}
	if _, err := NewWorld(dynamo.Zero, c.WorldWidth, c.WorldHeight); err != nil {
		return err
	}
	if _, err := c.DefaultMaterial(); err != nil {
		return err
	}
	if _, err := integrators.Get(c.schemeName()); err != nil {
		return err
	}
	return nil
}

// DefaultMaterial builds a material from the config's material defaults.
func (c Config) DefaultMaterial() (Material, error) {
	return NewMaterial(c.ParticleMass, c.MaterialFriction, c.MaterialBounce, c.MaterialColor)
}

func (c Config) schemeName() string {
	if c.Scheme == "" {
		return integrators.Default
	}
	return c.Scheme
}

// Params returns the tunable scalar parameters by name.
func (c Config) Params() map[string]float64 {
	return map[string]float64{
		"gravity":  c.Gravity,
		"dt":       c.Dt,
		"hooke":    c.SpringHooke,
		"damp":     c.SpringDamp,
		"mass":     c.ParticleMass,
		"radius":   c.ParticleRadius,
		"friction": c.MaterialFriction,
		"bounce":   c.MaterialBounce,
	}
}

// SetParam sets one of the parameters listed by Params. Bounds are checked
// by Validate when the config is used.
func (c *Config) SetParam(name string, value float64) error {
	switch name {
	case "gravity":
		c.Gravity = value
	case "dt":
		c.Dt = value
	case "hooke":
		c.SpringHooke = value
	case "damp":
		c.SpringDamp = value
	case "mass":
		c.ParticleMass = value
	case "radius":
		c.ParticleRadius = value
	case "friction":
		c.MaterialFriction = value
	case "bounce":
		c.MaterialBounce = value
	default:
		return fmt.Errorf("unknown parameter %q", name)
	}
	return nil
}
