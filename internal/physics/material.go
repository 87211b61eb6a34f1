package physics

import (
	"image/color"

	"github.com/san-kum/springsim/internal/dynamo"
)

// Material holds the per-particle physical properties.
type Material struct {
	mass     float64
	friction float64
	bounce   float64
	color    color.RGBA
}

// NewMaterial validates friction and bounce in [0, 1] and mass >= 0.
func NewMaterial(mass, friction, bounce float64, c color.RGBA) (Material, error) {
	if err := checkUnit("friction", friction); err != nil {
		return Material{}, err
	}
	if err := checkUnit("bounce", bounce); err != nil {
		return Material{}, err
	}
	if err := checkMass(mass); err != nil {
		return Material{}, err
	}
	return Material{mass: mass, friction: friction, bounce: bounce, color: c}, nil
}

func (m Material) Mass() float64     { return m.mass }
func (m Material) Friction() float64 { return m.friction }
func (m Material) Bounce() float64   { return m.bounce }
func (m Material) Color() color.RGBA { return m.color }

func (m *Material) SetMass(mass float64) error {
	if err := checkMass(mass); err != nil {
		return err
	}
	m.mass = mass
	return nil
}

func (m *Material) SetFriction(friction float64) error {
	if err := checkUnit("friction", friction); err != nil {
		return err
	}
	m.friction = friction
	return nil
}

func (m *Material) SetBounce(bounce float64) error {
	if err := checkUnit("bounce", bounce); err != nil {
		return err
	}
	m.bounce = bounce
	return nil
}

func (m *Material) SetColor(c color.RGBA) { m.color = c }

func checkUnit(field string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return dynamo.Invalid(field, v, "must be between 0 and 1")
	}
	return nil
}

func checkMass(mass float64) error {
	if !(mass >= 0) {
		return dynamo.Invalid("mass", mass, "must not be negative")
	}
	return nil
}
