package physics

import (
	"errors"
	"image/color"
	"testing"

	"github.com/san-kum/springsim/internal/dynamo"
)

var white = color.RGBA{255, 255, 255, 255}

func TestNewMaterial_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		mass     float64
		friction float64
		bounce   float64
		field    string
	}{
		{"negative friction", 1, -0.1, 0.4, "friction"},
		{"friction above one", 1, 1.1, 0.4, "friction"},
		{"negative bounce", 1, 0.1, -0.1, "bounce"},
		{"bounce above one", 1, 0.1, 1.1, "bounce"},
		{"negative mass", -1, 0.1, 0.4, "mass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMaterial(tt.mass, tt.friction, tt.bounce, white)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var ve *dynamo.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, ve.Field)
			}
			if !errors.Is(err, dynamo.ErrParameterBounds) {
				t.Error("expected ErrParameterBounds")
			}
		})
	}
}

func TestNewMaterial_Edges(t *testing.T) {
	tests := []struct {
		name                   string
		mass, friction, bounce float64
	}{
		{"zero friction", 1, 0, 0.4},
		{"unit friction", 1, 1, 0.4},
		{"zero bounce", 1, 0.1, 0},
		{"unit bounce", 1, 0.1, 1},
		{"zero mass", 0, 0.1, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMaterial(tt.mass, tt.friction, tt.bounce, white)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Mass() != tt.mass || m.Friction() != tt.friction || m.Bounce() != tt.bounce {
				t.Errorf("fields not stored: %+v", m)
			}
		})
	}
}

func TestMaterial_Setters(t *testing.T) {
	m, err := NewMaterial(1, 0.1, 0.4, white)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.SetFriction(2); err == nil {
		t.Error("SetFriction(2) should fail")
	}
	if m.Friction() != 0.1 {
		t.Error("rejected SetFriction changed the value")
	}
	if err := m.SetBounce(0.9); err != nil || m.Bounce() != 0.9 {
		t.Errorf("SetBounce failed: %v", err)
	}
	if err := m.SetMass(-3); err == nil {
		t.Error("SetMass(-3) should fail")
	}
	if err := m.SetMass(0); err != nil || m.Mass() != 0 {
		t.Errorf("SetMass(0) failed: %v", err)
	}

	red := color.RGBA{255, 0, 0, 255}
	m.SetColor(red)
	if m.Color() != red {
		t.Errorf("SetColor failed: %v", m.Color())
	}
}

func TestNewWorld(t *testing.T) {
	w, err := NewWorld(dynamo.V(1, 2), 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if w.Width() != 100 || w.Height() != 50 || !w.Center().Equal(dynamo.V(1, 2)) {
		t.Errorf("accessors wrong: %+v", w)
	}
	if !w.Contains(dynamo.V(100, 0)) || w.Contains(dynamo.V(-1, 10)) {
		t.Error("Contains wrong at edges")
	}

	for _, dims := range [][2]float64{{0, 10}, {10, 0}, {-5, 10}} {
		if _, err := NewWorld(dynamo.Zero, dims[0], dims[1]); !errors.Is(err, dynamo.ErrParameterBounds) {
			t.Errorf("NewWorld(%v) should fail with ErrParameterBounds, got %v", dims, err)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative radius", func(c *Config) { c.ParticleRadius = -1 }},
		{"negative hooke", func(c *Config) { c.SpringHooke = -1 }},
		{"negative damp", func(c *Config) { c.SpringDamp = -0.1 }},
		{"zero width", func(c *Config) { c.WorldWidth = 0 }},
		{"bad friction", func(c *Config) { c.MaterialFriction = 3 }},
		{"unknown scheme", func(c *Config) { c.Scheme = "rk4" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestConfig_SetParam(t *testing.T) {
	cfg := DefaultConfig()

	for name := range cfg.Params() {
		if err := cfg.SetParam(name, 0.5); err != nil {
			t.Errorf("SetParam(%q) failed: %v", name, err)
		}
	}
	for name, v := range cfg.Params() {
		if v != 0.5 {
			t.Errorf("param %q = %v, want 0.5", name, v)
		}
	}

	if err := cfg.SetParam("viscosity", 1); err == nil {
		t.Error("expected error for unknown parameter")
	}

	cfg = DefaultConfig()
	_ = cfg.SetParam("bounce", 2)
	if err := cfg.Validate(); err == nil {
		t.Error("expected out of range bounce to fail validation")
	}
}
