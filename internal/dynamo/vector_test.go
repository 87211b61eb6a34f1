package dynamo

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-9

func TestVec2_Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(4, -6)

	if got := a.Add(b); !got.Equal(V(5, -4)) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := b.Sub(a); !got.Equal(V(3, -8)) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Scale(3); !got.Equal(V(3, 6)) {
		t.Errorf("Scale failed: got %v", got)
	}
	if got := a.Mul(b); !got.Equal(V(4, -12)) {
		t.Errorf("Mul failed: got %v", got)
	}
	if got := b.Div(2); !got.Equal(V(2, -3)) {
		t.Errorf("Div failed: got %v", got)
	}
	if got := a.Neg(); !got.Equal(V(-1, -2)) {
		t.Errorf("Neg failed: got %v", got)
	}
	if got := V(2, 3).Pow(2); !got.Equal(V(4, 9)) {
		t.Errorf("Pow failed: got %v", got)
	}
	if got := a.Dot(b); got != -8 {
		t.Errorf("Dot failed: got %v", got)
	}
}

func TestVec2_SubDirection(t *testing.T) {
	from := V(0, 0)
	to := V(3, 0)
	if d := to.Sub(from); d.X <= 0 {
		t.Errorf("to.Sub(from) should point from 'from' to 'to', got %v", d)
	}
}

func TestVec2_RoundTrips(t *testing.T) {
	vecs := []Vec2{V(0, 0), V(1, -1), V(1e6, 3.5), V(-0.001, 42)}
	scalars := []float64{1, -2, 0.5, 1e-3, 7}

	for _, a := range vecs {
		for _, b := range vecs {
			if got := a.Add(b).Sub(b); !got.ApproxEqual(a, 1e-6) {
				t.Errorf("%v + %v - %v = %v", a, b, b, got)
			}
		}
		for _, s := range scalars {
			if got := a.Scale(s).Div(s); !got.ApproxEqual(a, 1e-6) {
				t.Errorf("(%v * %v) / %v = %v", a, s, s, got)
			}
		}
	}
}

func TestVec2_Norm(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected float64
	}{
		{V(3, 4), 5},
		{V(0, 0), 0},
		{V(-3, -4), 5},
		{V(1, 0), 1},
	}

	for _, tt := range tests {
		got := tt.v.Norm()
		if math.Abs(got-tt.expected) > tol {
			t.Errorf("Norm(%v) = %v, want %v", tt.v, got, tt.expected)
		}
		if got < 0 {
			t.Errorf("Norm(%v) negative", tt.v)
		}
		if (got == 0) != tt.v.Equal(Zero) {
			t.Errorf("Norm(%v) == 0 should hold only for the zero vector", tt.v)
		}
	}
}

func TestVec2_Normalize(t *testing.T) {
	u := V(3, 4).Normalize()
	if !u.ApproxEqual(V(0.6, 0.8), tol) {
		t.Errorf("Normalize failed: got %v", u)
	}
	if math.Abs(u.Norm()-1) > tol {
		t.Errorf("unit vector has norm %v", u.Norm())
	}
}

func TestVec2_NormalizeZero(t *testing.T) {
	u := Zero.Normalize()
	if !u.Equal(Zero) {
		t.Errorf("Normalize of zero vector should be zero, got %v", u)
	}
	if !u.IsValid() {
		t.Error("Normalize of zero vector produced NaN")
	}
}

func TestVec2_Distance(t *testing.T) {
	if d := V(1, 1).Distance(V(4, 5)); math.Abs(d-5) > tol {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestVec2_Sign(t *testing.T) {
	tests := []struct {
		v, want Vec2
	}{
		{V(0, 0), V(1, 1)},
		{V(-2, 3), V(-1, 1)},
		{V(5, -0.1), V(1, -1)},
	}
	for _, tt := range tests {
		if got := tt.v.Sign(); !got.Equal(tt.want) {
			t.Errorf("Sign(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec2_InPlace(t *testing.T) {
	v := V(1, 1)
	v.AddIn(V(2, 3))
	v.SubIn(V(1, 1))
	v.ScaleIn(2)
	if !v.Equal(V(4, 6)) {
		t.Errorf("in-place ops failed: got %v", v)
	}
}

func TestVec2_IsValid(t *testing.T) {
	if !V(1, 2).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if V(math.NaN(), 0).IsValid() || V(0, math.Inf(-1)).IsValid() {
		t.Error("non-finite vector reported valid")
	}
}

func TestValidationError(t *testing.T) {
	err := Invalid("friction", 1.5, "must be in [0, 1]")

	if !errors.Is(err, ErrParameterBounds) {
		t.Error("ValidationError should unwrap to ErrParameterBounds")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "friction" {
		t.Errorf("errors.As failed: %v", err)
	}

	expected := "invalid friction 1.5: must be in [0, 1]"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestSimError(t *testing.T) {
	err := SimError{Time: 1.5, Step: 150, Message: "test error", Wrapped: ErrInvalidState}
	expected := "step 150 (t=1.5000): test error"
	if err.Error() != expected {
		t.Errorf("SimError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("SimError should unwrap to its cause")
	}
}

func TestFrame_IsValidAndClone(t *testing.T) {
	f := Frame{
		Step:       3,
		Positions:  []Vec2{V(1, 2)},
		Velocities: []Vec2{V(0, 0)},
	}
	if !f.IsValid() {
		t.Error("finite frame reported invalid")
	}

	c := f.Clone()
	c.Positions[0] = V(math.NaN(), 0)
	if !f.IsValid() {
		t.Error("Clone shares backing storage with the original")
	}
	if c.IsValid() {
		t.Error("frame with NaN reported valid")
	}
}
