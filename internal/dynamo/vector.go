package dynamo

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector. Methods with value receivers return new values;
// AddIn, SubIn and ScaleIn mutate in place.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Zero is the additive identity.
var Zero = Vec2{}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o, the direction from o to v.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mul is the component-wise product.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div divides both components by s. Division by zero follows IEEE-754.
func (v Vec2) Div(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Pow raises each component to p.
func (v Vec2) Pow(p float64) Vec2 { return Vec2{math.Pow(v.X, p), math.Pow(v.Y, p)} }

func (v Vec2) Equal(o Vec2) bool { return v.X == o.X && v.Y == o.Y }

// ApproxEqual reports whether both components differ by at most tol.
func (v Vec2) ApproxEqual(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}

// Norm is the Euclidean length.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has zero length.
func (v Vec2) Normalize() Vec2 {
	n := v.Norm()
	if n == 0 {
		return Zero
	}
	return Vec2{v.X / n, v.Y / n}
}

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Norm() }

// Sign returns +1 for zero or positive components and -1 for negative ones.
func (v Vec2) Sign() Vec2 {
	s := Vec2{1, 1}
	if v.X < 0 {
		s.X = -1
	}
	if v.Y < 0 {
		s.Y = -1
	}
	return s
}

// IsValid reports whether neither component is NaN or infinite.
func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func (v *Vec2) AddIn(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

func (v *Vec2) SubIn(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

func (v *Vec2) ScaleIn(s float64) {
	v.X *= s
	v.Y *= s
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}
