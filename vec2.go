package bezier

import (
	"fmt"
	"math"
)

// Vec2 is a two-dimensional vector. It is used both for positions (control
// points and points on a curve) and for displacements between them.
//
// Vec2 is a value type. None of its methods modify the receiver.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// AddS adds s to both components.
func (v Vec2) AddS(s float64) Vec2 {
	return Vec2{
		X: v.X + s,
		Y: v.Y + s,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// SubS subtracts s from both components.
func (v Vec2) SubS(s float64) Vec2 {
	return v.AddS(-s)
}

// MulVec returns the component-wise product ⟨v.x·o.x, v.y·o.y⟩.
func (v Vec2) MulVec(o Vec2) Vec2 {
	return Vec2{
		X: v.X * o.X,
		Y: v.Y * o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// AngleTo returns the unsigned angle in radians between v and o, in the range
// [0, π]. This is acos(v·o / (|v| |o|)).
//
// The result is NaN if either vector has zero length. Callers that may pass
// degenerate vectors have to check for that themselves.
func (v Vec2) AngleTo(o Vec2) float64 {
	cos := v.Dot(o) / (v.Hypot() * o.Hypot())
	// min and max propagate NaN, so degenerate input stays NaN while rounding
	// on (anti)parallel vectors can't push us out of acos's domain.
	return math.Acos(max(-1, min(1, cos)))
}

// Lerp linearly interpolates between two vectors, returning v·(1−t) + o·t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return o.Mul(t).Add(v.Mul(1 - t))
}

// Distance returns the euclidean distance between two positions.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}
