package bezier

import (
	"math"
)

// Affine is a 2D affine transform. The coefficients (N0, …, N5) map a point
// ⟨x, y⟩ to ⟨N0·x + N2·y + N4, N1·x + N3·y + N5⟩.
//
// Bézier curves are affine invariant: transforming the control points
// transforms every point of the curve, and of its shell, the same way.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity maps every point to itself.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale scales x and y by separate factors.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate moves points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate rotates points about the origin by th radians. Positive angles turn
// the x axis toward the y axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Then returns the transform that applies aff first and o second.
func (aff Affine) Then(o Affine) Affine {
	return Affine{
		o.N0*aff.N0 + o.N2*aff.N1,
		o.N1*aff.N0 + o.N3*aff.N1,
		o.N0*aff.N2 + o.N2*aff.N3,
		o.N1*aff.N2 + o.N3*aff.N3,
		o.N0*aff.N4 + o.N2*aff.N5 + o.N4,
		o.N1*aff.N4 + o.N3*aff.N5 + o.N5,
	}
}

// Transform applies aff to v.
func (v Vec2) Transform(aff Affine) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y + aff.N4,
		Y: aff.N1*v.X + aff.N3*v.Y + aff.N5,
	}
}

// Transform returns a new curve whose control points are those of c
// transformed by aff. c is left unchanged.
func (c *Curve) Transform(aff Affine) *Curve {
	out := &Curve{points: make([]Vec2, len(c.points))}
	for i, p := range c.points {
		out.points[i] = p.Transform(aff)
	}
	return out
}
