package bezier

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Bernstein evaluates the Bernstein basis polynomial
//
//	b(i, n)(t) = C(n, i) · tⁱ · (1−t)ⁿ⁻ⁱ
//
// It panics if i is not in [0, n].
func Bernstein(n, i int, t float64) float64 {
	return float64(combin.Binomial(n, i)) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// EvalBernstein evaluates the curve at time t, which is clamped into [0, 1],
// as a weighted sum of its control points in the Bernstein basis. It agrees
// with [Curve.At] up to rounding error, but is less numerically stable than
// de Casteljau's algorithm for curves with many control points.
//
// EvalBernstein reports false for a curve without control points.
func (c *Curve) EvalBernstein(t float64) (Sample, bool) {
	t = clampTime(t)
	if len(c.points) == 0 {
		return Sample{}, false
	}
	n := len(c.points) - 1
	var p Vec2
	for i, pt := range c.points {
		p = p.Add(pt.Mul(Bernstein(n, i, t)))
	}
	return Sample{P: p, T: t}, true
}
