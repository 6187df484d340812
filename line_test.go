package bezier

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Vec(0.0, 0.0), Vec(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := math.Abs(l.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineEval(t *testing.T) {
	l := Line{Vec(2, 4), Vec(6, -4)}
	diff(t, Vec(2, 4), l.Eval(0))
	diff(t, Vec(3, 2), l.Eval(0.25))
	diff(t, Vec(6, -4), l.Eval(1))
}
