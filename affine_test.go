package bezier

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, got Vec2, want Vec2, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Vec(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, -1)), Vec(6, -4), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Vec(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Vec(8, 10), epsilon)
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	p := Vec(3, 4)

	// Order matters.
	assertNear(t, p.Transform(Rotate(math.Pi/2).Then(Translate(Vec(1, 0)))), Vec(-3, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(1, 0)).Then(Rotate(math.Pi/2))), Vec(-4, 4), epsilon)

	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	for _, p := range []Vec2{Vec(1, 0), Vec(0, 1), Vec(1, 1), Vec(-2, 7)} {
		assertNear(t, p.Transform(a1.Then(a2)), p.Transform(a1).Transform(a2), epsilon)
		assertNear(t, p.Transform(a2.Then(a1)), p.Transform(a2).Transform(a1), epsilon)
	}
}

func TestCurveTransform(t *testing.T) {
	const epsilon = 1e-9
	c := New(Vec(0, 0), Vec(40, 100), Vec(100, 30), Vec(80, -10))
	aff := Rotate(0.3).Then(Scale(2, 0.5)).Then(Translate(Vec(7, -3)))
	tc := c.Transform(aff)

	if tc.Degree() != c.Degree() {
		t.Fatalf("transformed curve has degree %d, want %d", tc.Degree(), c.Degree())
	}
	for _, ts := range []float64{0, 0.25, 0.5, 0.8, 1} {
		assertNear(t, tc.Eval(ts), c.Eval(ts).Transform(aff), epsilon)
	}

	// The original curve is left alone.
	diff(t, Vec(40, 100), c.Point(1))
}
