package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec(1, 2)
	b := Vec(3, -4)

	diff(t, Vec(-1, -2), a.Negate())
	diff(t, Vec(4, -2), a.Add(b))
	diff(t, Vec(3.5, 4.5), a.AddS(2.5))
	diff(t, Vec(-2, 6), a.Sub(b))
	diff(t, Vec(0, 1), a.SubS(1))
	diff(t, Vec(3, -8), a.MulVec(b))
	diff(t, Vec(2, 4), a.Mul(2))
	diff(t, Vec(0.5, 1), a.Div(2))

	if d := a.Dot(b); d != -5 {
		t.Errorf("got dot product %v, want -5", d)
	}
	if c := a.Cross(b); c != -10 {
		t.Errorf("got cross product %v, want -10", c)
	}
	if l := b.Hypot(); l != 5 {
		t.Errorf("got length %v, want 5", l)
	}
	if l := b.Hypot2(); l != 25 {
		t.Errorf("got squared length %v, want 25", l)
	}
}

func TestVec2AngleTo(t *testing.T) {
	// acos is ill-conditioned near ±1, so parallel vectors only come out
	// close to zero.
	const epsilon = 1e-7
	tests := []struct {
		a, b Vec2
		want float64
	}{
		{Vec(1, 0), Vec(0, 1), math.Pi / 2},
		{Vec(1, 0), Vec(0, -3), math.Pi / 2},
		{Vec(1, 0), Vec(-2, 0), math.Pi},
		{Vec(1, 1), Vec(2, 2), 0},
		{Vec(0.1, 0.7), Vec(0.3, 2.1), 0},
		{Vec(1, 0), Vec(1, 1), math.Pi / 4},
	}
	for _, tt := range tests {
		if got := tt.a.AngleTo(tt.b); math.Abs(got-tt.want) > epsilon {
			t.Errorf("%v.AngleTo(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVec2AngleToDegenerate(t *testing.T) {
	if got := Vec(0, 0).AngleTo(Vec(1, 0)); !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}
	if got := Vec(1, 0).AngleTo(Vec(0, 0)); !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec(0, 0)
	b := Vec(1, 1)
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
	diff(t, Vec(0.5, 0.5), a.Lerp(b, 0.5))
	diff(t, Vec(2.5, -1), Vec(1, 2).Lerp(Vec(4, -4), 0.5), cmpopts.EquateApprox(0, 1e-12))
}
