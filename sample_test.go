package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSampleLerp(t *testing.T) {
	a := Sample{Vec(0, 0), 0.2}
	b := Sample{Vec(10, 20), 0.4}
	diff(t, Sample{Vec(5, 10), 0.3}, a.Lerp(b, 0.5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, b.Lerp(a, 0))
}

func TestSampleDistance(t *testing.T) {
	s1 := Sample{P: Vec(0, 10)}
	s2 := Sample{P: Vec(0, 5), T: 1}
	if d := s1.Distance(s2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	s3 := Sample{P: Vec(-11, 1)}
	s4 := Sample{P: Vec(-7, -2)}
	if d := s3.Distance(s4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}
