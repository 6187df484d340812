package bezier

import (
	"fmt"
)

// Sample is a point on a curve together with the parameter it was evaluated
// at.
type Sample struct {
	P Vec2
	T float64
}

// Splat returns the sample's x and y coordinates and its time.
func (s Sample) Splat() (x, y, t float64) {
	return s.P.X, s.P.Y, s.T
}

func (s Sample) String() string {
	return fmt.Sprintf("(%g, %g)@%g", s.P.X, s.P.Y, s.T)
}

// Lerp linearly interpolates both the position and the time of two samples.
func (s Sample) Lerp(o Sample, u float64) Sample {
	return Sample{
		P: s.P.Lerp(o.P, u),
		T: s.T*(1-u) + o.T*u,
	}
}

// Distance returns the euclidean distance between the positions of two
// samples.
func (s Sample) Distance(o Sample) float64 {
	return s.P.Distance(o.P)
}
