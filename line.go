package bezier

// Line is the straight segment between two consecutive vertices of an
// outline.
type Line struct {
	P0 Vec2
	P1 Vec2
}

// Length returns the distance between the segment's end points.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Eval returns the point at fraction t of the way from P0 to P1.
func (l Line) Eval(t float64) Vec2 {
	return l.P0.Lerp(l.P1, t)
}
