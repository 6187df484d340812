package bezier

// Rect is an axis-aligned rectangle spanning X0..X1 and Y0..Y1. The rectangles
// returned by this package always have X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r Rect) grow(p Vec2) Rect {
	return Rect{
		X0: min(r.X0, p.X),
		Y0: min(r.Y0, p.Y),
		X1: max(r.X1, p.X),
		Y1: max(r.Y1, p.Y),
	}
}

func boundsOf(points []Vec2) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	first := points[0]
	r := Rect{first.X, first.Y, first.X, first.Y}
	for _, p := range points[1:] {
		r = r.grow(p)
	}
	return r, true
}

// ControlBox returns the rectangle enclosing the control points. A Bézier
// curve lies within the convex hull of its control points, so the curve lies
// within this rectangle too. It reports false for an empty curve.
func (c *Curve) ControlBox() (Rect, bool) {
	return boundsOf(c.points)
}

// BoundingBox returns the rectangle enclosing the samples of an outline. It
// reports false if there are no samples.
func BoundingBox(samples []Sample) (Rect, bool) {
	return boundsOf(Positions(samples))
}
