package bezier

import (
	"fmt"
)

// Curve is a Bézier curve of arbitrary degree, defined by an ordered list of
// control points.
//
// The number of control points is the curve's degree (sometimes called its
// complexity). A curve with no control points is undefined and evaluates to
// nothing; a curve with a single control point is constant; a curve with two
// control points is a straight line; and a curve with n ≥ 3 control points is
// a Bézier curve of polynomial degree n−1.
//
// Curves are not safe for concurrent use. Nothing is cached: every evaluation
// recomputes from the current control points.
type Curve struct {
	points []Vec2
	// gen is incremented by Clear to invalidate outstanding handles.
	gen uint64
}

// New returns a curve with the given control points, in order.
func New(points ...Vec2) *Curve {
	c := &Curve{}
	for _, p := range points {
		c.Add(p.X, p.Y)
	}
	return c
}

// Add appends the control point (x, y) and returns a handle to it.
func (c *Curve) Add(x, y float64) ControlPoint {
	c.points = append(c.points, Vec(x, y))
	return ControlPoint{curve: c, index: len(c.points) - 1, gen: c.gen}
}

// Clear removes all control points. Handles returned by Add or Handle before
// the call become invalid.
func (c *Curve) Clear() {
	c.points = c.points[:0]
	c.gen++
}

// Degree returns the number of control points.
func (c *Curve) Degree() int {
	return len(c.points)
}

// Point returns the i-th control point. It panics if i is out of range.
func (c *Curve) Point(i int) Vec2 {
	c.checkIndex(i)
	return c.points[i]
}

// SetPoint moves the i-th control point to v. It panics if i is out of range.
func (c *Curve) SetPoint(i int, v Vec2) {
	c.checkIndex(i)
	c.points[i] = v
}

// Points returns a copy of the control points.
func (c *Curve) Points() []Vec2 {
	out := make([]Vec2, len(c.points))
	copy(out, c.points)
	return out
}

// Handle returns a handle to the i-th control point. It panics if i is out of
// range.
func (c *Curve) Handle(i int) ControlPoint {
	c.checkIndex(i)
	return ControlPoint{curve: c, index: i, gen: c.gen}
}

func (c *Curve) checkIndex(i int) {
	if i < 0 || i >= len(c.points) {
		panic(fmt.Sprintf("control point index %d out of range [0, %d)", i, len(c.points)))
	}
}

// clampTime clamps t into [0, 1]. NaN maps to 0.
func clampTime(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Shell runs de Casteljau's algorithm at time t and returns every layer it
// produces.
//
// t is clamped into [0, 1]. Layer 0 is a copy of the control points; each
// following layer interpolates adjacent pairs of its predecessor and is one
// point shorter. For a curve of degree N ≥ 1 there are N layers, and the
// single point of the last layer is the curve evaluated at t. A curve of
// degree 0 has no layers.
func (c *Curve) Shell(t float64) [][]Vec2 {
	n := len(c.points)
	if n == 0 {
		return [][]Vec2{}
	}
	t = clampTime(t)

	shell := make([][]Vec2, 0, n)
	layer := make([]Vec2, n)
	copy(layer, c.points)
	shell = append(shell, layer)
	for len(layer) > 1 {
		next := make([]Vec2, len(layer)-1)
		for i := range next {
			next[i] = layer[i].Lerp(layer[i+1], t)
		}
		shell = append(shell, next)
		layer = next
	}
	return shell
}

// At evaluates the curve at time t, which is clamped into [0, 1]. The
// returned sample records the clamped time.
//
// At reports false for a curve without control points. A curve with a single
// control point evaluates to that point for every t.
func (c *Curve) At(t float64) (Sample, bool) {
	t = clampTime(t)
	switch len(c.points) {
	case 0:
		return Sample{}, false
	case 1:
		return Sample{P: c.points[0], T: t}, true
	default:
		return Sample{P: c.eval(t), T: t}, true
	}
}

// Eval evaluates the curve at time t, which is clamped into [0, 1]. It returns
// the zero vector for a curve without control points.
func (c *Curve) Eval(t float64) Vec2 {
	s, _ := c.At(t)
	return s.P
}

// Start returns the first control point, or the zero vector for an empty
// curve.
func (c *Curve) Start() Vec2 {
	if len(c.points) == 0 {
		return Vec2{}
	}
	return c.points[0]
}

// End returns the last control point, or the zero vector for an empty curve.
func (c *Curve) End() Vec2 {
	if len(c.points) == 0 {
		return Vec2{}
	}
	return c.points[len(c.points)-1]
}

// eval computes the last shell layer in place, without keeping the
// intermediate layers around. t must already be clamped and the curve must
// have at least one control point.
func (c *Curve) eval(t float64) Vec2 {
	layer := make([]Vec2, len(c.points))
	copy(layer, c.points)
	for n := len(layer) - 1; n > 0; n-- {
		for i := range n {
			layer[i] = layer[i].Lerp(layer[i+1], t)
		}
	}
	return layer[0]
}

// ControlPoint is a handle to one control point of a curve. It stays valid
// until the curve is cleared.
//
// Handles are how editing tools move control points around. They refer to the
// point by position rather than owning it.
type ControlPoint struct {
	curve *Curve
	index int
	gen   uint64
}

// Index returns the position of the control point in its curve.
func (cp ControlPoint) Index() int {
	return cp.index
}

// Valid reports whether the handle still refers to a control point.
func (cp ControlPoint) Valid() bool {
	return cp.curve != nil && cp.gen == cp.curve.gen && cp.index < len(cp.curve.points)
}

// Get returns the current position of the control point. It panics if the
// handle is no longer valid.
func (cp ControlPoint) Get() Vec2 {
	cp.check()
	return cp.curve.points[cp.index]
}

// Set moves the control point to v. It panics if the handle is no longer
// valid.
func (cp ControlPoint) Set(v Vec2) {
	cp.check()
	cp.curve.points[cp.index] = v
}

func (cp ControlPoint) check() {
	if !cp.Valid() {
		panic(fmt.Sprintf("stale handle to control point %d", cp.index))
	}
}
