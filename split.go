package bezier

// Split divides the curve at time t, which is clamped into [0, 1], into two
// curves of the same degree. The first covers [0, t] and the second [t, 1],
// each reparametrized to [0, 1].
//
// The control points of both halves fall out of the shell: the left half uses
// the first point of every layer, the right half the last point of every
// layer, in reverse.
func (c *Curve) Split(t float64) (*Curve, *Curve) {
	shell := c.Shell(t)
	n := len(shell)
	left := &Curve{points: make([]Vec2, n)}
	right := &Curve{points: make([]Vec2, n)}
	for i, layer := range shell {
		left.points[i] = layer[0]
		right.points[n-1-i] = layer[len(layer)-1]
	}
	return left, right
}

// Subsegment returns the part of the curve between t0 and t1 as a curve of the
// same degree. Both times are clamped into [0, 1]. If t1 < t0, the result runs
// backwards.
func (c *Curve) Subsegment(t0, t1 float64) *Curve {
	t0 = clampTime(t0)
	t1 = clampTime(t1)
	if t1 < t0 {
		return c.Subsegment(t1, t0).Reverse()
	}
	if t1 == 0 {
		left, _ := c.Split(0)
		return left
	}
	// Cut off the tail first so that t0 keeps its meaning on the remainder.
	head, _ := c.Split(t1)
	_, seg := head.Split(t0 / t1)
	return seg
}

// Reverse returns a curve with the control points in reverse order. It traces
// the same path in the opposite direction.
func (c *Curve) Reverse() *Curve {
	n := len(c.points)
	out := &Curve{points: make([]Vec2, n)}
	for i, p := range c.points {
		out.points[n-1-i] = p
	}
	return out
}

// Derivative returns the hodograph of the curve: the curve whose value at t is
// the derivative of c at t. For a curve with N control points it has N−1
// control points n·(P[i+1] − P[i]), with n = N−1.
//
// Curves with fewer than two control points are constant and their
// derivative is the empty curve.
func (c *Curve) Derivative() *Curve {
	n := len(c.points) - 1
	if n < 1 {
		return &Curve{}
	}
	out := &Curve{points: make([]Vec2, n)}
	for i := range n {
		out.points[i] = c.points[i+1].Sub(c.points[i]).Mul(float64(n))
	}
	return out
}

// Tangent returns the derivative of the curve at time t, which is clamped
// into [0, 1]. It is the zero vector for curves with fewer than two control
// points.
func (c *Curve) Tangent(t float64) Vec2 {
	return c.Derivative().Eval(t)
}
