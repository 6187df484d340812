// Package bezier evaluates Bézier curves of arbitrary degree. It was designed
// to serve interactive tools that draw a curve, animate its construction, and
// let users drag its control points around, but it contains no drawing or
// input handling of its own.
//
// # Curves
//
// A [Curve] is an ordered list of control points. Points are appended with
// [Curve.Add] and removed all at once with [Curve.Clear]; the number of
// control points is the curve's [Curve.Degree]. The degree determines what
// kind of curve it is:
//
//   - 0: undefined. Evaluating it yields nothing.
//   - 1: a constant curve that is the same point for every t.
//   - 2: a straight line between the two points.
//   - n ≥ 3: a Bézier curve of polynomial degree n−1.
//
// [Curve.Add] returns a [ControlPoint], a handle through which editing tools
// can move a control point after the fact.
//
// # Time
//
// Curves are parametrized by a time t ∈ [0, 1]. All operations clamp their
// time arguments into that range, so t slightly outside of it (as commonly
// happens while dragging) is harmless.
//
// # Evaluation
//
// [Curve.At] evaluates the curve with de Casteljau's algorithm. [Curve.Shell]
// returns every intermediate layer of that algorithm, which is what one draws
// to visualize how a point on the curve is constructed. [Curve.EvalBernstein]
// evaluates the same polynomial in the Bernstein basis.
//
// # Outlines
//
// [Curve.Outline] approximates the curve, or part of it, by a polyline of
// time-stamped [Sample] values. Samples are either spaced uniformly in time,
// or placed adaptively where the curve turns (see [OutlineOptions]).
// [Reveal] cuts an outline off at a given time, interpolating the final
// partial segment, which is useful for animating a curve being drawn.
// [WriteSVG] turns points into SVG path data.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bezier
