package bezier

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"
)

// DefaultAdaptiveThreshold is the turn angle, in radians, that adaptive
// outlines use when OutlineOptions.Threshold isn't set.
const DefaultAdaptiveThreshold = math.Pi / 20

// ErrInvalidPrecision is returned when an outline is requested with a time
// step that isn't a positive, finite number.
var ErrInvalidPrecision = errors.New("bezier: precision must be positive and finite")

// gridSlack is the fraction of a time step below which a grid time counts as
// a duplicate of the explicit final sample at t1.
const gridSlack = 1e-6

// OutlineOptions configures [Curve.Outline] and [Curve.Samples]. A nil
// *OutlineOptions selects uniform sampling.
type OutlineOptions struct {
	// Adaptive selects curvature-adaptive sampling. Instead of emitting a
	// vertex at every time step, a vertex is only emitted once the curve has
	// turned by more than Threshold since the last emitted vertex.
	Adaptive bool
	// Threshold is the turn angle in radians used by adaptive sampling. Values
	// ≤ 0 select DefaultAdaptiveThreshold.
	Threshold float64
}

func (opts *OutlineOptions) threshold() float64 {
	if opts.Threshold > 0 {
		return opts.Threshold
	}
	return DefaultAdaptiveThreshold
}

// Outline returns a polyline approximation of the curve over the time range
// [t0, t1]. See [Curve.Samples] for the exact rules; Outline simply collects
// its samples.
func (c *Curve) Outline(t0, t1, precision float64, opts *OutlineOptions) ([]Sample, error) {
	seq, err := c.Samples(t0, t1, precision, opts)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Samples returns an iterator over a polyline approximation of the curve over
// the time range [t0, t1]. Every sample records the time it was evaluated
// at.
//
// t0 and t1 are clamped into [0, 1] independently; a NaN t0 means 0 and a NaN
// t1 means 1. If the clamped t1 isn't greater than the clamped t0, the
// sequence is empty. precision is the time step between samples and has to be
// positive and finite, otherwise ErrInvalidPrecision is returned.
//
// A curve without control points produces no samples. A curve with a single
// control point produces that point once, at time 0. Otherwise, uniform
// sampling produces samples at t0, t0+precision, t0+2·precision and so on for
// as long as the time is below t1, followed by a sample at exactly t1.
// Adaptive sampling (see [OutlineOptions]) visits the same times but only
// keeps the first two, the ones where the curve turned significantly, and the
// last.
//
// The iterator can be used more than once. It evaluates the control points
// the curve has at the time of iteration.
func (c *Curve) Samples(t0, t1, precision float64, opts *OutlineOptions) (iter.Seq[Sample], error) {
	if !(precision > 0) || math.IsInf(precision, 1) {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidPrecision, precision)
	}
	if math.IsNaN(t1) {
		t1 = 1
	}
	t0 = clampTime(t0)
	t1 = clampTime(t1)

	emit := c.uniform
	if opts != nil && opts.Adaptive {
		threshold := opts.threshold()
		emit = func(t0, t1, precision float64, yield func(Sample) bool) {
			c.adaptive(t0, t1, precision, threshold, yield)
		}
	}

	return func(yield func(Sample) bool) {
		if !(t1 > t0) {
			return
		}
		switch len(c.points) {
		case 0:
		case 1:
			yield(Sample{P: c.points[0], T: 0})
		default:
			emit(t0, t1, precision, yield)
		}
	}, nil
}

// grid returns an iterator over the times t0 + i·precision that lie below t1.
// t0 itself is always produced; callers ensure t0 < t1.
func grid(t0, t1, precision float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(t0) {
			return
		}
		for i := 1; ; i++ {
			t := t0 + float64(i)*precision
			if t >= t1 || t1-t < precision*gridSlack {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

func (c *Curve) sample(t float64) Sample {
	return Sample{P: c.eval(t), T: t}
}

func (c *Curve) uniform(t0, t1, precision float64, yield func(Sample) bool) {
	for t := range grid(t0, t1, precision) {
		if !yield(c.sample(t)) {
			return
		}
	}
	yield(c.sample(t1))
}

func (c *Curve) adaptive(t0, t1, precision, threshold float64, yield func(Sample) bool) {
	// anchor is the last emitted sample and follow the sample right after it.
	// The direction anchor→follow is the reference that later steps are
	// compared against.
	var anchor, follow Sample
	var haveFollow bool
	i := 0
	for t := range grid(t0, t1, precision) {
		s := c.sample(t)
		switch {
		case i == 0:
			if !yield(s) {
				return
			}
			anchor = s
		case i == 1:
			if !yield(s) {
				return
			}
			follow = s
			haveFollow = true
		case !haveFollow:
			follow = s
			haveFollow = true
		default:
			ref := follow.P.Sub(anchor.P)
			step := s.P.Sub(follow.P)
			// NaN angles compare false, so zero-length steps never emit.
			if ref.AngleTo(step) > threshold {
				if !yield(s) {
					return
				}
				anchor = s
				haveFollow = false
			}
		}
		i++
	}
	yield(c.sample(t1))
}

// Reveal returns the part of an outline that lies at or before time t.
//
// The samples must be in increasing time order, as produced by
// [Curve.Outline]. If t falls strictly between two samples, the result ends
// with a sample linearly interpolated between them, so that a polyline can be
// drawn growing smoothly as t advances. If t is at or before the first
// sample, only the first sample is returned; if it is past the last, the
// whole outline is.
//
// The returned slice shares its prefix with samples' backing array only if no
// interpolated sample was appended.
func Reveal(samples []Sample, t float64) []Sample {
	if len(samples) == 0 {
		return nil
	}
	// j is the index of the first sample with a time greater than t.
	j := sort.Search(len(samples), func(i int) bool { return samples[i].T > t })
	if j == 0 {
		return samples[:1]
	}
	if j == len(samples) {
		return samples
	}
	a, b := samples[j-1], samples[j]
	if a.T == t || b.T == a.T {
		return samples[:j]
	}
	l := Line{a.P, b.P}
	u := (t - a.T) / (b.T - a.T)
	out := make([]Sample, j, j+1)
	copy(out, samples[:j])
	return append(out, Sample{P: l.Eval(u), T: t})
}

// Length returns the length of the polyline through the samples.
func Length(samples []Sample) float64 {
	var l float64
	for i := 1; i < len(samples); i++ {
		l += Line{samples[i-1].P, samples[i].P}.Length()
	}
	return l
}
