package bezier

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// SVG converts a polyline to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(points []Vec2, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, points, opts)
	return sb.String()
}

// WriteSVG converts a polyline to a string of SVG path commands and writes it
// to w. The polyline starts with a move to the first point, followed by a line
// to every other point. No output is produced for an empty polyline.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, points []Vec2, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	for i, pt := range points {
		if err != nil {
			return err
		}
		switch i {
		case 0:
			writef("M%s,%s", opts.format(pt.X), opts.format(pt.Y))
		default:
			writef(" L%s,%s", opts.format(pt.X), opts.format(pt.Y))
		}
	}
	return err
}

// Positions returns the positions of the samples, dropping their times.
func Positions(samples []Sample) []Vec2 {
	out := make([]Vec2, len(samples))
	for i, s := range samples {
		out[i] = s.P
	}
	return out
}

// WriteShellSVG writes the layers of a shell, as returned by [Curve.Shell], as
// SVG path commands, one line per layer. Layers with a single point are
// written as a lone move command.
func WriteShellSVG(w io.Writer, shell [][]Vec2, opts SVGOptions) error {
	for _, layer := range shell {
		if err := WriteSVG(w, layer, opts); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
