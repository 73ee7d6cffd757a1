package curve3

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Steps is the number of line segments each curve is divided into. A
	// value of 0 uses DefaultPlotSteps.
	Steps int
}

// SVG renders the xy projection of the curves as an SVG document and returns
// it as a string.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(curves []SpaceCurve, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, curves, opts)
	return sb.String()
}

// WriteSVG renders the xy projection of the curves as an SVG document and
// writes it to w. Each curve becomes a polyline path approximating one full
// turn, stroked with a color per variant. The viewport is derived from the
// curves' bounding boxes.
func WriteSVG(w io.Writer, curves []SpaceCurve, opts SVGOptions) error {
	steps := opts.Steps
	if steps <= 0 {
		steps = DefaultPlotSteps
	}
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(s, "0")
		}
	}

	viewport := plotViewport(curves)
	strokeWidth := 0.01 * max(viewport.Width(), viewport.Height())
	writef(`<svg viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		format(viewport.X0), format(viewport.Y0),
		format(viewport.Width()), format(viewport.Height()))
	// Axes first, so the curves draw on top of them.
	writef(`<path d="M%s,0 L%s,0" fill="none" stroke="#CCC" stroke-width="%s" />`+"\n",
		format(viewport.X0), format(viewport.X1), format(strokeWidth))
	writef(`<path d="M0,%s L0,%s" fill="none" stroke="#CCC" stroke-width="%s" />`+"\n",
		format(viewport.Y0), format(viewport.Y1), format(strokeWidth))
	for _, c := range curves {
		writef(`<path d="`)
		first := true
		for pt := range Points(c, 0, 2*math.Pi, steps) {
			if first {
				first = false
				writef("M%s,%s", format(pt.X), format(pt.Y))
			} else {
				writef(" L%s,%s", format(pt.X), format(pt.Y))
			}
		}
		writef(`" fill="none" stroke="%s" stroke-width="%s" />`+"\n",
			svgColor(c), format(strokeWidth))
	}
	writef("</svg>\n")
	return err
}

// svgColor returns the stroke color for a curve variant.
func svgColor(c SpaceCurve) string {
	switch c.(type) {
	case Circle:
		return "red"
	case Ellipse:
		return "green"
	case Helix:
		return "blue"
	default:
		return "black"
	}
}
