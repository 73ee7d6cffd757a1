package curve3

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrInvalidParameter is returned by curve constructors when a shape
// parameter is not a positive, finite number. Use [errors.Is] to test for it.
var ErrInvalidParameter = errors.New("invalid curve parameter")

// invalidParam wraps ErrInvalidParameter with the offending curve, field, and
// value.
func invalidParam(curve, field string, value float64) error {
	return fmt.Errorf("%w: %s %s must be a positive, finite number, got %v",
		ErrInvalidParameter, curve, field, value)
}

// validParam reports whether v is a usable shape parameter.
func validParam(v float64) bool {
	// v > 0 is false for NaN.
	return v > 0 && !math.IsInf(v, 0)
}

// SpaceCurve describes a curve in 3D space parametrized by a scalar.
//
// The parameter is an angle in radians and is not restricted to any interval;
// closed curves repeat with period 2π. The String method returns a short
// human-readable description of the curve and its shape parameters.
type SpaceCurve interface {
	fmt.Stringer

	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point

	// Deriv evaluates the first derivative of the curve at parameter t.
	Deriv(t float64) Vec3

	// BoundingBox returns the smallest rectangle that encloses the curve's
	// projection onto the xy plane.
	BoundingBox() Rect
}

// Tangent returns the unit tangent of the curve at parameter t.
func Tangent(c SpaceCurve, t float64) Vec3 {
	return c.Deriv(t).Normalize()
}

// Points samples the curve at steps+1 evenly spaced parameter values in
// [from, to], yielding the curve points in parameter order. Steps smaller
// than 1 are treated as 1.
func Points(c SpaceCurve, from, to float64, steps int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if steps < 1 {
			steps = 1
		}
		dt := (to - from) / float64(steps)
		for i := 0; i <= steps; i++ {
			if !yield(c.Eval(from + float64(i)*dt)) {
				return
			}
		}
	}
}
