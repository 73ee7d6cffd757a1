package curve3

import (
	"fmt"
	"math"
)

// Ellipse is an axis-aligned ellipse in the z=0 plane, centered on the
// origin, traversed anticlockwise starting on the positive x axis.
type Ellipse struct {
	radiusX float64
	radiusY float64
}

var _ SpaceCurve = Ellipse{}

// NewEllipse returns the ellipse with the given horizontal and vertical
// radii. Both radii must be positive, finite numbers.
func NewEllipse(radiusX, radiusY float64) (Ellipse, error) {
	if !validParam(radiusX) {
		return Ellipse{}, invalidParam("ellipse", "x radius", radiusX)
	}
	if !validParam(radiusY) {
		return Ellipse{}, invalidParam("ellipse", "y radius", radiusY)
	}
	return Ellipse{radiusX: radiusX, radiusY: radiusY}, nil
}

// NewEllipseFromCircle returns the ellipse with both radii equal to the
// circle's radius.
func NewEllipseFromCircle(c Circle) Ellipse {
	return Ellipse{radiusX: c.radius, radiusY: c.radius}
}

// RadiusX returns the ellipse's radius along the x axis.
func (e Ellipse) RadiusX() float64 {
	return e.radiusX
}

// RadiusY returns the ellipse's radius along the y axis.
func (e Ellipse) RadiusY() float64 {
	return e.radiusY
}

func (e Ellipse) String() string {
	return fmt.Sprintf("Ellipse(rx=%.2f, ry=%.2f)", e.radiusX, e.radiusY)
}

// Eval implements SpaceCurve. The point at parameter t is
// (rx cos t, ry sin t, 0).
func (e Ellipse) Eval(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{
		X: e.radiusX * cos,
		Y: e.radiusY * sin,
	}
}

// Deriv implements SpaceCurve.
func (e Ellipse) Deriv(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{
		X: -e.radiusX * sin,
		Y: e.radiusY * cos,
	}
}

// BoundingBox implements SpaceCurve.
func (e Ellipse) BoundingBox() Rect {
	return Rect{
		X0: -e.radiusX,
		Y0: -e.radiusY,
		X1: e.radiusX,
		Y1: e.radiusY,
	}
}
