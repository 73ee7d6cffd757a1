package curve3

import (
	"fmt"
	"math"
)

// Circle is a circle in the z=0 plane, centered on the origin, traversed
// anticlockwise starting on the positive x axis.
type Circle struct {
	radius float64
}

var _ SpaceCurve = Circle{}

// NewCircle returns the circle with the given radius. The radius must be a
// positive, finite number.
func NewCircle(radius float64) (Circle, error) {
	if !validParam(radius) {
		return Circle{}, invalidParam("circle", "radius", radius)
	}
	return Circle{radius: radius}, nil
}

// Radius returns the circle's radius.
func (c Circle) Radius() float64 {
	return c.radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(r=%.2f)", c.radius)
}

// Eval implements SpaceCurve. The point at parameter t is
// (r cos t, r sin t, 0).
func (c Circle) Eval(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{
		X: c.radius * cos,
		Y: c.radius * sin,
	}
}

// Deriv implements SpaceCurve.
func (c Circle) Deriv(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{
		X: -c.radius * sin,
		Y: c.radius * cos,
	}
}

// BoundingBox implements SpaceCurve.
func (c Circle) BoundingBox() Rect {
	return Rect{
		X0: -c.radius,
		Y0: -c.radius,
		X1: c.radius,
		Y1: c.radius,
	}
}
