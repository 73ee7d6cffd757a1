package curve3

import (
	"fmt"
	"math"
)

// Helix is a circular helix that winds anticlockwise around the z axis with a
// constant pitch. Its projection onto the xy plane is a circle; each full
// turn rises by the helix's step.
type Helix struct {
	radius float64
	step   float64
}

var _ SpaceCurve = Helix{}

// NewHelix returns the helix with the given radius and step. Both must be
// positive, finite numbers.
func NewHelix(radius, step float64) (Helix, error) {
	if !validParam(radius) {
		return Helix{}, invalidParam("helix", "radius", radius)
	}
	if !validParam(step) {
		return Helix{}, invalidParam("helix", "step", step)
	}
	return Helix{radius: radius, step: step}, nil
}

// Radius returns the helix's radius.
func (h Helix) Radius() float64 {
	return h.radius
}

// Step returns the helix's rise per full turn.
func (h Helix) Step() float64 {
	return h.step
}

func (h Helix) String() string {
	return fmt.Sprintf("Helix(r=%.2f, step=%.2f)", h.radius, h.step)
}

// Eval implements SpaceCurve. The point at parameter t is
// (r cos t, r sin t, step·t/2π).
func (h Helix) Eval(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{
		X: h.radius * cos,
		Y: h.radius * sin,
		Z: h.step * t / (2 * math.Pi),
	}
}

// Deriv implements SpaceCurve. The z component is constant: the helix rises
// at step/2π per radian.
func (h Helix) Deriv(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{
		X: -h.radius * sin,
		Y: h.radius * cos,
		Z: h.step / (2 * math.Pi),
	}
}

// BoundingBox implements SpaceCurve.
func (h Helix) BoundingBox() Rect {
	return Rect{
		X0: -h.radius,
		Y0: -h.radius,
		X1: h.radius,
		Y1: h.radius,
	}
}
