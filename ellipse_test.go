package curve3

import (
	"errors"
	"math"
	"testing"
)

func TestEllipseEval(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}

	e := mustEllipse(t, 2, 4)
	for i := range 32 {
		u := 2 * math.Pi * float64(i) / 32
		pt := e.Eval(u)
		x := pt.X / 2
		y := pt.Y / 4
		if n := x*x + y*y; !approxEqual(n, 1) {
			t.Errorf("point at t=%v is off the ellipse, (x/rx)²+(y/ry)² = %v", u, n)
		}
		if pt.Z != 0 {
			t.Errorf("point at t=%v has z=%v, expected 0", u, pt.Z)
		}
	}

	diff(t, e.Eval(0), Pt(2, 0, 0))
}

func TestEllipseDeriv(t *testing.T) {
	e := mustEllipse(t, 2, 4)
	diff(t, e.Deriv(0), Vec(0, 4, 0))

	for _, u := range []float64{0, 1, 3} {
		if z := e.Deriv(u).Z; z != 0 {
			t.Errorf("got derivative z=%v at t=%v, expected 0", z, u)
		}
	}
}

func TestEllipseBoundingBox(t *testing.T) {
	e := mustEllipse(t, 2, 4)
	diff(t, e.BoundingBox(), Rect{-2.0, -4.0, 2.0, 4.0})
}

func TestNewEllipse(t *testing.T) {
	e, err := NewEllipse(2, 4)
	if err != nil {
		t.Fatalf("NewEllipse(2, 4) returned error %v", err)
	}
	if got := e.RadiusX(); got != 2 {
		t.Errorf("got x radius %v, expected 2", got)
	}
	if got := e.RadiusY(); got != 4 {
		t.Errorf("got y radius %v, expected 4", got)
	}
	if got := e.String(); got != "Ellipse(rx=2.00, ry=4.00)" {
		t.Errorf("got description %q, expected %q", got, "Ellipse(rx=2.00, ry=4.00)")
	}

	bad := [][2]float64{
		{0, 1},
		{1, 0},
		{-2, 3},
		{3, -2},
		{math.NaN(), 1},
		{1, math.NaN()},
		{math.Inf(1), 1},
		{1, math.Inf(-1)},
	}
	for _, radii := range bad {
		if _, err := NewEllipse(radii[0], radii[1]); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("NewEllipse(%v, %v) returned %v, expected an error wrapping ErrInvalidParameter", radii[0], radii[1], err)
		}
	}
}

func TestNewEllipseFromCircle(t *testing.T) {
	e := NewEllipseFromCircle(mustCircle(t, 3))
	if e.RadiusX() != 3 || e.RadiusY() != 3 {
		t.Errorf("got radii (%v, %v), expected (3, 3)", e.RadiusX(), e.RadiusY())
	}

	// A round ellipse still is not a Circle.
	var c SpaceCurve = e
	if _, ok := c.(Circle); ok {
		t.Error("an ellipse with equal radii must not be a Circle")
	}
}
