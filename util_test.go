package curve3

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustCircle(t *testing.T, radius float64) Circle {
	t.Helper()
	c, err := NewCircle(radius)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustEllipse(t *testing.T, radiusX, radiusY float64) Ellipse {
	t.Helper()
	e, err := NewEllipse(radiusX, radiusY)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func mustHelix(t *testing.T, radius, step float64) Helix {
	t.Helper()
	h, err := NewHelix(radius, step)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func demoCurves(t *testing.T) []SpaceCurve {
	t.Helper()
	return []SpaceCurve{
		mustCircle(t, 3),
		mustEllipse(t, 2, 4),
		mustCircle(t, 1),
		mustHelix(t, 5, 2),
		mustCircle(t, 2),
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
