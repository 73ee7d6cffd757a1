package curve3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func radii(circles []Circle) []float64 {
	out := make([]float64, len(circles))
	for i, c := range circles {
		out[i] = c.Radius()
	}
	return out
}

func TestCircles(t *testing.T) {
	circles := Circles(demoCurves(t))
	require.Len(t, circles, 3)
	// Filtering preserves the input order.
	assert.Equal(t, []float64{3, 1, 2}, radii(circles))
}

func TestCirclesExcludesRoundEllipses(t *testing.T) {
	curves := []SpaceCurve{
		mustEllipse(t, 2, 2),
		mustHelix(t, 1, 1),
	}
	assert.Empty(t, Circles(curves))
	assert.Empty(t, Circles(nil))
}

func TestSortByRadius(t *testing.T) {
	circles := []Circle{
		mustCircle(t, 5),
		mustCircle(t, 2),
		mustCircle(t, 8),
	}
	SortByRadius(circles)
	assert.Equal(t, []float64{2, 5, 8}, radii(circles))
	assert.InDelta(t, 15, TotalRadius(circles), 1e-12)

	var empty []Circle
	SortByRadius(empty)
	assert.Empty(t, empty)
}

func TestTotalRadius(t *testing.T) {
	circles := []Circle{
		mustCircle(t, 1),
		mustCircle(t, 2),
		mustCircle(t, 3),
	}
	assert.Equal(t, 6.0, TotalRadius(circles))
	assert.Zero(t, TotalRadius(nil))
}
