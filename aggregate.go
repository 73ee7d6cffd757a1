package curve3

import (
	"cmp"
	"slices"
)

// Circles returns the circles in curves, preserving their relative order.
// The other variants are skipped; an ellipse with equal radii is not a
// circle.
func Circles(curves []SpaceCurve) []Circle {
	var circles []Circle
	for _, c := range curves {
		if c, ok := c.(Circle); ok {
			circles = append(circles, c)
		}
	}
	return circles
}

// SortByRadius sorts circles in place by ascending radius. The sort is
// stable: circles with equal radii keep their relative order.
func SortByRadius(circles []Circle) {
	slices.SortStableFunc(circles, func(a, b Circle) int {
		return cmp.Compare(a.radius, b.radius)
	})
}

// TotalRadius returns the sum of the circles' radii, accumulated left to
// right. An empty slice sums to 0.
func TotalRadius(circles []Circle) float64 {
	var total float64
	for _, c := range circles {
		total += c.radius
	}
	return total
}
