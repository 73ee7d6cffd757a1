package curve3

// Rect is an axis-aligned rectangle in the xy plane, used for the bounding
// boxes of curve projections and for plot viewports.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Abs returns a new rectangle with the same extents as r, but ensuring that
// width and height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Inflate returns a new rectangle grown by dx on the left and right and by dy
// on the top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X0: r.X0 - dx,
		Y0: r.Y0 - dy,
		X1: r.X1 + dx,
		Y1: r.Y1 + dy,
	}
}
