package curve3

// DefaultPlotSteps is the number of line segments a curve is divided into
// when plotting, if no explicit step count is given.
const DefaultPlotSteps = 128

// plotViewport returns the union of the curves' xy bounding boxes, grown by a
// 5% margin. An empty collection gets the unit viewport.
func plotViewport(curves []SpaceCurve) Rect {
	if len(curves) == 0 {
		return Rect{X0: -1, Y0: -1, X1: 1, Y1: 1}
	}
	bbox := curves[0].BoundingBox()
	for _, c := range curves[1:] {
		bbox = bbox.Union(c.BoundingBox())
	}
	margin := 0.05 * max(bbox.Width(), bbox.Height())
	return bbox.Inflate(margin, margin)
}
