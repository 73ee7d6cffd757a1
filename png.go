package curve3

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// PlotOptions specifies optional settings for [EncodePNG].
type PlotOptions struct {
	// Width and Height are the image dimensions in pixels. Values of 0 use
	// DefaultPlotSize.
	Width  int
	Height int
	// Steps is the number of line segments each curve is divided into. A
	// value of 0 uses DefaultPlotSteps.
	Steps int
}

// DefaultPlotSize is the edge length, in pixels, of encoded plot images when
// no explicit size is given.
const DefaultPlotSize = 512

// EncodePNG rasterizes the xy projection of the curves and writes it to w as
// a PNG image. Each curve is drawn as a stroked polyline approximating one
// full turn, with a color per variant, on a white background.
func EncodePNG(w io.Writer, curves []SpaceCurve, opts PlotOptions) error {
	width := opts.Width
	if width <= 0 {
		width = DefaultPlotSize
	}
	height := opts.Height
	if height <= 0 {
		height = DefaultPlotSize
	}
	steps := opts.Steps
	if steps <= 0 {
		steps = DefaultPlotSteps
	}

	viewport := plotViewport(curves)
	// Uniform scale that fits the viewport into the image, centered.
	scale := min(float64(width)/viewport.Width(), float64(height)/viewport.Height())
	offX := 0.5 * (float64(width) - viewport.Width()*scale)
	offY := 0.5 * (float64(height) - viewport.Height()*scale)
	// The image's y axis points down.
	toPixel := func(pt Point) (float32, float32) {
		x := offX + (pt.X-viewport.X0)*scale
		y := offY + (viewport.Y1-pt.Y)*scale
		return float32(x), float32(y)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	halfWidth := float32(max(1.0, 0.002*float64(min(width, height))))
	for _, c := range curves {
		strokeCurve(img, c, toPixel, halfWidth, steps)
	}
	return png.Encode(w, img)
}

// strokeCurve draws the polyline approximation of one turn of c, one filled
// quad per segment.
func strokeCurve(dst *image.RGBA, c SpaceCurve, toPixel func(Point) (float32, float32), halfWidth float32, steps int) {
	ras := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	var px, py float32
	first := true
	for pt := range Points(c, 0, 2*math.Pi, steps) {
		x, y := toPixel(pt)
		if first {
			first = false
		} else {
			strokeSegment(ras, px, py, x, y, halfWidth)
		}
		px, py = x, y
	}
	ras.Draw(dst, dst.Bounds(), image.NewUniform(pngColor(c)), image.Point{})
}

// strokeSegment adds the quad covering the segment from (x0, y0) to (x1, y1)
// with the given half-width to the rasterizer.
func strokeSegment(ras *vector.Rasterizer, x0, y0, x1, y1, halfWidth float32) {
	dx := x1 - x0
	dy := y1 - y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Unit normal of the segment, scaled to half the stroke width.
	nx := -dy / length * halfWidth
	ny := dx / length * halfWidth
	ras.MoveTo(x0+nx, y0+ny)
	ras.LineTo(x1+nx, y1+ny)
	ras.LineTo(x1-nx, y1-ny)
	ras.LineTo(x0-nx, y0-ny)
	ras.ClosePath()
}

// pngColor returns the fill color for a curve variant, matching the SVG
// palette.
func pngColor(c SpaceCurve) color.RGBA {
	switch c.(type) {
	case Circle:
		return color.RGBA{R: 0xFF, A: 0xFF}
	case Ellipse:
		return color.RGBA{G: 0x80, A: 0xFF}
	case Helix:
		return color.RGBA{B: 0xFF, A: 0xFF}
	default:
		return color.RGBA{A: 0xFF}
	}
}
