// Package curve3 provides parametric curves in 3D space and routines for
// evaluating, aggregating, and plotting them.
//
// # Points and vectors
//
// [Point] represents a position in 3D Cartesian space and [Vec3] represents a
// displacement or derivative. Both are small immutable values; methods return
// new values instead of mutating their receivers. Keeping positions and
// vectors as separate types makes signatures self-describing: evaluating a
// curve yields a Point, differentiating it yields a Vec3.
//
// # Curves
//
// [SpaceCurve] describes curves parametrized by a scalar, usually interpreted
// as an angle in radians. A curve can be evaluated at any parameter value
// ([SpaceCurve.Eval]), differentiated ([SpaceCurve.Deriv]), and asked for the
// bounding box of its projection onto the xy plane.
//
// This package includes the following curves:
//   - [Circle]
//   - [Ellipse]
//   - [Helix]
//
// All of them are closed-form and are constructed with validating
// constructors ([NewCircle], [NewEllipse], [NewHelix]). Shape parameters must
// be positive, finite numbers; constructors return errors wrapping
// [ErrInvalidParameter] otherwise. The zero value of a curve type is not
// usable.
//
// [RandomCurve] and [RandomCurves] generate curves with uniformly distributed
// variants and parameters, for demos and stress tests.
//
// # Aggregation and reports
//
// [Circles], [SortByRadius], and [TotalRadius] implement a small aggregation
// pipeline over curve collections: select the circles while preserving their
// order, sort them by radius, and sum the radii. [BuildReport] combines the
// pipeline with per-curve evaluation at a fixed parameter and produces a
// [Report] that can render itself as plain text or JSON.
//
// # Plots
//
// [WriteSVG] and [EncodePNG] render the xy projection of a curve collection
// as an SVG document or a raster image, approximating each curve with a
// polyline. [Points] exposes the underlying sampling as an iterator.
//
// # Logging
//
// The package produces no log output by default. Call [SetLogger] with a
// [log/slog.Logger] to receive debug-level diagnostics from curve generation
// and report building.
package curve3
