package curve3

import (
	"math/rand"
)

// RandomOptions specifies optional settings for [RandomCurve] and
// [RandomCurves].
type RandomOptions struct {
	// MinParam and MaxParam bound the shape parameters of generated curves.
	// Both must be positive, finite numbers with MinParam <= MaxParam;
	// otherwise the defaults are used.
	MinParam float64
	MaxParam float64
}

// DefaultRandomOptions returns the default parameter range [0.1, 10.0].
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		MinParam: 0.1,
		MaxParam: 10.0,
	}
}

func (opts RandomOptions) normalize() RandomOptions {
	if !validParam(opts.MinParam) || !validParam(opts.MaxParam) || opts.MaxParam < opts.MinParam {
		return DefaultRandomOptions()
	}
	return opts
}

// RandomCurve returns a curve with a uniformly chosen variant and shape
// parameters drawn uniformly from [opts.MinParam, opts.MaxParam]. The
// returned curve is always valid.
func RandomCurve(rng *rand.Rand, opts RandomOptions) SpaceCurve {
	opts = opts.normalize()
	param := func() float64 {
		return opts.MinParam + rng.Float64()*(opts.MaxParam-opts.MinParam)
	}
	switch rng.Intn(3) {
	case 0:
		c, err := NewCircle(param())
		if err != nil {
			panic("unreachable")
		}
		return c
	case 1:
		e, err := NewEllipse(param(), param())
		if err != nil {
			panic("unreachable")
		}
		return e
	case 2:
		h, err := NewHelix(param(), param())
		if err != nil {
			panic("unreachable")
		}
		return h
	default:
		panic("unreachable")
	}
}

// RandomCurves returns n curves drawn with [RandomCurve]. A non-positive n
// yields an empty collection.
func RandomCurves(rng *rand.Rand, n int, opts RandomOptions) []SpaceCurve {
	opts = opts.normalize()
	if n < 0 {
		n = 0
	}
	curves := make([]SpaceCurve, n)
	for i := range curves {
		curves[i] = RandomCurve(rng, opts)
	}
	Logger().Debug("generated random curves",
		"count", len(curves),
		"min_param", opts.MinParam,
		"max_param", opts.MaxParam,
	)
	return curves
}
