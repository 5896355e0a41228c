package raster

import "golang.org/x/image/draw"

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Draw into an existing surface with nearest-neighbor image scaling
//	dc := raster.NewContext(0, 0,
//		raster.WithSurface(s),
//		raster.WithInterpolator(draw.NearestNeighbor))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	surface      *Surface
	interpolator draw.Interpolator
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		surface:      nil, // Will be created if nil
		interpolator: draw.BiLinear,
	}
}

// WithSurface makes the Context draw into s instead of allocating a new
// surface. The width and height passed to NewContext are then ignored.
func WithSurface(s *Surface) ContextOption {
	return func(o *contextOptions) {
		o.surface = s
	}
}

// WithInterpolator sets the resampler DrawImage and DrawSurface use for
// scaled or rotated bitmaps. The default is draw.BiLinear.
func WithInterpolator(i draw.Interpolator) ContextOption {
	return func(o *contextOptions) {
		if i != nil {
			o.interpolator = i
		}
	}
}
