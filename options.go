package dyncanvas

import "image/color"

// Option configures a Canvas during creation.
//
// Example:
//
//	c := dyncanvas.New(800, 600,
//		dyncanvas.WithZoom(dyncanvas.ZoomConfig{Level: 1, Max: 5}),
//		dyncanvas.WithBackground(color.White))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	zoom       *ZoomConfig
	background color.Color
	onError    func(Layer, error)
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		zoom:       nil, // zoom disabled
		background: nil, // transparent
		onError:    nil, // errors are logged only
	}
}

// WithZoom enables zooming. Zero fields of cfg take their defaults.
func WithZoom(cfg ZoomConfig) Option {
	return func(o *options) {
		o.zoom = &cfg
	}
}

// WithBackground paints every frame with c before the layers are drawn.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithErrorHandler registers fn to receive layer render failures. fn runs on
// the goroutine calling Tick.
func WithErrorHandler(fn func(Layer, error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}
