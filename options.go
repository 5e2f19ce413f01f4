package identicon

import "image/color"

// Option configures Generate.
// Use functional options to customize the rendered icon.
//
// Example:
//
//	// Canonical 250x250 icon on a white background
//	pm := identicon.Generate("alice")
//
//	// 64x64 icon on a light gray background
//	pm := identicon.Generate("alice",
//	    identicon.WithSize(64),
//	    identicon.WithBackground(color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}))
type Option func(*options)

// options holds optional configuration for Generate.
type options struct {
	size       int
	background color.NRGBA
}

// defaultOptions returns the default generation options.
func defaultOptions() options {
	return options{
		size:       CanvasSize,
		background: defaultBackground,
	}
}

// WithSize sets the output edge length in pixels. The icon is always
// rasterized on the canonical CanvasSize canvas first and then resampled,
// so the pattern itself never changes with size. Sizes below 1 are ignored.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithBackground sets the color of unpainted pixels.
func WithBackground(c color.NRGBA) Option {
	return func(o *options) {
		o.background = c
	}
}
