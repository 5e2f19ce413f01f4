// Package identicon deterministically renders small square avatar images
// from arbitrary strings.
//
// # Overview
//
// identicon derives a 5x5 symmetric block pattern and a color from the MD5
// digest of an input string. The same string always produces the same
// image, and different strings produce visually distinct images with high
// probability. The digest is used purely as a pattern seed; nothing here
// provides any cryptographic property.
//
// # Quick Start
//
//	import "github.com/gopix/identicon"
//
//	// Render the canonical 250x250 icon
//	pm := identicon.Generate("alice@example.com")
//
//	// Save to PNG
//	if err := pm.SavePNG("alice.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Generate composes six pure stages, each producing a new value from the
// previous one:
//
//   - Hash: input string to 16-byte MD5 digest
//   - PickColor: leading three digest bytes to an RGB triple
//   - BuildGrid: first 15 digest bytes to 25 mirrored, indexed cells
//   - FilterOdd: drop odd-valued cells, keep original indices
//   - PixelMap: surviving cells to 50x50 canvas rectangles
//   - Draw: rectangles to a 250x250 pixel buffer
//
// Every stage is exported so callers can run a partial pipeline, for
// example to obtain just the color or the grid for a string.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Rectangles are half-open on both axes, matching image.Rectangle.
//
// # Serving
//
// The web sub-package exposes the generator as an HTTP handler with an
// in-memory cache; cmd/identicon is the command-line front end.
package identicon

// Version is the current version of the library
const Version = "0.1.0"
