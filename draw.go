package identicon

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// defaultBackground is the color of unpainted pixels unless WithBackground
// overrides it. Opaque white keeps an all-odd (fully filtered) grid a valid
// opaque image rather than a transparent one.
var defaultBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Draw rasterizes the rectangles onto a fresh CanvasSize x CanvasSize
// pixmap, painting every rectangle with c over the default background.
// Rectangles are painted in sequence order; overlapping fills simply
// overwrite earlier ones. An empty rectangle list yields a blank canvas.
func Draw(c Color, rects []image.Rectangle) *Pixmap {
	return drawOn(c, rects, defaultBackground)
}

func drawOn(c Color, rects []image.Rectangle, bg color.NRGBA) *Pixmap {
	pm := NewPixmap(CanvasSize, CanvasSize)
	pm.Clear(bg)
	fill := c.NRGBA()
	for _, r := range rects {
		pm.FillRect(r, fill)
	}
	return pm
}

// scalePixmap resamples src into a size x size pixmap. Nearest-neighbor
// keeps the hard cell edges crisp at any scale.
func scalePixmap(src *Pixmap, size int) *Pixmap {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(img, img.Bounds(), src.ToImage(), src.Bounds(), xdraw.Src, nil)

	dst := NewPixmap(size, size)
	copy(dst.data, img.Pix)
	return dst
}
