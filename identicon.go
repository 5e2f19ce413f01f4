package identicon

// Pipeline geometry. The three sizes are coupled: CellSize*GridSide must
// equal CanvasSize, and changing one without the others breaks the mapping
// from cell indices to canvas coordinates.
const (
	// HashSize is the digest length in bytes.
	HashSize = 16

	// GridSide is the number of cells per row and per column.
	GridSide = 5

	// GridCells is the total cell count of the logical grid.
	GridCells = GridSide * GridSide

	// CellSize is the edge length of one cell on the canonical canvas.
	CellSize = 50

	// CanvasSize is the edge length of the canonical canvas in pixels.
	CanvasSize = GridSide * CellSize

	// groupSize is the number of digest bytes per grid row before mirroring.
	groupSize = 3
)

// Generate runs the full pipeline for input and returns the rendered icon:
// hash the input, pick the color from the leading digest bytes, build and
// filter the mirrored grid, map the survivors to canvas rectangles, and
// rasterize. The result is fully determined by input and opts; two calls
// with the same arguments produce byte-identical pixmaps.
func Generate(input string, opts ...Option) *Pixmap {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h := Hash(input)
	c, _ := PickColor(h[:]) // digest is always HashSize bytes
	cells := FilterOdd(BuildGrid(h))
	rects, _ := PixelMap(cells) // BuildGrid indices are always in range

	Logger().Debug("identicon generated",
		"color", c.Hex(),
		"cells", len(cells),
		"size", o.size)

	pm := drawOn(c, rects, o.background)
	if o.size != CanvasSize {
		pm = scalePixmap(pm, o.size)
	}
	return pm
}
