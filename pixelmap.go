package identicon

import (
	"fmt"
	"image"
)

// PixelMap converts surviving cells into their canvas rectangles. Each cell
// index names a position in the 5-column row-major grid; the cell covers
// the half-open square [col*50, col*50+50) x [row*50, row*50+50), which is
// exactly image.Rectangle's convention. Rectangles are emitted in cell
// order. A cell index outside the grid yields ErrInvalidInput; BuildGrid
// never produces one.
func PixelMap(g Grid) ([]image.Rectangle, error) {
	rects := make([]image.Rectangle, 0, len(g))
	for _, c := range g {
		if c.Index < 0 || c.Index >= GridCells {
			return nil, fmt.Errorf("pixel map: cell index %d outside the %dx%d grid: %w",
				c.Index, GridSide, GridSide, ErrInvalidInput)
		}
		x := (c.Index % GridSide) * CellSize
		y := (c.Index / GridSide) * CellSize
		rects = append(rects, image.Rect(x, y, x+CellSize, y+CellSize))
	}
	return rects, nil
}
