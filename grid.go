package identicon

// Cell is one unit of the 5x5 logical grid. Value decides visibility (even
// values survive filtering); Index is the cell's row-major position in the
// grid and is never renumbered, so later stages can recover canvas
// coordinates from it even after cells have been dropped.
type Cell struct {
	Value uint8
	Index int
}

// Grid is an ordered run of cells. BuildGrid always produces GridCells of
// them; FilterOdd may return fewer.
type Grid []Cell

// BuildGrid expands the first 15 digest bytes into the full 25-cell grid.
// The bytes are taken in five consecutive groups of three, each group is
// mirrored into a palindromic 5-element row, and the rows are concatenated
// in order with sequential indices attached. The 16th digest byte is
// intentionally left unused; consuming it would change every icon already
// generated from the same inputs.
func BuildGrid(h HashBytes) Grid {
	g := make(Grid, 0, GridCells)
	for row := 0; row < GridSide; row++ {
		m := mirrorRow(h[row*groupSize], h[row*groupSize+1], h[row*groupSize+2])
		for _, v := range m {
			g = append(g, Cell{Value: v, Index: len(g)})
		}
	}
	return g
}

// mirrorRow reflects a three-byte group around its last element:
// [a b c] becomes [a b c b a].
func mirrorRow(a, b, c uint8) [GridSide]uint8 {
	return [GridSide]uint8{a, b, c, b, a}
}

// FilterOdd drops every odd-valued cell from the grid. Relative order and
// the original indices of the survivors are preserved. An all-odd grid
// filters down to an empty one, which the later stages accept.
func FilterOdd(g Grid) Grid {
	kept := make(Grid, 0, len(g))
	for _, c := range g {
		if c.Value%2 == 0 {
			kept = append(kept, c)
		}
	}
	return kept
}
