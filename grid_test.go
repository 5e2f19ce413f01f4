package identicon

import "testing"

func TestMirrorRow(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c uint8
		want    [GridSide]uint8
	}{
		{name: "distinct values", a: 1, b: 2, c: 3, want: [GridSide]uint8{1, 2, 3, 2, 1}},
		{name: "all zero", want: [GridSide]uint8{0, 0, 0, 0, 0}},
		{name: "known vector first group", a: 173, b: 43, c: 65, want: [GridSide]uint8{173, 43, 65, 43, 173}},
		{name: "max values", a: 255, b: 255, c: 255, want: [GridSide]uint8{255, 255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mirrorRow(tt.a, tt.b, tt.c)
			if got != tt.want {
				t.Errorf("mirrorRow(%d, %d, %d) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
			// Palindromic around the center element.
			for i := 0; i < GridSide; i++ {
				if got[i] != got[GridSide-1-i] {
					t.Errorf("mirrorRow result %v is not palindromic at %d", got, i)
				}
			}
		})
	}
}

func TestBuildGrid_SizeAndIndices(t *testing.T) {
	for _, input := range []string{"", "identicon", "a", "another input"} {
		g := BuildGrid(Hash(input))
		if len(g) != GridCells {
			t.Fatalf("BuildGrid(Hash(%q)) has %d cells, want %d", input, len(g), GridCells)
		}
		for i, c := range g {
			if c.Index != i {
				t.Errorf("input %q: cell %d has index %d, want %d", input, i, c.Index, i)
			}
		}
	}
}

func TestBuildGrid_KnownVector(t *testing.T) {
	want := []uint8{
		173, 43, 65, 43, 173,
		97, 60, 135, 60, 97,
		2, 181, 55, 181, 2,
		43, 189, 201, 189, 43,
		168, 16, 112, 16, 168,
	}

	g := BuildGrid(knownHash)
	if len(g) != len(want) {
		t.Fatalf("BuildGrid() has %d cells, want %d", len(g), len(want))
	}
	for i, c := range g {
		if c.Value != want[i] || c.Index != i {
			t.Errorf("cell %d = (%d, %d), want (%d, %d)", i, c.Value, c.Index, want[i], i)
		}
	}
}

func TestBuildGrid_DiscardsLastByte(t *testing.T) {
	h := knownHash
	h[HashSize-1] ^= 0xff // only the discarded byte differs

	a := BuildGrid(knownHash)
	b := BuildGrid(h)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("grid depends on the 16th digest byte: cell %d is %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFilterOdd(t *testing.T) {
	g := Grid{
		{Value: 0, Index: 0},
		{Value: 1, Index: 1},
		{Value: 2, Index: 2},
		{Value: 255, Index: 3},
		{Value: 254, Index: 4},
	}

	got := FilterOdd(g)
	want := Grid{
		{Value: 0, Index: 0},
		{Value: 2, Index: 2},
		{Value: 254, Index: 4},
	}

	if len(got) != len(want) {
		t.Fatalf("FilterOdd() kept %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterOdd()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFilterOdd_Properties(t *testing.T) {
	for _, input := range []string{"", "identicon", "filter me"} {
		full := BuildGrid(Hash(input))
		kept := FilterOdd(full)

		for _, c := range kept {
			if c.Value%2 != 0 {
				t.Errorf("input %q: odd cell %v survived the filter", input, c)
			}
		}

		// No even-valued cell may be dropped, and order must be preserved.
		j := 0
		for _, c := range full {
			if c.Value%2 != 0 {
				continue
			}
			if j >= len(kept) || kept[j] != c {
				t.Fatalf("input %q: even cell %v missing or out of order", input, c)
			}
			j++
		}
		if j != len(kept) {
			t.Errorf("input %q: filter kept %d cells, want %d", input, len(kept), j)
		}
	}
}

func TestFilterOdd_AllOdd(t *testing.T) {
	g := Grid{{Value: 1, Index: 0}, {Value: 3, Index: 1}, {Value: 255, Index: 2}}
	if got := FilterOdd(g); len(got) != 0 {
		t.Errorf("FilterOdd(all-odd grid) kept %d cells, want 0", len(got))
	}
}
