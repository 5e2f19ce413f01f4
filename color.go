package identicon

import (
	"fmt"
	"image/color"
)

// Color is the opaque 8-bit RGB triple that paints every surviving cell of
// an identicon. One Color covers the whole image; cells differ only in
// whether they are painted at all.
type Color struct {
	R, G, B uint8
}

// PickColor derives the icon color from the first three bytes of a digest,
// in (red, green, blue) order. The pipeline always supplies the full
// 16-byte digest; callers invoking the stage directly get ErrInvalidInput
// when fewer than three bytes are available.
func PickColor(b []byte) (Color, error) {
	if len(b) < 3 {
		return Color{}, fmt.Errorf("pick color: need 3 bytes, have %d: %w", len(b), ErrInvalidInput)
	}
	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a hex color string into an opaque color.NRGBA.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
func ParseHex(hex string) (color.NRGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	switch len(s) {
	case 3: // RGB
		if !parseHex(s[0:1], &r) || !parseHex(s[1:2], &g) || !parseHex(s[2:3], &b) {
			return color.NRGBA{}, fmt.Errorf("parse hex color %q: %w", hex, ErrInvalidInput)
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) || !parseHex(s[4:6], &b) {
			return color.NRGBA{}, fmt.Errorf("parse hex color %q: %w", hex, ErrInvalidInput)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("parse hex color %q: %w", hex, ErrInvalidInput)
	}

	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
