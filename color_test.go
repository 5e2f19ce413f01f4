package identicon

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestPickColor(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  Color
	}{
		{
			name:  "known vector",
			bytes: knownHash[:],
			want:  Color{R: 173, G: 43, B: 65},
		},
		{
			name:  "exactly three bytes",
			bytes: []byte{1, 2, 3},
			want:  Color{R: 1, G: 2, B: 3},
		},
		{
			name:  "extra bytes ignored",
			bytes: []byte{255, 0, 128, 99, 99},
			want:  Color{R: 255, G: 0, B: 128},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PickColor(tt.bytes)
			if err != nil {
				t.Fatalf("PickColor() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PickColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickColor_TooShort(t *testing.T) {
	for _, b := range [][]byte{nil, {}, {1}, {1, 2}} {
		_, err := PickColor(b)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("PickColor(%v) error = %v, want ErrInvalidInput", b, err)
		}
	}
}

func TestColor_RGBA(t *testing.T) {
	c := Color{R: 173, G: 43, B: 65}
	r, g, b, a := c.RGBA()
	if r != 173*257 || g != 43*257 || b != 65*257 || a != 65535 {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
			r, g, b, a, 173*257, 43*257, 65*257, 65535)
	}
}

func TestColor_Hex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{R: 173, G: 43, B: 65}, "#ad2b41"},
		{Color{}, "#000000"},
		{Color{R: 255, G: 255, B: 255}, "#ffffff"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "rrggbb", in: "ad2b41", want: color.NRGBA{R: 0xad, G: 0x2b, B: 0x41, A: 0xff}},
		{name: "leading hash", in: "#ad2b41", want: color.NRGBA{R: 0xad, G: 0x2b, B: 0x41, A: 0xff}},
		{name: "short form", in: "#f0a", want: color.NRGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}},
		{name: "uppercase", in: "AD2B41", want: color.NRGBA{R: 0xad, G: 0x2b, B: 0x41, A: 0xff}},
		{name: "empty", in: "", wantErr: true},
		{name: "bad length", in: "ad2b4", wantErr: true},
		{name: "bad digit", in: "zz2b41", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidInput", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
