package render

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{"e63946", color.RGBA{0xe6, 0x39, 0x46, 255}, false},
		{"#1d7fd1", color.RGBA{0x1d, 0x7f, 0xd1, 255}, false},
		{"fff", color.RGBA{}, true},
		{"zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.err {
			if !errors.Is(err, ErrBadColor) {
				t.Errorf("ParseHex(%q) err = %v, want ErrBadColor", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseHex(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestWithAlphaLeavesInputAlone(t *testing.T) {
	c := color.RGBA{10, 20, 30, 255}
	got := WithAlpha(c, 60)
	if got != (color.NRGBA{10, 20, 30, 60}) {
		t.Errorf("WithAlpha = %v", got)
	}
	if c.A != 255 {
		t.Errorf("input alpha changed to %d", c.A)
	}
}

func TestScaleAlpha(t *testing.T) {
	tests := []struct {
		alpha uint8
		k     float64
		want  uint8
	}{
		{60, 0.5, 30},
		{200, 2, 255},
		{80, -1, 0},
		{80, 1, 80},
	}
	for _, tt := range tests {
		if got := ScaleAlpha(tt.alpha, tt.k); got != tt.want {
			t.Errorf("ScaleAlpha(%d, %v) = %d, want %d", tt.alpha, tt.k, got, tt.want)
		}
	}
}

func TestDarkenColor(t *testing.T) {
	if got := DarkenColor(color.RGBA{200, 100, 50, 255}); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
}
