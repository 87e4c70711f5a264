// pkg/render/color.go
package render

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var ErrBadColor = errors.New("render: color must be 6 hex digits")

// ParseHex parses "ff0000" or "#ff0000" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 3 {
		return color.RGBA{}, fmt.Errorf("parse %q: %w", s, ErrBadColor)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}, nil
}

// WithAlpha returns c as a non-premultiplied color with the given alpha.
// The input is never modified, so a tank color can be drawn at several
// alphas in one frame.
func WithAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// ScaleAlpha multiplies an alpha by k, clamped to [0, 255].
func ScaleAlpha(alpha uint8, k float64) uint8 {
	v := float64(alpha) * k
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
