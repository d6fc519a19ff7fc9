package vg

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with every component in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// RGB creates a color from components in [0, rng]. The result is clamped
// to [0, 1]. A non-positive rng is treated as 1.
func RGB(r, g, b, a, rng float64) Color {
	if rng <= 0 {
		rng = 1
	}
	return Color{
		R: clamp01(r / rng),
		G: clamp01(g / rng),
		B: clamp01(b / rng),
		A: clamp01(a / rng),
	}
}

// HSB creates a color from hue, saturation and brightness components in
// [0, rng].
func HSB(h, s, b, a, rng float64) Color {
	if rng <= 0 {
		rng = 1
	}
	h = clamp01(h / rng)
	c := colorful.Hsv(h*360, clamp01(s/rng), clamp01(b/rng)).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(a / rng)}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
	case 8:
		c, err := colorful.Hex("#" + hex[:6])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return Color{R: c.R, G: c.G, B: c.B, A: float64(a) / 255}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Hex returns the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		to255(c.R), to255(c.G), to255(c.B), to255(c.A))
}

// HSB returns hue, saturation and brightness, each in [0, 1].
func (c Color) HSB() (h, s, b float64) {
	h, s, b = colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	return h / 360, s, b
}

// Color converts c to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: to255(c.R), G: to255(c.G), B: to255(c.B), A: to255(c.A)}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func (c Color) ptr() *Color { return &c }

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func to255(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
