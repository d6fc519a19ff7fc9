package text

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont is the name of the font used when a request names none.
const DefaultFont = "Go"

// Option configures Layout creation.
type Option func(*config)

// config holds configuration for Layout.
type config struct {
	fonts       map[string][]byte
	defaultFont string
	lineHeight  float64
	cacheLimit  int
}

// defaultConfig returns the default layout configuration.
func defaultConfig() config {
	return config{
		fonts: map[string][]byte{
			"Go":        goregular.TTF,
			"Go Bold":   gobold.TTF,
			"Go Italic": goitalic.TTF,
			"Go Mono":   gomono.TTF,
		},
		defaultFont: DefaultFont,
		lineHeight:  1.2,
		cacheLimit:  512,
	}
}

// WithFont registers TrueType or OpenType font data under name.
// The data is parsed on first use.
func WithFont(name string, ttf []byte) Option {
	return func(c *config) {
		c.fonts[name] = ttf
	}
}

// WithDefaultFont sets the font used when a request gives an empty font
// name.
func WithDefaultFont(name string) Option {
	return func(c *config) {
		c.defaultFont = name
	}
}

// WithLineHeight sets the distance between baselines as a multiple of the
// font size. Non-positive values are ignored.
func WithLineHeight(factor float64) Option {
	return func(c *config) {
		if factor > 0 {
			c.lineHeight = factor
		}
	}
}

// WithCacheLimit sets the maximum number of cached glyph outlines and word
// widths. A value of 0 disables the limit.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		c.cacheLimit = n
	}
}
