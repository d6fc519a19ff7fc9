package svg

import "github.com/srwiley/oksvg"

// Option configures Importer creation.
type Option func(*config)

// config holds configuration for Importer.
type config struct {
	errMode   oksvg.ErrorMode
	allowNone bool
}

// defaultConfig returns the default importer configuration.
func defaultConfig() config {
	return config{
		errMode: oksvg.WarnErrorMode,
	}
}

// WithStrict makes unsupported SVG elements an import error instead of a
// logged warning.
func WithStrict(strict bool) Option {
	return func(c *config) {
		if strict {
			c.errMode = oksvg.StrictErrorMode
		} else {
			c.errMode = oksvg.WarnErrorMode
		}
	}
}

// WithEmpty makes a document without paths import as an empty geometry
// instead of failing with ErrNoPaths.
func WithEmpty(allow bool) Option {
	return func(c *config) {
		c.allowNone = allow
	}
}
