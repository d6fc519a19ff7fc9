package vg

import "github.com/gogpu/vg/internal/flatten"

// CompoundOption configures Compound.
//
// Example:
//
//	// Flatten curves more finely before combining
//	out := vg.Compound(a, b, vg.Unite, false, vg.WithTolerance(0.01))
type CompoundOption func(*compoundOptions)

// compoundOptions holds optional configuration for Compound.
type compoundOptions struct {
	tolerance float64
}

// defaultCompoundOptions returns the default compound options.
func defaultCompoundOptions() compoundOptions {
	return compoundOptions{
		tolerance: flatten.DefaultTolerance,
	}
}

// WithTolerance sets the maximum distance between a curve and the polyline
// it is flattened to. Non-positive values keep the default.
func WithTolerance(tolerance float64) CompoundOption {
	return func(o *compoundOptions) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}
