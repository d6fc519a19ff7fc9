package vg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the vg package.
var (
	// ErrInvalidOrder is returned by ParseOrder for an unknown operation letter.
	ErrInvalidOrder = errors.New("vg: invalid transform order")

	// ErrInvalidAlign is returned by ParseTextAlign for an unknown keyword.
	ErrInvalidAlign = errors.New("vg: invalid text alignment")

	// ErrInvalidColor is returned by ParseHex for a malformed color string.
	ErrInvalidColor = errors.New("vg: invalid color")
)

// ShapeTypeError is returned when a value of the wrong shape type is passed
// where only paths and geometries are accepted.
type ShapeTypeError struct {
	Op    string
	Value any
}

func (e *ShapeTypeError) Error() string {
	return fmt.Sprintf("vg: %s: cannot use value of type %T, need *Path or *Geometry", e.Op, e.Value)
}
