package vg

import (
	"fmt"
	"strings"
)

// TextAlign is the horizontal alignment of lines in a text box.
type TextAlign int

const (
	// AlignLeft aligns lines to the left edge. This is the default.
	AlignLeft TextAlign = iota

	// AlignCenter centers lines in the box.
	AlignCenter

	// AlignRight aligns lines to the right edge.
	AlignRight

	// AlignJustify stretches the spaces of every line but the last to fill
	// the box width.
	AlignJustify
)

// String returns the keyword of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "LEFT"
	case AlignCenter:
		return "CENTER"
	case AlignRight:
		return "RIGHT"
	case AlignJustify:
		return "JUSTIFY"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// ParseTextAlign parses LEFT, CENTER, RIGHT or JUSTIFY, ignoring case.
func ParseTextAlign(s string) (TextAlign, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LEFT":
		return AlignLeft, nil
	case "CENTER":
		return AlignCenter, nil
	case "RIGHT":
		return AlignRight, nil
	case "JUSTIFY":
		return AlignJustify, nil
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrInvalidAlign, s)
}

// TextLayout lays text out as glyph outlines.
//
// Outline returns the closed glyph contours of text set in font at size.
// The first baseline starts at (box.X, box.Y). A positive box.Width wraps
// lines at that width and is the reference for align; a positive
// box.Height drops lines that would start below box.Y+box.Height.
//
// Advances returns the horizontal advance of every rune of text, with
// kerning and ligatures applied.
type TextLayout interface {
	Outline(text, font string, size float64, align TextAlign, box Rect) (*Path, error)
	Advances(text, font string, size float64) ([]float64, error)
}

// TextOutline returns the outline of text laid out by layout in a w x h box
// whose first baseline starts at pos. An unknown align keyword falls back
// to AlignLeft. A layout failure is logged and gives nil.
func TextOutline(layout TextLayout, text, font string, size float64, align string, pos Point, w, h float64) *Path {
	if layout == nil {
		return nil
	}
	a, err := ParseTextAlign(align)
	if err != nil {
		Logger().Debug("vg: text alignment ignored", "align", align, "err", err)
		a = AlignLeft
	}
	p, err := layout.Outline(text, font, size, a, Rect{X: pos.X, Y: pos.Y, Width: w, Height: h})
	if err != nil {
		Logger().Warn("vg: text outline failed", "font", font, "err", err)
		return nil
	}
	return p
}
