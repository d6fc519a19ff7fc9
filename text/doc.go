// Package text lays text out as vector glyph outlines for vg.
//
// Layout implements [vg.TextLayout]. It shapes text with the HarfBuzz port
// from go-text/typesetting, so kerning and ligatures are applied, and
// extracts glyph outlines with golang.org/x/image/font/sfnt. The Go fonts
// are registered by default:
//
//	layout := text.NewLayout()
//	p := vg.TextOutline(layout, "hello", "Go", 24, "LEFT", vg.Pt(0, 24), 0, 0)
//
// Additional TrueType or OpenType fonts are added with [WithFont] or
// [Layout.RegisterFont]. Coordinates follow vg: y grows downwards and the
// first baseline sits at the top-left corner of the layout box.
//
// A Layout is safe for concurrent use.
package text
