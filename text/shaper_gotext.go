package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// parsedFont holds the two views of one font file: the go-text font used for
// shaping and the sfnt font used for outlines. Both are read-only and safe
// for concurrent use.
type parsedFont struct {
	shaping *font.Font
	outline *sfnt.Font
}

// fontEntry is a registered font. parsed is nil until first use.
type fontEntry struct {
	data   []byte
	parsed *parsedFont
}

func parseFont(name string, data []byte) (*parsedFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Font: name, Reason: "shaping tables", Err: err}
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, &FontError{Font: name, Reason: "outline tables", Err: err}
	}
	return &parsedFont{shaping: face.Font, outline: outline}, nil
}

// font returns the parsed font registered under name, parsing it on first
// use. An empty name selects the default font.
func (l *Layout) font(name string) (*parsedFont, error) {
	if name == "" {
		name = l.defaultFont
	}

	// Fast path: already parsed.
	l.mu.RLock()
	entry, ok := l.fonts[name]
	if ok && entry.parsed != nil {
		l.mu.RUnlock()
		return entry.parsed, nil
	}
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock.
	entry, ok = l.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	if entry.parsed != nil {
		return entry.parsed, nil
	}
	parsed, err := parseFont(name, entry.data)
	if err != nil {
		return nil, err
	}
	entry.parsed = parsed
	return parsed, nil
}

// glyph is one shaped glyph. x is the pen position before the glyph is
// drawn, relative to the start of the run.
type glyph struct {
	id      sfnt.GlyphIndex
	cluster int
	x, y    float64
	advance float64
}

// shape converts runes into positioned glyphs at size.
func (l *Layout) shape(runes []rune, f *parsedFont, size float64) []glyph {
	if len(runes) == 0 {
		return nil
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.shaping),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := l.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer l.shaperPool.Put(hb)
	output := hb.Shape(input)

	glyphs := make([]glyph, len(output.Glyphs))
	var pen float64
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = glyph{
			id:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // TrueType glyph ids are 16-bit
			cluster: g.TextIndex(),
			x:       pen + fixedToFloat(g.XOffset),
			y:       -fixedToFloat(g.YOffset),
			advance: adv,
		}
		pen += adv
	}
	return glyphs
}

// width returns the total advance of a shaped run.
func width(glyphs []glyph) float64 {
	var w float64
	for _, g := range glyphs {
		w += g.advance
	}
	return w
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
