package text

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/vg"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// appendGlyph appends the closed contours of glyph gid, set at size with its
// origin on origin, to p. Glyphs without an outline, such as spaces, add
// nothing.
func (l *Layout) appendGlyph(p *vg.Path, f *parsedFont, gid sfnt.GlyphIndex, size float64, origin vg.Point) error {
	segments, err := l.loadGlyph(f, gid, size)
	if err != nil {
		return err
	}

	pt := func(q fixed.Point26_6) (float64, float64) {
		return origin.X + fixedToFloat(q.X), origin.Y + fixedToFloat(q.Y)
	}
	started := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				p.Close()
			}
			p.MoveTo(pt(seg.Args[0]))
			started = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			p.QuadraticTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if started {
		p.Close()
	}
	return nil
}

// loadGlyph returns the outline segments of gid at size, from the cache when
// possible. sfnt outlines are already y-down, scaled to ppem.
func (l *Layout) loadGlyph(f *parsedFont, gid sfnt.GlyphIndex, size float64) ([]sfnt.Segment, error) {
	key := glyphKey{font: f, id: gid, size: size}
	if segments, ok := l.glyphs.Get(key); ok {
		return segments, nil
	}

	buf := l.bufPool.Get().(*sfnt.Buffer)
	defer l.bufPool.Put(buf)
	segments, err := f.outline.LoadGlyph(buf, gid, floatToFixed(size), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, nil
		}
		return nil, fmt.Errorf("text: glyph %d: %w", gid, err)
	}

	// The segments live in buf, which goes back to the pool.
	segments = slices.Clone(segments)
	l.glyphs.Set(key, segments)
	return segments, nil
}
