package text

import (
	"maps"
	"slices"
	"sync"

	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/vg"
	"github.com/gogpu/vg/internal/cache"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/norm"
)

// Layout shapes text and returns its glyph outlines. It implements
// [vg.TextLayout].
//
// Parsed fonts are cached on first use. HarfbuzzShaper and sfnt.Buffer
// values are not safe for concurrent use, so they are pooled and each call
// takes its own.
type Layout struct {
	defaultFont string
	lineHeight  float64

	shaperPool sync.Pool
	bufPool    sync.Pool

	// mu protects fonts and the parsed field of every entry.
	mu    sync.RWMutex
	fonts map[string]*fontEntry

	glyphs *cache.Cache[glyphKey, []sfnt.Segment]
	widths *cache.Cache[widthKey, float64]
}

type glyphKey struct {
	font *parsedFont
	id   sfnt.GlyphIndex
	size float64
}

type widthKey struct {
	font *parsedFont
	size float64
	word string
}

var _ vg.TextLayout = (*Layout)(nil)

// NewLayout creates a layout with the Go fonts registered as "Go",
// "Go Bold", "Go Italic" and "Go Mono".
func NewLayout(opts ...Option) *Layout {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Layout{
		defaultFont: cfg.defaultFont,
		lineHeight:  cfg.lineHeight,
		fonts:       make(map[string]*fontEntry, len(cfg.fonts)),
		glyphs:      cache.New[glyphKey, []sfnt.Segment](cfg.cacheLimit),
		widths:      cache.New[widthKey, float64](cfg.cacheLimit),
	}
	l.shaperPool.New = func() any { return &shaping.HarfbuzzShaper{} }
	l.bufPool.New = func() any { return &sfnt.Buffer{} }
	for name, data := range cfg.fonts {
		l.fonts[name] = &fontEntry{data: data}
	}
	return l
}

// RegisterFont parses data and registers it under name, replacing any font
// of the same name.
func (l *Layout) RegisterFont(name string, data []byte) error {
	parsed, err := parseFont(name, data)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fonts[name] = &fontEntry{data: data, parsed: parsed}
	return nil
}

// Fonts returns the registered font names in sorted order.
func (l *Layout) Fonts() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Sorted(maps.Keys(l.fonts))
}

// Outline implements [vg.TextLayout]. The text is NFC-normalized before
// shaping. Lines are aligned against box.Width; with no width, CENTER
// centers each line on box.X and RIGHT ends it there. JUSTIFY stretches the
// spaces of every wrapped line except the last line of each paragraph.
func (l *Layout) Outline(s, fontName string, size float64, align vg.TextAlign, box vg.Rect) (*vg.Path, error) {
	f, err := l.font(fontName)
	if err != nil {
		return nil, err
	}

	p := vg.NewPath()
	fill := vg.Black
	p.Fill = &fill
	if size <= 0 || s == "" {
		return p, nil
	}

	leading := l.lineHeight * size
	for i, ln := range l.wrap(norm.NFC.String(s), f, size, box.Width) {
		baseline := box.Y + float64(i)*leading
		if box.Height > 0 && baseline > box.Y+box.Height {
			break
		}
		glyphs := l.shape(ln.runes, f, size)
		lineW := width(glyphs)

		var extra float64
		if align == vg.AlignJustify && box.Width > 0 && !ln.last {
			if n := countSpaces(glyphs, ln.runes); n > 0 && lineW < box.Width {
				extra = (box.Width - lineW) / float64(n)
			}
		}

		x := box.X + lineOffset(align, box.Width, lineW)
		for _, g := range glyphs {
			if err := l.appendGlyph(p, f, g.id, size, vg.Pt(x+g.x, baseline+g.y)); err != nil {
				return nil, err
			}
			if extra > 0 && isSpaceCluster(g, ln.runes) {
				x += extra
			}
		}
	}
	return p, nil
}

// Advances implements [vg.TextLayout]. The advance of a glyph that covers
// several runes, such as a ligature, is credited to its first rune.
func (l *Layout) Advances(s, fontName string, size float64) ([]float64, error) {
	f, err := l.font(fontName)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	adv := make([]float64, len(runes))
	for _, g := range l.shape(runes, f, size) {
		if g.cluster >= 0 && g.cluster < len(adv) {
			adv[g.cluster] += g.advance
		}
	}
	return adv, nil
}

// lineOffset returns the horizontal offset of a line of width lineW in a box
// of width boxW.
func lineOffset(align vg.TextAlign, boxW, lineW float64) float64 {
	switch align {
	case vg.AlignCenter:
		return (boxW - lineW) / 2
	case vg.AlignRight:
		return boxW - lineW
	default:
		return 0
	}
}
