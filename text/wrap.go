package text

import (
	"strings"
	"unicode"
)

// line is one laid-out line of text.
type line struct {
	runes []rune
	// last marks the final line of a paragraph, which is never justified.
	last bool
}

// wrap splits text into lines. Paragraphs are separated by '\n'. With a
// positive maxWidth, words are moved to the next line when they would
// exceed it; a single word wider than maxWidth keeps a line of its own.
func (l *Layout) wrap(text string, f *parsedFont, size, maxWidth float64) []line {
	var lines []line
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimRight(para, "\r")
		if maxWidth <= 0 {
			lines = append(lines, line{runes: []rune(para), last: true})
			continue
		}
		lines = append(lines, l.wrapParagraph(para, f, size, maxWidth)...)
	}
	return lines
}

func (l *Layout) wrapParagraph(para string, f *parsedFont, size, maxWidth float64) []line {
	words := strings.FieldsFunc(para, unicode.IsSpace)
	if len(words) == 0 {
		return []line{{last: true}}
	}
	space := width(l.shape([]rune{' '}, f, size))

	var (
		lines   []line
		current []rune
		curW    float64
	)
	for _, w := range words {
		word := []rune(w)
		ww := l.widths.GetOrCreate(widthKey{font: f, size: size, word: w}, func() float64 {
			return width(l.shape(word, f, size))
		})
		if len(current) > 0 && curW+space+ww > maxWidth {
			lines = append(lines, line{runes: current})
			current, curW = nil, 0
		}
		if len(current) > 0 {
			current = append(current, ' ')
			curW += space
		}
		current = append(current, word...)
		curW += ww
	}
	lines = append(lines, line{runes: current, last: true})
	return lines
}

// countSpaces returns the number of glyphs that set a space rune.
func countSpaces(glyphs []glyph, runes []rune) int {
	n := 0
	for _, g := range glyphs {
		if isSpaceCluster(g, runes) {
			n++
		}
	}
	return n
}

func isSpaceCluster(g glyph, runes []rune) bool {
	return g.cluster >= 0 && g.cluster < len(runes) && runes[g.cluster] == ' '
}
