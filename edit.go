package vg

import (
	"strconv"
	"strings"
	"unicode"
)

// Edit returns a copy of s with individual points moved. deltas holds
// entries of the form "index:dx,dy" separated by ';' or white space, where
// index counts points over the whole shape in drawing order. Entries that do
// not parse are skipped; repeated indices add up.
func Edit[S Shape](s S, deltas string) S {
	moves := parseDeltas(deltas)
	i := -1
	return mapPoints(s, func(p Point) Point {
		i++
		if d, ok := moves[i]; ok {
			return p.Add(d)
		}
		return p
	})
}

func parseDeltas(s string) map[int]Point {
	moves := make(map[int]Point)
	for _, entry := range strings.FieldsFunc(s, isEntrySep) {
		idx, rest, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 {
			continue
		}
		d, ok := parseXY(rest)
		if !ok {
			continue
		}
		moves[i] = moves[i].Add(d)
	}
	return moves
}

func isEntrySep(r rune) bool {
	return r == ';' || unicode.IsSpace(r)
}

// parseXY parses "x,y".
func parseXY(s string) (Point, bool) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, false
	}
	return Pt(x, y), true
}

// Freehand builds a stroked path from a pen trace such as
// "M 10,10 12,14 15,20 M 40,40 41,42". Every M starts a new open contour
// and every "x,y" adds a point. Tokens that do not parse are skipped.
func Freehand(data string) *Path {
	p := NewPath()
	p.Stroke = Black.ptr()
	p.StrokeWidth = 1

	var cur *Contour
	for _, tok := range strings.Fields(data) {
		if rest, ok := strings.CutPrefix(tok, "M"); ok {
			cur = &Contour{}
			p.AddContour(cur)
			tok = rest
			if tok == "" {
				continue
			}
		}
		pt, ok := parseXY(tok)
		if !ok {
			continue
		}
		if cur == nil {
			cur = &Contour{}
			p.AddContour(cur)
		}
		cur.Points = append(cur.Points, pt)
	}
	return p
}
