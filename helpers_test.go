package vg

import (
	"errors"
	"math"
)

const epsilon = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func approxPoint(p, q Point, tol float64) bool {
	return approx(p.X, q.X, tol) && approx(p.Y, q.Y, tol)
}

// stubLayout sets every rune as a size/2 x size box sitting on the baseline.
type stubLayout struct {
	lastAlign TextAlign
	err       error
}

func (l *stubLayout) Outline(text, _ string, size float64, align TextAlign, box Rect) (*Path, error) {
	l.lastAlign = align
	if l.err != nil {
		return nil, l.err
	}
	p := NewPath()
	x := box.X
	for range []rune(text) {
		p.AddContour(Rectangle(Pt(x+size/4, box.Y-size/2), size/2, size, Point{}).Contours[0])
		x += size / 2
	}
	return p, nil
}

func (l *stubLayout) Advances(text, _ string, size float64) ([]float64, error) {
	if l.err != nil {
		return nil, l.err
	}
	adv := make([]float64, 0, len(text))
	for range []rune(text) {
		adv = append(adv, size/2)
	}
	return adv, nil
}

type failingImporter struct{}

func (failingImporter) Import(string) (*Geometry, error) {
	return nil, errors.New("boom")
}

type staticImporter struct {
	g *Geometry
}

func (s staticImporter) Import(string) (*Geometry, error) {
	return s.g.Clone(), nil
}

// square returns a closed size x size square with its top-left corner at
// (x, y).
func square(x, y, size float64) *Path {
	return Rectangle(Pt(x+size/2, y+size/2), size, size, Point{})
}
