package vg

import (
	"math"
	"sort"
)

// containsTolerance is the flattening tolerance used for containment and
// area queries.
const containsTolerance = 0.1

// Length returns the total arc length of all contours.
func (p *Path) Length() float64 {
	if p == nil {
		return 0
	}
	var l float64
	for _, c := range p.Contours {
		l += c.Length()
	}
	return l
}

// PointAt returns the point at arc-length parameter t along the whole path,
// walking contours in order. t is clamped to [0, 1].
func (p *Path) PointAt(t float64) Point {
	if p.IsEmpty() {
		return Point{}
	}
	return newWalker(p.Contours).at(t)
}

// Bounds returns the tight axis-aligned bounding box of the path.
func (p *Path) Bounds() Rect {
	var b bounder
	p.addBounds(&b)
	return b.rect()
}

func (p *Path) addBounds(b *bounder) {
	if p == nil {
		return
	}
	for _, c := range p.Contours {
		c.addBounds(b)
	}
}

// Winding returns the nonzero winding number of the path at pt.
func (p *Path) Winding(pt Point) int {
	if p == nil {
		return 0
	}
	var w int
	for _, c := range p.Contours {
		w += c.winding(pt, containsTolerance)
	}
	return w
}

// Contains reports whether pt is inside the path under the nonzero
// winding rule. Open contours are treated as closed.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// Area returns the absolute enclosed area of the path, with oppositely
// oriented contours counted as holes.
func (p *Path) Area() float64 {
	if p == nil {
		return 0
	}
	var a float64
	for _, c := range p.Contours {
		a += c.area(containsTolerance)
	}
	return math.Abs(a)
}

// walker maps an arc-length parameter onto a sequence of contours.
type walker struct {
	segs  []segment
	ends  []float64 // cumulative length at the end of each segment
	total float64
	first Point
}

func newWalker(contours []*Contour) *walker {
	w := &walker{}
	found := false
	for _, c := range contours {
		if c.IsEmpty() {
			continue
		}
		if !found {
			w.first = c.Points[0].WithKind(OnCurve)
			found = true
		}
		for _, s := range c.segments() {
			w.total += s.Length()
			w.segs = append(w.segs, s)
			w.ends = append(w.ends, w.total)
		}
	}
	return w
}

// at returns the point at parameter t in [0, 1].
func (w *walker) at(t float64) Point {
	if len(w.segs) == 0 || w.total == 0 {
		if len(w.segs) > 0 {
			return w.segs[0].Start()
		}
		return w.first
	}
	t = clamp(t, 0, 1)
	d := t * w.total
	i := sort.SearchFloat64s(w.ends, d)
	if i >= len(w.segs) {
		i = len(w.segs) - 1
	}
	startLen := 0.0
	if i > 0 {
		startLen = w.ends[i-1]
	}
	segLen := w.ends[i] - startLen
	if segLen <= 0 {
		return w.segs[i].Start()
	}
	return pointAlong(w.segs[i], (d-startLen)/segLen)
}

// pointAlong returns the point at arc-length fraction f of a segment.
// Curves are measured over their flattened polyline.
func pointAlong(s segment, f float64) Point {
	if l, ok := s.(LineSeg); ok {
		return l.Eval(f)
	}
	poly := []Point{s.Start()}
	s.flatten(0.01, func(p Point) { poly = append(poly, p) })
	var total float64
	for i := 1; i < len(poly); i++ {
		total += poly[i-1].Distance(poly[i])
	}
	target := f * total
	for i := 1; i < len(poly); i++ {
		d := poly[i-1].Distance(poly[i])
		if target <= d && d > 0 {
			return poly[i-1].Lerp(poly[i], target/d)
		}
		target -= d
	}
	return s.End()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
