package vg

import "math"

// ResampleMethod selects how Resample spaces the new points.
type ResampleMethod int

const (
	// ResampleByLength places points at a fixed arc-length spacing.
	ResampleByLength ResampleMethod = iota

	// ResampleByAmount places a fixed number of evenly spaced points.
	ResampleByAmount
)

// maxLengthSamples caps the points ResampleByLength places on one contour.
const maxLengthSamples = 100_000

// String returns the keyword of the method.
func (m ResampleMethod) String() string {
	if m == ResampleByAmount {
		return "amount"
	}
	return "length"
}

// Resample returns a copy of s whose contours are replaced by straight
// polylines through evenly spaced points on the original outline.
//
// ResampleByLength walks each contour placing a point every length units
// from its start; open contours also keep their end point. ResampleByAmount
// places amount points over the whole path, or over every contour when
// perContour is set. Contours shorter than the spacing still keep their
// boundary points. Paths keep their style.
//
// ResampleByLength places at most 100000 points on a contour (plus the end
// point of an open one); a smaller length is widened to fit that count.
//
// Paths and geometries keep their variant; contours and point lists become
// paths. A single point is returned unchanged.
func Resample(s Shape, method ResampleMethod, length float64, amount int, perContour bool) Shape {
	if IsAbsent(s) {
		return nil
	}
	r := resampler{method: method, length: length, amount: max(amount, 1), perContour: perContour}
	switch v := s.(type) {
	case Point:
		return v
	case *Path:
		return r.path(v)
	case *Geometry:
		out := &Geometry{Paths: make([]*Path, 0, len(v.Paths))}
		for _, p := range v.Paths {
			out.Add(r.path(p))
		}
		return out
	}
	g := toGeometry(s)
	return r.path(g.Paths[0])
}

type resampler struct {
	method     ResampleMethod
	length     float64
	amount     int
	perContour bool
}

func (r resampler) path(p *Path) *Path {
	if p == nil {
		return nil
	}
	out := p.cloneStyle()
	if r.method == ResampleByAmount && !r.perContour {
		if p.IsEmpty() {
			return out
		}
		closed := len(p.Contours) == 1 && p.Contours[0].Closed
		out.AddContour(sampleAmount(newWalker(p.Contours), r.amount, closed))
		return out
	}
	for _, c := range p.Contours {
		if c.IsEmpty() {
			continue
		}
		w := newWalker([]*Contour{c})
		if r.method == ResampleByAmount {
			out.AddContour(sampleAmount(w, r.amount, c.Closed))
		} else {
			out.AddContour(sampleLength(w, r.length, c.Closed))
		}
	}
	return out
}

// sampleAmount places amount points. A closed result does not repeat its
// start; an open one ends on the last point of the outline.
func sampleAmount(w *walker, amount int, closed bool) *Contour {
	c := &Contour{Points: make([]Point, 0, amount), Closed: closed}
	div := float64(amount)
	if !closed {
		div = float64(amount - 1)
	}
	for i := range amount {
		t := 0.0
		if div > 0 {
			t = float64(i) / div
		}
		c.Points = append(c.Points, w.at(t))
	}
	return c
}

// sampleLength places a point every spacing units.
func sampleLength(w *walker, spacing float64, closed bool) *Contour {
	c := &Contour{Closed: closed}
	if w.total == 0 {
		c.Points = []Point{w.at(0)}
		return c
	}
	if spacing <= 0 || math.IsNaN(spacing) {
		spacing = w.total
	}
	spacing = max(spacing, w.total/maxLengthSamples)
	const eps = 1e-9
	for i := 0; float64(i)*spacing < w.total-eps; i++ {
		c.Points = append(c.Points, w.at(float64(i)*spacing/w.total))
	}
	if !closed {
		c.Points = append(c.Points, w.at(1))
	}
	return c
}
