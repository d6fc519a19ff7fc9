package vg

// Contour is an ordered sequence of points forming one boundary curve.
//
// Consecutive on-curve points are joined by straight lines. One off-curve
// point between two on-curve points makes a quadratic Bezier, two make a
// cubic. A closed contour connects its last point back to its first.
type Contour struct {
	Points []Point
	Closed bool
}

// NewContour creates a contour from the given points.
func NewContour(closed bool, points ...Point) *Contour {
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Contour{Points: pts, Closed: closed}
}

func (*Contour) isShape() {}

// Clone returns a deep copy of the contour.
func (c *Contour) Clone() *Contour {
	if c == nil {
		return nil
	}
	return NewContour(c.Closed, c.Points...)
}

// IsEmpty reports whether the contour has no points.
func (c *Contour) IsEmpty() bool {
	return c == nil || len(c.Points) == 0
}

// segments decodes the point sequence into drawable segments.
// Off-curve points before the first on-curve point only contribute to the
// closing segment of a closed contour.
func (c *Contour) segments() []segment {
	n := len(c.Points)
	if n == 0 {
		return nil
	}

	start := -1
	for i, p := range c.Points {
		if p.IsOnCurve() {
			start = i
			break
		}
	}
	if start < 0 {
		// Control points only: read them as a polyline.
		pts := make([]Point, n)
		for i, p := range c.Points {
			pts[i] = p.WithKind(OnCurve)
		}
		return (&Contour{Points: pts, Closed: c.Closed}).segments()
	}

	steps := n - 1 - start
	if c.Closed {
		steps = n
	}

	segs := make([]segment, 0, n)
	prev := c.Points[start]
	ctrl := make([]Point, 0, 2)
	for k := 1; k <= steps; k++ {
		p := c.Points[(start+k)%n]
		if !p.IsOnCurve() {
			ctrl = append(ctrl, p)
			continue
		}
		segs = append(segs, makeSegment(prev, ctrl, p.WithKind(OnCurve)))
		prev = p
		ctrl = ctrl[:0]
	}
	return segs
}

func makeSegment(from Point, ctrl []Point, to Point) segment {
	from = from.WithKind(OnCurve)
	switch len(ctrl) {
	case 0:
		return LineSeg{P0: from, P1: to}
	case 1:
		return QuadBez{P0: from, P1: ctrl[0].WithKind(OnCurve), P2: to}
	default:
		return CubicBez{
			P0: from,
			P1: ctrl[0].WithKind(OnCurve),
			P2: ctrl[len(ctrl)-1].WithKind(OnCurve),
			P3: to,
		}
	}
}

// Length returns the arc length of the contour, including the closing
// segment of a closed contour.
func (c *Contour) Length() float64 {
	if c == nil {
		return 0
	}
	var l float64
	for _, s := range c.segments() {
		l += s.Length()
	}
	return l
}

// PointAt returns the point at arc-length parameter t along the contour.
// t is clamped to [0, 1].
func (c *Contour) PointAt(t float64) Point {
	if c.IsEmpty() {
		return Point{}
	}
	return newWalker([]*Contour{c}).at(t)
}

// Bounds returns the tight bounding box of the contour.
func (c *Contour) Bounds() Rect {
	var b bounder
	c.addBounds(&b)
	return b.rect()
}

func (c *Contour) addBounds(b *bounder) {
	if c.IsEmpty() {
		return
	}
	segs := c.segments()
	if len(segs) == 0 {
		for _, p := range c.Points {
			b.add(p)
		}
		return
	}
	for _, s := range segs {
		b.addRect(s.BoundingBox())
	}
}

// Flatten returns the contour as a polyline whose vertices stay within
// tolerance of the curves.
func (c *Contour) Flatten(tolerance float64) []Point {
	if c.IsEmpty() {
		return nil
	}
	segs := c.segments()
	if len(segs) == 0 {
		return []Point{c.Points[0].WithKind(OnCurve)}
	}
	out := make([]Point, 0, len(segs)+1)
	out = append(out, segs[0].Start())
	emit := func(p Point) { out = append(out, p) }
	for _, s := range segs {
		s.flatten(tolerance, emit)
	}
	if c.Closed && len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// winding returns the nonzero winding contribution of the contour at pt.
// Open contours are treated as closed.
func (c *Contour) winding(pt Point, tolerance float64) int {
	poly := c.Flatten(tolerance)
	if len(poly) < 3 {
		return 0
	}
	var w int
	for i := range poly {
		w += lineWinding(poly[i], poly[(i+1)%len(poly)], pt)
	}
	return w
}

// area returns the signed area of the flattened contour.
func (c *Contour) area(tolerance float64) float64 {
	poly := c.Flatten(tolerance)
	if len(poly) < 3 {
		return 0
	}
	var a float64
	for i := range poly {
		a += lineArea(poly[i], poly[(i+1)%len(poly)])
	}
	return a
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// lineArea is the shoelace term of one edge.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}
