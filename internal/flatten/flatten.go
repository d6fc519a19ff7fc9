// Package flatten turns Bezier curves into polylines and measures them.
package flatten

import "math"

// Point is a 2D point (internal copy to avoid an import cycle with vg).
type Point struct {
	X, Y float64
}

// DefaultTolerance is the maximum distance between a curve and its polyline.
const DefaultTolerance = 0.1

// maxDepth bounds the recursion for degenerate or huge curves.
const maxDepth = 16

func (p Point) lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func (p Point) sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

func (p Point) dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Quad calls emit for each polyline vertex of the quadratic Bezier p0-p1-p2,
// excluding p0 and ending with p2.
func Quad(p0, p1, p2 Point, tolerance float64, emit func(Point)) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	quadRec(p0, p1, p2, tolerance, 0, emit)
}

func quadRec(p0, p1, p2 Point, tolerance float64, depth int, emit func(Point)) {
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < tolerance {
		emit(p2)
		return
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	mid := q0.lerp(q1, 0.5)
	quadRec(p0, q0, mid, tolerance, depth+1, emit)
	quadRec(mid, q1, p2, tolerance, depth+1, emit)
}

// Cubic calls emit for each polyline vertex of the cubic Bezier p0..p3,
// excluding p0 and ending with p3.
func Cubic(p0, p1, p2, p3 Point, tolerance float64, emit func(Point)) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	cubicRec(p0, p1, p2, p3, tolerance, 0, emit)
}

func cubicRec(p0, p1, p2, p3 Point, tolerance float64, depth int, emit func(Point)) {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxDepth || d < tolerance {
		emit(p3)
		return
	}
	a, b := splitCubic(p0, p1, p2, p3)
	cubicRec(a[0], a[1], a[2], a[3], tolerance, depth+1, emit)
	cubicRec(b[0], b[1], b[2], b[3], tolerance, depth+1, emit)
}

// splitCubic subdivides a cubic at t=0.5 using de Casteljau.
func splitCubic(p0, p1, p2, p3 Point) (left, right [4]Point) {
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)
	return [4]Point{p0, q0, r0, s}, [4]Point{s, r1, q2, p3}
}

// CubicLength returns the arc length of a cubic Bezier, subdividing until
// the control polygon and the chord agree within tolerance.
func CubicLength(p0, p1, p2, p3 Point, tolerance float64) float64 {
	if tolerance <= 0 {
		tolerance = 1e-3
	}
	return cubicLengthRec(p0, p1, p2, p3, tolerance, 0)
}

func cubicLengthRec(p0, p1, p2, p3 Point, tolerance float64, depth int) float64 {
	chord := p0.dist(p3)
	poly := p0.dist(p1) + p1.dist(p2) + p2.dist(p3)
	if depth >= maxDepth || poly-chord <= tolerance {
		// Gravesen: weighted average of chord and control polygon.
		return (2*chord + poly) / 3
	}
	a, b := splitCubic(p0, p1, p2, p3)
	return cubicLengthRec(a[0], a[1], a[2], a[3], tolerance/2, depth+1) +
		cubicLengthRec(b[0], b[1], b[2], b[3], tolerance/2, depth+1)
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.sub(a)
	l2 := ab.dot(ab)
	if l2 < 1e-20 {
		return p.dist(a)
	}
	t := p.sub(a).dot(ab) / l2
	switch {
	case t < 0:
		return p.dist(a)
	case t > 1:
		return p.dist(b)
	}
	return p.dist(a.lerp(b, t))
}
