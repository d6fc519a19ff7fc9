package vg

import (
	"math"

	"github.com/gogpu/vg/internal/flatten"
)

// segment is one drawable piece of a contour: a line, a quadratic or a cubic
// Bezier. Segments are decoded from the on/off-curve point sequence.
type segment interface {
	Eval(t float64) Point
	Start() Point
	End() Point
	Length() float64
	BoundingBox() Rect
	flatten(tolerance float64, emit func(Point))
}

// -------------------------------------------------------------------
// LineSeg
// -------------------------------------------------------------------

// LineSeg is a straight segment from P0 to P1.
type LineSeg struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t (0 to 1).
func (l LineSeg) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Start returns the starting point.
func (l LineSeg) Start() Point { return l.P0 }

// End returns the ending point.
func (l LineSeg) End() Point { return l.P1 }

// Length returns the length of the line.
func (l LineSeg) Length() float64 {
	return l.P0.Distance(l.P1)
}

// BoundingBox returns the bounding box of the line.
func (l LineSeg) BoundingBox() Rect {
	var b bounder
	b.add(l.P0)
	b.add(l.P1)
	return b.rect()
}

func (l LineSeg) flatten(_ float64, emit func(Point)) {
	emit(l.P1)
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez is a quadratic Bezier curve with control point P1.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Start returns the starting point of the curve.
func (q QuadBez) Start() Point { return q.P0 }

// End returns the ending point of the curve.
func (q QuadBez) End() Point { return q.P2 }

// Raise returns the same curve as a cubic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		P3: q.P2,
	}
}

// Length returns the arc length of the curve.
func (q QuadBez) Length() float64 {
	return q.Raise().Length()
}

// Extrema returns parameter values in (0, 1) where either coordinate has a
// local extremum.
func (q QuadBez) Extrema() []float64 {
	var result []float64
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	var b bounder
	b.add(q.P0)
	b.add(q.P2)
	for _, t := range q.Extrema() {
		b.add(q.Eval(t))
	}
	return b.rect()
}

func (q QuadBez) flatten(tolerance float64, emit func(Point)) {
	flatten.Quad(fp(q.P0), fp(q.P1), fp(q.P2), tolerance, func(p flatten.Point) {
		emit(Pt(p.X, p.Y))
	})
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez is a cubic Bezier curve with control points P1 and P2.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point { return c.P0 }

// End returns the ending point of the curve.
func (c CubicBez) End() Point { return c.P3 }

// Length returns the arc length of the curve, measured by adaptive
// subdivision.
func (c CubicBez) Length() float64 {
	return flatten.CubicLength(fp(c.P0), fp(c.P1), fp(c.P2), fp(c.P3), 1e-4)
}

// Extrema returns parameter values in (0, 1) where either coordinate has a
// local extremum. There are at most four.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = appendUnitRoots(result, d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)
	result = appendUnitRoots(result, d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	var b bounder
	b.add(c.P0)
	b.add(c.P3)
	for _, t := range c.Extrema() {
		b.add(c.Eval(t))
	}
	return b.rect()
}

func (c CubicBez) flatten(tolerance float64, emit func(Point)) {
	flatten.Cubic(fp(c.P0), fp(c.P1), fp(c.P2), fp(c.P3), tolerance, func(p flatten.Point) {
		emit(Pt(p.X, p.Y))
	})
}

// appendUnitRoots appends the real roots of a*t^2 + b*t + c = 0 that lie
// strictly inside (0, 1).
func appendUnitRoots(dst []float64, a, b, c float64) []float64 {
	add := func(t float64) {
		if t > 0 && t < 1 {
			dst = append(dst, t)
		}
	}
	if math.Abs(a) < 1e-12 {
		if b != 0 {
			add(-c / b)
		}
		return dst
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
	case disc == 0:
		add(-b / (2 * a))
	default:
		// Numerically stable pair.
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		add(q / a)
		if q != 0 {
			add(c / q)
		}
	}
	return dst
}

func fp(p Point) flatten.Point {
	return flatten.Point{X: p.X, Y: p.Y}
}
