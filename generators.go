package vg

import "math"

// kappa is the control-point distance, relative to the radius, of a cubic
// Bezier approximating a quarter circle.
const kappa = 0.5522847498307936

// ArcKind selects how an arc is closed.
type ArcKind int

const (
	// ArcOpen leaves the arc as an open curve.
	ArcOpen ArcKind = iota

	// ArcChord closes the arc with a straight line between its ends.
	ArcChord

	// ArcPie closes the arc through the center.
	ArcPie
)

// String returns the keyword of the arc kind.
func (k ArcKind) String() string {
	switch k {
	case ArcOpen:
		return "open"
	case ArcChord:
		return "chord"
	case ArcPie:
		return "pie"
	default:
		return "unknown"
	}
}

// ParseArcKind parses "open", "chord" or "pie".
func ParseArcKind(s string) (ArcKind, bool) {
	switch s {
	case "open":
		return ArcOpen, true
	case "chord":
		return ArcChord, true
	case "pie":
		return ArcPie, true
	}
	return ArcOpen, false
}

// Rectangle returns a w x h rectangle centered on pos. When either component of
// roundness is non-zero, the corners are elliptical arcs with those radii,
// limited to half the width and height.
func Rectangle(pos Point, w, h float64, roundness Point) *Path {
	left, top := pos.X-w/2, pos.Y-h/2
	right, bottom := left+w, top+h

	p := NewPath()
	if roundness.X == 0 && roundness.Y == 0 {
		p.MoveTo(left, top)
		p.LineTo(right, top)
		p.LineTo(right, bottom)
		p.LineTo(left, bottom)
		p.Close()
		return p
	}

	rx := clamp(math.Abs(roundness.X), 0, math.Abs(w)/2)
	ry := clamp(math.Abs(roundness.Y), 0, math.Abs(h)/2)
	kx, ky := rx*kappa, ry*kappa

	p.MoveTo(left+rx, top)
	p.LineTo(right-rx, top)
	p.CubicTo(right-rx+kx, top, right, top+ry-ky, right, top+ry)
	p.LineTo(right, bottom-ry)
	p.CubicTo(right, bottom-ry+ky, right-rx+kx, bottom, right-rx, bottom)
	p.LineTo(left+rx, bottom)
	p.CubicTo(left+rx-kx, bottom, left, bottom-ry+ky, left, bottom-ry)
	p.LineTo(left, top+ry)
	p.CubicTo(left, top+ry-ky, left+rx-kx, top, left+rx, top)
	closeOnStart(p)
	return p
}

// Ellipse returns an ellipse of size w x h centered on pos, made of four
// cubic arcs.
func Ellipse(pos Point, w, h float64) *Path {
	rx, ry := w/2, h/2
	kx, ky := rx*kappa, ry*kappa
	cx, cy := pos.X, pos.Y

	p := NewPath()
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	closeOnStart(p)
	return p
}

// closeOnStart closes the last contour, dropping a final on-curve point
// that repeats the first one so the closing segment carries the curve.
func closeOnStart(p *Path) {
	c := p.current()
	n := len(c.Points)
	if n > 1 && c.Points[n-1] == c.Points[0] {
		c.Points = c.Points[:n-1]
	}
	c.Closed = true
}

// Polygon returns a regular polygon with the given radius around pos.
// sides is raised to at least 3. Vertex i lies at angle i*360/sides. When
// align is set the polygon is rotated so that its first edge is horizontal.
func Polygon(pos Point, radius float64, sides int, align bool) *Path {
	sides = max(sides, 3)
	a := 360.0 / float64(sides)
	da := 0.0
	if align {
		v0 := Coordinates(pos, radius, 0)
		v1 := Coordinates(pos, radius, a)
		da = -Angle(v1, v0)
	}

	p := NewPath()
	for i := range sides {
		v := Coordinates(pos, radius, a*float64(i)+da)
		if i == 0 {
			p.MoveTo(v.X, v.Y)
		} else {
			p.LineTo(v.X, v.Y)
		}
	}
	p.Close()
	return p
}

// Star returns a star with the given number of points around pos, starting
// at (pos.X, pos.Y+outer) and alternating between the outer and inner
// radius every pi/points radians. outer and inner are radii, not diameters:
// the outer tips lie outer units from pos.
func Star(pos Point, points int, outer, inner float64) *Path {
	points = max(points, 1)

	p := NewPath()
	p.MoveTo(pos.X, pos.Y+outer)
	for i := 1; i < points*2; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outer
		if i%2 == 1 {
			r = inner
		}
		p.LineTo(pos.X+r*math.Sin(angle), pos.Y+r*math.Cos(angle))
	}
	p.Close()
	return p
}

// Arc returns an elliptical arc of size w x h centered on pos. startAngle
// and sweep are in degrees, counter-clockwise on screen. The arc is built
// from cubic pieces of at most 90 degrees each.
func Arc(pos Point, w, h, startAngle, sweep float64, kind ArcKind) *Path {
	rx, ry := w/2, h/2
	at := func(theta float64) Point {
		return Pt(pos.X+rx*math.Cos(theta), pos.Y+ry*math.Sin(theta))
	}
	deriv := func(theta float64) Point {
		return Pt(-rx*math.Sin(theta), ry*math.Cos(theta))
	}

	theta := radians(-startAngle)
	total := radians(-sweep)
	n := max(int(math.Ceil(math.Abs(sweep)/90)), 1)
	step := total / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	p := NewPath()
	p0 := at(theta)
	p.MoveTo(p0.X, p0.Y)
	if sweep != 0 {
		for range n {
			next := theta + step
			p3 := at(next)
			c1 := p0.Add(deriv(theta).Mul(k))
			c2 := p3.Sub(deriv(next).Mul(k))
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p3.X, p3.Y)
			theta, p0 = next, p3
		}
	}

	switch kind {
	case ArcChord:
		p.Close()
	case ArcPie:
		p.LineTo(pos.X, pos.Y)
		p.Close()
	}
	return p
}

// Line returns an open two-point path from p1 to p2 with a black stroke of
// width 1.
func Line(p1, p2 Point) *Path {
	p := NewPath()
	p.MoveTo(p1.X, p1.Y)
	p.LineTo(p2.X, p2.Y)
	p.Stroke = Black.ptr()
	p.StrokeWidth = 1
	return p
}

// LineAngle returns a line starting at pos going distance units in the
// direction of angle degrees.
func LineAngle(pos Point, distance, angle float64) *Path {
	return Line(pos, Coordinates(pos, distance, angle))
}

// Grid returns rows x cols points spread over a w x h box centered on pos,
// in row-major order. A single column sits at pos.X and a single row at
// pos.Y.
func Grid(rows, cols int, w, h float64, pos Point) Points {
	if rows <= 0 || cols <= 0 {
		return Points{}
	}

	left, colSize := pos.X, 0.0
	if cols > 1 {
		colSize = w / float64(cols-1)
		left = pos.X - w/2
	}
	top, rowSize := pos.Y, 0.0
	if rows > 1 {
		rowSize = h / float64(rows-1)
		top = pos.Y - h/2
	}

	pts := make(Points, 0, rows*cols)
	for ri := range rows {
		for ci := range cols {
			pts = append(pts, Pt(left+float64(ci)*colSize, top+float64(ri)*rowSize))
		}
	}
	return pts
}
