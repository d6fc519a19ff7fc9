package vg

import "fmt"

// Shape is any value the operators accept: Point, Points, *Contour, *Path
// or *Geometry. A nil Shape or a nil pointer variant is an absent shape.
type Shape interface {
	isShape()
}

// Points is a plain list of points, as produced by Grid and Scatter.
type Points []Point

func (Point) isShape()  {}
func (Points) isShape() {}

// IsAbsent reports whether s carries no shape at all.
func IsAbsent(s Shape) bool {
	switch v := s.(type) {
	case nil:
		return true
	case Points:
		return v == nil
	case *Contour:
		return v == nil
	case *Path:
		return v == nil
	case *Geometry:
		return v == nil
	}
	return false
}

// Clone returns a deep copy of s with the same variant.
func Clone[S Shape](s S) S {
	return mapPoints(s, func(p Point) Point { return p })
}

// Bounds returns the bounding box of any shape, or the zero Rect for an
// absent or empty one.
func Bounds(s Shape) Rect {
	switch v := s.(type) {
	case Point:
		return Rect{X: v.X, Y: v.Y}
	case Points:
		var b bounder
		for _, p := range v {
			b.add(p)
		}
		return b.rect()
	case *Contour:
		if v != nil {
			return v.Bounds()
		}
	case *Path:
		return v.Bounds()
	case *Geometry:
		return v.Bounds()
	}
	return Rect{}
}

// Contains reports whether pt is inside s. Points and point lists contain
// nothing.
func Contains(s Shape, pt Point) bool {
	switch v := s.(type) {
	case *Contour:
		return v != nil && v.winding(pt, containsTolerance) != 0
	case *Path:
		return v.Contains(pt)
	case *Geometry:
		return v.Contains(pt)
	}
	return false
}

// Length returns the arc length of s.
func Length(s Shape) float64 {
	switch v := s.(type) {
	case *Contour:
		return v.Length()
	case *Path:
		return v.Length()
	case *Geometry:
		return v.Length()
	}
	return 0
}

// PointAt returns the point at arc-length parameter t along s.
func PointAt(s Shape, t float64) (Point, bool) {
	switch v := s.(type) {
	case *Contour:
		if !v.IsEmpty() {
			return v.PointAt(t), true
		}
	case *Path:
		if !v.IsEmpty() {
			return v.PointAt(t), true
		}
	case *Geometry:
		if !v.IsEmpty() {
			return v.PointAt(t), true
		}
	}
	return Point{}, false
}

// toGeometry normalizes any shape into a fresh geometry. Absent shapes give
// nil.
func toGeometry(s Shape) *Geometry {
	switch v := s.(type) {
	case Point:
		return pointGeometry(v)
	case Points:
		if v != nil {
			return pointsGeometry(v)
		}
	case *Contour:
		if v != nil {
			return contourGeometry(v)
		}
	case *Path:
		if v != nil {
			return pathGeometry(v)
		}
	case *Geometry:
		return v.Clone()
	}
	return nil
}

func pointGeometry(p Point) *Geometry {
	return pointsGeometry(Points{p})
}

func pointsGeometry(pts Points) *Geometry {
	path := NewPath()
	path.AddContour(NewContour(false, pts...))
	return NewGeometry(path)
}

func contourGeometry(c *Contour) *Geometry {
	path := NewPath()
	path.AddContour(c.Clone())
	return NewGeometry(path)
}

func pathGeometry(p *Path) *Geometry {
	return NewGeometry(p.Clone())
}

// Scope selects the structural level an operator works on.
type Scope int

const (
	// ScopePoints treats every point on its own.
	ScopePoints Scope = iota

	// ScopeContours treats every contour as one unit.
	ScopeContours

	// ScopePaths treats every path as one unit.
	ScopePaths
)

// String returns the keyword of the scope.
func (s Scope) String() string {
	switch s {
	case ScopePoints:
		return "points"
	case ScopeContours:
		return "contours"
	case ScopePaths:
		return "paths"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// ParseScope parses "points", "contours" or "paths".
func ParseScope(s string) (Scope, bool) {
	switch s {
	case "points":
		return ScopePoints, true
	case "contours":
		return ScopeContours, true
	case "paths":
		return ScopePaths, true
	}
	return ScopePoints, false
}

// mapPoints returns a copy of s with f applied to every point. Point kinds
// are kept.
func mapPoints[S Shape](s S, f func(Point) Point) S {
	return mapScoped(s, ScopePaths, func() func(Point) Point { return f })
}

// mapScoped returns a copy of s with a leaf function applied to every
// point. A fresh leaf is requested for every unit of the given scope, so
// all points of one unit share whatever state the leaf closes over.
func mapScoped[S Shape](s S, scope Scope, leaf func() func(Point) Point) S {
	if IsAbsent(s) {
		return s
	}
	var out Shape
	switch v := any(s).(type) {
	case Point:
		out = mapPoint(v, leaf())
	case Points:
		out = mapPointList(v, scope, leaf)
	case *Contour:
		out = mapContour(v, scope, leaf, nil)
	case *Path:
		out = mapPath(v, scope, leaf)
	case *Geometry:
		g := &Geometry{Paths: make([]*Path, len(v.Paths))}
		for i, p := range v.Paths {
			g.Paths[i] = mapPath(p, scope, leaf)
		}
		out = g
	default:
		return s
	}
	return out.(S)
}

func mapPoint(p Point, f func(Point) Point) Point {
	return f(p).WithKind(p.Kind)
}

func mapPointList(pts Points, scope Scope, leaf func() func(Point) Point) Points {
	out := make(Points, len(pts))
	var f func(Point) Point
	for i, p := range pts {
		if f == nil || scope == ScopePoints {
			f = leaf()
		}
		out[i] = mapPoint(p, f)
	}
	return out
}

// mapContour maps one contour; shared is the leaf of an enclosing path when
// the scope is coarser than contours.
func mapContour(c *Contour, scope Scope, leaf func() func(Point) Point, shared func(Point) Point) *Contour {
	if c == nil {
		return nil
	}
	out := &Contour{Points: make([]Point, len(c.Points)), Closed: c.Closed}
	f := shared
	if f == nil && scope != ScopePoints {
		f = leaf()
	}
	for i, p := range c.Points {
		g := f
		if scope == ScopePoints {
			g = leaf()
		}
		out.Points[i] = mapPoint(p, g)
	}
	return out
}

func mapPath(p *Path, scope Scope, leaf func() func(Point) Point) *Path {
	if p == nil {
		return nil
	}
	out := p.cloneStyle()
	out.Contours = make([]*Contour, len(p.Contours))
	var shared func(Point) Point
	if scope == ScopePaths {
		shared = leaf()
	}
	for i, c := range p.Contours {
		out.Contours[i] = mapContour(c, scope, leaf, shared)
	}
	return out
}
