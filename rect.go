package vg

import "math"

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CenteredRect returns the rectangle of size w x h centered on pos.
func CenteredRect(pos Point, w, h float64) Rect {
	return Rect{X: pos.X - w/2, Y: pos.Y - h/2, Width: w, Height: h}
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// bounder accumulates a bounding box from points.
// The zero value is empty.
type bounder struct {
	minX, minY, maxX, maxY float64
	valid                  bool
}

func (b *bounder) add(p Point) {
	if !b.valid {
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		b.valid = true
		return
	}
	b.minX = math.Min(b.minX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxX = math.Max(b.maxX, p.X)
	b.maxY = math.Max(b.maxY, p.Y)
}

func (b *bounder) addRect(r Rect) {
	b.add(Pt(r.X, r.Y))
	b.add(Pt(r.MaxX(), r.MaxY()))
}

// rect returns the accumulated box, or the zero Rect when nothing was added.
func (b *bounder) rect() Rect {
	if !b.valid {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}
