package vg

import (
	"fmt"

	"github.com/gogpu/vg/internal/clip"
)

// BooleanOp is a boolean operation on the areas of two shapes.
type BooleanOp int

const (
	// Unite keeps the area covered by either shape.
	Unite BooleanOp = iota

	// Subtract keeps the area of the first shape outside the second.
	Subtract

	// Intersect keeps the area covered by both shapes.
	Intersect
)

// String returns the keyword of the operation.
func (op BooleanOp) String() string {
	switch op {
	case Unite:
		return "unite"
	case Subtract:
		return "subtract"
	case Intersect:
		return "intersect"
	default:
		return fmt.Sprintf("BooleanOp(%d)", int(op))
	}
}

// ParseBooleanOp parses "unite", "subtract" or "intersect".
func ParseBooleanOp(s string) (BooleanOp, bool) {
	switch s {
	case "unite":
		return Unite, true
	case "subtract":
		return Subtract, true
	case "intersect":
		return Intersect, true
	}
	return Unite, false
}

func (op BooleanOp) clipOp() clip.Op {
	switch op {
	case Subtract:
		return clip.Difference
	case Intersect:
		return clip.Intersection
	default:
		return clip.Union
	}
}

// Compound combines the areas of a and b.
//
// When one side is absent a copy of the other is returned; two absent
// sides give nil. Otherwise each side is flattened by uniting its contours
// one after the other, invert swaps the sides, and op is applied. The
// result is a *Path of closed contours styled like the first side, or nil
// when a side flattens to nothing.
func Compound(a, b Shape, op BooleanOp, invert bool, opts ...CompoundOption) Shape {
	switch {
	case IsAbsent(a) && IsAbsent(b):
		return nil
	case IsAbsent(a):
		return Clone(b)
	case IsAbsent(b):
		return Clone(a)
	}

	o := defaultCompoundOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ga, gb := toGeometry(a), toGeometry(b)
	if invert {
		ga, gb = gb, ga
	}
	ra := mergeRings(ga, o.tolerance)
	rb := mergeRings(gb, o.tolerance)
	if len(ra) == 0 || len(rb) == 0 {
		Logger().Debug("vg: compound side has no area", "op", op.String())
		return nil
	}

	out := styleOf(ga)
	for _, r := range clip.Apply(ra, rb, op.clipOp()) {
		c := &Contour{Points: make([]Point, len(r)), Closed: true}
		for i, v := range r {
			c.Points[i] = Pt(v.X, v.Y)
		}
		out.AddContour(c)
	}
	return out
}

// mergeRings flattens every contour of g and unites them left to right.
func mergeRings(g *Geometry, tolerance float64) []clip.Ring {
	contours := g.contours()
	rings := make([]clip.Ring, 0, len(contours))
	for _, c := range contours {
		poly := c.Flatten(tolerance)
		r := make(clip.Ring, len(poly))
		for i, p := range poly {
			r[i] = clip.Point{X: p.X, Y: p.Y}
		}
		rings = append(rings, r)
	}
	return clip.Merge(rings)
}

// styleOf returns an empty path carrying the style of the first path of g.
func styleOf(g *Geometry) *Path {
	if len(g.Paths) == 0 {
		return NewPath()
	}
	return g.Paths[0].cloneStyle()
}
