// Package clip performs boolean operations on polygons made of flattened
// contours.
package clip

import "github.com/ctessum/geom"

// Point is a polygon vertex.
type Point struct {
	X, Y float64
}

// Ring is a closed polygon outline. The closing edge is implicit.
type Ring []Point

// Op is a boolean operation.
type Op int

const (
	// Union keeps area covered by either operand.
	Union Op = iota

	// Difference keeps area of the first operand not covered by the second.
	Difference

	// Intersection keeps area covered by both operands.
	Intersection

	// XOr keeps area covered by exactly one operand.
	XOr
)

// Merge unions rings one after the other, left to right, and returns the
// resulting outline. Rings with fewer than three vertices are skipped.
func Merge(rings []Ring) []Ring {
	var acc geom.Polygon
	for _, r := range rings {
		if len(r) < 3 {
			continue
		}
		next := geom.Polygon{toPath(r)}
		if acc == nil {
			acc = next
			continue
		}
		acc = polygon(acc.Union(next))
	}
	return fromPolygon(acc)
}

// Apply combines two outlines with op.
func Apply(a, b []Ring, op Op) []Ring {
	pa, pb := toPolygon(a), toPolygon(b)
	var out geom.Polygon
	switch op {
	case Union:
		out = polygon(pa.Union(pb))
	case Difference:
		out = polygon(pa.Difference(pb))
	case Intersection:
		out = polygon(pa.Intersection(pb))
	case XOr:
		out = polygon(pa.XOr(pb))
	}
	return fromPolygon(out)
}

// Area returns the area enclosed by the rings, with holes subtracted.
func Area(rings []Ring) float64 {
	if len(rings) == 0 {
		return 0
	}
	return toPolygon(rings).Area()
}

// polygon unwraps the result of a geom boolean op. The ops return a
// geom.Polygon behind the Polygonal interface.
func polygon(p geom.Polygonal) geom.Polygon {
	if p == nil {
		return nil
	}
	if poly, ok := p.(geom.Polygon); ok {
		return poly
	}
	var out geom.Polygon
	for _, poly := range p.Polygons() {
		out = append(out, poly...)
	}
	return out
}

func toPath(r Ring) geom.Path {
	p := make(geom.Path, len(r))
	for i, v := range r {
		p[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return p
}

func toPolygon(rings []Ring) geom.Polygon {
	poly := make(geom.Polygon, 0, len(rings))
	for _, r := range rings {
		if len(r) >= 3 {
			poly = append(poly, toPath(r))
		}
	}
	return poly
}

func fromPolygon(poly geom.Polygon) []Ring {
	out := make([]Ring, 0, len(poly))
	for _, path := range poly {
		n := len(path)
		if n > 1 && path[0] == path[n-1] {
			n--
		}
		if n < 3 {
			continue
		}
		r := make(Ring, n)
		for i := range n {
			r[i] = Point{X: path[i].X, Y: path[i].Y}
		}
		out = append(out, r)
	}
	return out
}
