package vg

import (
	"math"
	"math/rand/v2"
)

// maxScatterAttempts bounds the rejection sampling for one point.
const maxScatterAttempts = 100

// Scatter returns up to amount random points inside s, drawn from a
// generator seeded with seed.
func Scatter(s Shape, amount int, seed int64) Points {
	return ScatterRand(s, amount, NewRand(seed))
}

// ScatterRand is like Scatter but draws from r.
//
// Candidates are sampled uniformly in the bounding box of s and kept when s
// contains them. A point that is still rejected after 100 attempts is
// skipped, so the result may hold fewer than amount points.
func ScatterRand(s Shape, amount int, r *rand.Rand) Points {
	if IsAbsent(s) {
		return nil
	}
	b := Bounds(s)
	pts := make(Points, 0, max(amount, 0))
	for range max(amount, 0) {
		for range maxScatterAttempts {
			p := Pt(uniform(r, b.X, b.MaxX()), uniform(r, b.Y, b.MaxY()))
			if Contains(s, p) {
				pts = append(pts, p)
				break
			}
		}
	}
	return pts
}

// Wiggle returns a copy of s with every unit of scope moved by a random
// offset in [-offset.X, offset.X] x [-offset.Y, offset.Y]. All points of one
// contour or path move together at the coarser scopes.
func Wiggle[S Shape](s S, scope Scope, offset Point, seed int64) S {
	return WiggleRand(s, scope, offset, NewRand(seed))
}

// WiggleRand is like Wiggle but draws from r.
func WiggleRand[S Shape](s S, scope Scope, offset Point, r *rand.Rand) S {
	return mapScoped(s, scope, func() func(Point) Point {
		d := Pt(uniform(r, -offset.X, offset.X), uniform(r, -offset.Y, offset.Y))
		return func(p Point) Point { return p.Add(d) }
	})
}

// Snap returns a copy of s with every point pulled towards the nearest
// point of a grid with the given spacing anchored at origin. strength is a
// percentage: 0 leaves points alone and 100 puts them on the grid. A zero
// distance leaves s unchanged.
func Snap[S Shape](s S, distance, strength float64, origin Point) S {
	if distance == 0 {
		return Clone(s)
	}
	k := strength / 100
	snap := func(v, o float64) float64 {
		v -= o
		return o + v*(1-k) + k*math.Round(v/distance)*distance
	}
	return mapPoints(s, func(p Point) Point {
		return Pt(snap(p.X, origin.X), snap(p.Y, origin.Y))
	})
}

// Reflect mirrors s across the line through axis at angle degrees. At
// angle 0 the mirror line is vertical.
//
// Every point is decomposed into distance and direction from axis, the
// direction is mirrored and the point recomposed. With keepOriginal the
// source and the mirror image are returned together as one *Geometry, with
// the source paths first.
func Reflect(s Shape, axis Point, angle float64, keepOriginal bool) Shape {
	if IsAbsent(s) {
		return nil
	}
	mirror := 2 * (angle + 90)
	mirrored := mapPoints(s, func(p Point) Point {
		return Coordinates(axis, axis.Distance(p), mirror-Angle(axis, p))
	})
	if !keepOriginal {
		return mirrored
	}

	g := toGeometry(s)
	g.Extend(toGeometry(mirrored))
	return g
}
