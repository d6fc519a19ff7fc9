package vg

import "math"

// extentEpsilon is the bounding-box extent below which Fit treats a shape as
// flat on that axis.
const extentEpsilon = 1e-12

// ApplyMatrix returns a copy of s with m applied to every point.
func ApplyMatrix[S Shape](s S, m Matrix) S {
	return mapPoints(s, m.TransformPoint)
}

// Transform returns a copy of s transformed by the operations of order.
// rotation is in degrees and scale is in percent.
func Transform[S Shape](s S, order Order, translation Point, rotation float64, scale Point) S {
	if IsAbsent(s) {
		return s
	}
	m := order.Matrix(translation, rotation, Pt(scale.X/100, scale.Y/100))
	return ApplyMatrix(s, m)
}

// Translate returns a copy of s moved by offset.
func Translate[S Shape](s S, offset Point) S {
	return ApplyMatrix(s, Translation(offset.X, offset.Y))
}

// Rotate returns a copy of s rotated by angle degrees around origin.
func Rotate[S Shape](s S, angle float64, origin Point) S {
	m := Translation(origin.X, origin.Y).
		Multiply(Rotation(radians(angle))).
		Multiply(Translation(-origin.X, -origin.Y))
	return ApplyMatrix(s, m)
}

// Scale returns a copy of s scaled by scale percent around origin.
func Scale[S Shape](s S, scale Point, origin Point) S {
	m := Translation(origin.X, origin.Y).
		Multiply(Scaling(scale.X/100, scale.Y/100)).
		Multiply(Translation(-origin.X, -origin.Y))
	return ApplyMatrix(s, m)
}

// Align returns a copy of s moved so that its bounding box is anchored at
// pos. halign is "left", "center" or "right" and valign is "top", "middle"
// or "bottom". An unknown keyword leaves that axis untouched.
func Align[S Shape](s S, pos Point, halign, valign string) S {
	if IsAbsent(s) {
		return s
	}
	r := Bounds(s)
	var dx, dy float64
	switch halign {
	case "left":
		dx = pos.X - r.X
	case "right":
		dx = pos.X - r.X - r.Width
	case "center":
		dx = pos.X - r.X - r.Width/2
	}
	switch valign {
	case "top":
		dy = pos.Y - r.Y
	case "bottom":
		dy = pos.Y - r.Y - r.Height
	case "middle":
		dy = pos.Y - r.Y - r.Height/2
	}
	return Translate(s, Pt(dx, dy))
}

// Fit returns a copy of s scaled and moved so that its bounding box fits
// the w x h box centered on pos. Scaling pivots on the center of the
// shape's own bounding box.
//
// An extent of at most 1e-12 counts as zero. A zero extent scales by +Inf
// when keepProportions is set, so the other axis decides through the
// minimum; a shape flat on both axes then maps to NaN coordinates. Without
// keepProportions a zero extent scales by 1.
func Fit[S Shape](s S, pos Point, w, h float64, keepProportions bool) S {
	if IsAbsent(s) {
		return s
	}
	r := Bounds(s)
	pw, ph := r.Width, r.Height
	if pw <= extentEpsilon {
		pw = 0
	}
	if ph <= extentEpsilon {
		ph = 0
	}

	sx := fitFactor(w, pw, keepProportions)
	sy := fitFactor(h, ph, keepProportions)
	if keepProportions {
		sx = math.Min(sx, sy)
		sy = sx
	}

	m := Translation(pos.X, pos.Y).
		Multiply(Scaling(sx, sy)).
		Multiply(Translation(-pw/2-r.X, -ph/2-r.Y))
	return ApplyMatrix(s, m)
}

func fitFactor(target, extent float64, keepProportions bool) float64 {
	switch {
	case extent != 0:
		return target / extent
	case keepProportions:
		return math.Inf(1)
	default:
		return 1
	}
}

// FitTo fits s into the bounding box of another shape. An absent bounding
// shape leaves s unchanged.
func FitTo[S Shape](s S, bounding Shape, keepProportions bool) S {
	if IsAbsent(bounding) {
		return Clone(s)
	}
	r := Bounds(bounding)
	return Fit(s, r.Center(), r.Width, r.Height, keepProportions)
}
