package vg

import "math"

// tangentStep is the parameter distance used to estimate the direction of a
// guide.
const tangentStep = 0.001

// PointOnPath returns the point at t percent of the arc length of s.
// The boolean is false when s has no outline to walk.
func PointOnPath(s Shape, t float64) (Point, bool) {
	return PointAt(s, t/100)
}

// guide walks the arc-length parametrization of a shape.
type guide struct {
	w    *walker
	loop bool
}

func newGuide(s Shape, loop bool) (*guide, bool) {
	g := toGeometry(s)
	if g.IsEmpty() {
		return nil, false
	}
	return &guide{w: newWalker(g.contours()), loop: loop}, true
}

// param maps a raw parameter into the walkable range: wrapped into [0, 1)
// when looping, clamped to [0, 1] otherwise.
func (g *guide) param(t float64) float64 {
	if g.loop {
		t = math.Mod(t, 1)
		if t < 0 {
			t++
		}
		return t
	}
	return clamp(t, 0, 1)
}

// frame returns the point at t and the direction of the guide there in
// degrees.
func (g *guide) frame(t float64) (Point, float64) {
	t0 := g.param(t)
	a, b := t0, t0+tangentStep
	if g.loop {
		b = g.param(b)
	} else if b > 1 {
		a, b = 1-tangentStep, 1
	}
	return g.w.at(t0), Angle(g.w.at(a), g.w.at(b))
}

// place returns m mapping the template origin onto the guide at t, rotated
// along the guide, after shifting the template by offset.
func (g *guide) place(t float64, offset Point) Matrix {
	p, a := g.frame(t)
	return Translation(p.X, p.Y).
		Multiply(Rotation(radians(a))).
		Multiply(Translation(offset.X, offset.Y))
}

// ShapeOnPath places amount copies of s along guide. The first copy sits
// at start percent of the guide length and every next copy spacing units
// further. Copies are rotated along the guide, with the origin of s on the
// guide. Without loop, copies past the end stay at the end; with loop they
// wrap around to the start.
func ShapeOnPath(s, guideShape Shape, amount int, spacing, start float64, loop bool) *Geometry {
	if IsAbsent(s) || IsAbsent(guideShape) {
		return nil
	}
	g, ok := newGuide(guideShape, loop)
	if !ok {
		return nil
	}
	out := &Geometry{}
	step := 0.0
	if g.w.total > 0 {
		step = spacing / g.w.total
	}
	for i := range max(amount, 0) {
		t := start/100 + float64(i)*step
		out.Extend(ApplyMatrix(toGeometry(s), g.place(t, Point{})))
	}
	return out
}

// TextOnPath sets text along guide, one glyph per rune, starting at start
// percent of the guide length. Glyphs are spaced by their advances and
// rotated along the guide with their baseline on it. Layout failures are
// logged and give nil.
func TextOnPath(layout TextLayout, text, font string, size float64, guideShape Shape, start float64, loop bool) *Geometry {
	if layout == nil || IsAbsent(guideShape) {
		return nil
	}
	g, ok := newGuide(guideShape, loop)
	if !ok || g.w.total == 0 {
		return nil
	}
	advances, err := layout.Advances(text, font, size)
	if err != nil {
		Logger().Warn("vg: text advances failed", "font", font, "err", err)
		return nil
	}

	out := &Geometry{}
	runes := []rune(text)
	var pos float64
	for i, r := range runes {
		adv := 0.0
		if i < len(advances) {
			adv = advances[i]
		}
		glyph, err := layout.Outline(string(r), font, size, AlignLeft, Rect{})
		if err != nil {
			Logger().Warn("vg: glyph outline failed", "rune", string(r), "err", err)
			return nil
		}
		t := start/100 + (pos+adv/2)/g.w.total
		pos += adv
		if glyph.IsEmpty() {
			continue
		}
		out.Add(ApplyMatrix(glyph, g.place(t, Pt(-adv/2, 0))))
	}
	return out
}
