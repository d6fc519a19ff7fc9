package vg

// Copy returns count transformed copies of s collected into one geometry.
//
// The transform parameters grow as an arithmetic progression starting at
// no translation, no rotation and scale 1: every step adds translation,
// rotation and scale/100. Each copy maps the original s, never the previous
// copy. A non-positive count gives an empty geometry and an absent s gives
// nil.
func Copy(s Shape, count int, order Order, translation Point, rotation float64, scale Point) *Geometry {
	if IsAbsent(s) {
		return nil
	}
	g := &Geometry{}
	var tx, ty, r float64
	sx, sy := 1.0, 1.0
	for range max(count, 0) {
		m := order.Matrix(Pt(tx, ty), r, Pt(sx, sy))
		g.Extend(ApplyMatrix(toGeometry(s), m))
		tx += translation.X
		ty += translation.Y
		r += rotation
		sx += scale.X / 100
		sy += scale.Y / 100
	}
	return g
}
