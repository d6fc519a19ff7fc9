package vg

// Geometry is an ordered list of paths. Insertion order is drawing order
// and the order in which boolean operations accumulate.
//
// &Geometry{} is an empty geometry; a nil *Geometry is an absent shape.
type Geometry struct {
	Paths []*Path
}

// NewGeometry creates a geometry holding the given paths.
// Nil paths are skipped.
func NewGeometry(paths ...*Path) *Geometry {
	g := &Geometry{Paths: make([]*Path, 0, len(paths))}
	for _, p := range paths {
		g.Add(p)
	}
	return g
}

func (*Geometry) isShape() {}

// Add appends a path. A nil path is ignored.
func (g *Geometry) Add(p *Path) {
	if p == nil {
		return
	}
	g.Paths = append(g.Paths, p)
}

// Extend appends every path of other.
func (g *Geometry) Extend(other *Geometry) {
	if other == nil {
		return
	}
	g.Paths = append(g.Paths, other.Paths...)
}

// Clone returns a deep copy of the geometry. Nil path entries are dropped.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	c := &Geometry{Paths: make([]*Path, 0, len(g.Paths))}
	for _, p := range g.Paths {
		c.Add(p.Clone())
	}
	return c
}

// IsEmpty reports whether the geometry has no points.
func (g *Geometry) IsEmpty() bool {
	if g == nil {
		return true
	}
	for _, p := range g.Paths {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// PointCount returns the number of points over all paths.
func (g *Geometry) PointCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, p := range g.Paths {
		n += p.PointCount()
	}
	return n
}

// Points returns a copy of every point in drawing order.
func (g *Geometry) Points() Points {
	out := make(Points, 0, g.PointCount())
	if g == nil {
		return out
	}
	for _, p := range g.Paths {
		out = append(out, p.Points()...)
	}
	return out
}

// contours returns every contour of every path in drawing order.
func (g *Geometry) contours() []*Contour {
	if g == nil {
		return nil
	}
	var out []*Contour
	for _, p := range g.Paths {
		if p == nil {
			continue
		}
		out = append(out, p.Contours...)
	}
	return out
}

// Length returns the total arc length of all paths.
func (g *Geometry) Length() float64 {
	if g == nil {
		return 0
	}
	var l float64
	for _, p := range g.Paths {
		l += p.Length()
	}
	return l
}

// PointAt returns the point at arc-length parameter t over all contours of
// all paths.
func (g *Geometry) PointAt(t float64) Point {
	if g.IsEmpty() {
		return Point{}
	}
	return newWalker(g.contours()).at(t)
}

// Bounds returns the bounding box of all paths.
func (g *Geometry) Bounds() Rect {
	var b bounder
	if g != nil {
		for _, p := range g.Paths {
			p.addBounds(&b)
		}
	}
	return b.rect()
}

// Contains reports whether any path contains pt.
func (g *Geometry) Contains(pt Point) bool {
	if g == nil {
		return false
	}
	for _, p := range g.Paths {
		if p.Contains(pt) {
			return true
		}
	}
	return false
}
