package vg

// Colorize returns a copy of s with every path filled with fill and stroked
// with stroke at strokeWidth. A non-positive strokeWidth removes the stroke.
// Nil colors leave the attribute unset.
func Colorize(s Shape, fill, stroke *Color, strokeWidth float64) *Geometry {
	g := toGeometry(s)
	if g == nil {
		return nil
	}
	for _, p := range g.Paths {
		if p == nil {
			continue
		}
		p.Fill = copyColor(fill)
		if strokeWidth > 0 {
			p.Stroke = copyColor(stroke)
			p.StrokeWidth = strokeWidth
		} else {
			p.Stroke = nil
		}
	}
	return g
}

func copyColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	return c.ptr()
}

// Connect returns a path with one contour through points, stroked black at
// width 1 like Line.
func Connect(points Points, closed bool) *Path {
	if points == nil {
		return nil
	}
	p := NewPath()
	if len(points) > 0 {
		p.AddContour(NewContour(closed, points...))
	}
	p.Stroke = Black.ptr()
	p.StrokeWidth = 1
	return p
}
