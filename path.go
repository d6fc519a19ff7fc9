package vg

// Path is an ordered list of contours with presentation attributes.
// A nil Fill or Stroke means the attribute is not set.
// A path with no contours is a valid empty shape.
type Path struct {
	Contours    []*Contour
	Fill        *Color
	Stroke      *Color
	StrokeWidth float64
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		Contours: make([]*Contour, 0, 1),
	}
}

func (*Path) isShape() {}

// Clone returns a deep copy of the path, including its colors.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	c := p.cloneStyle()
	c.Contours = make([]*Contour, len(p.Contours))
	for i, ct := range p.Contours {
		c.Contours[i] = ct.Clone()
	}
	return c
}

// cloneStyle returns an empty path with the same presentation attributes.
func (p *Path) cloneStyle() *Path {
	c := &Path{StrokeWidth: p.StrokeWidth}
	if p.Fill != nil {
		f := *p.Fill
		c.Fill = &f
	}
	if p.Stroke != nil {
		s := *p.Stroke
		c.Stroke = &s
	}
	return c
}

// AddContour appends a contour to the path.
func (p *Path) AddContour(c *Contour) {
	p.Contours = append(p.Contours, c)
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Contours = append(p.Contours, &Contour{Points: []Point{Pt(x, y)}})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.current().Points = append(p.current().Points, Pt(x, y))
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	c := p.current()
	c.Points = append(c.Points, control(cx, cy), Pt(x, y))
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c := p.current()
	c.Points = append(c.Points, control(c1x, c1y), control(c2x, c2y), Pt(x, y))
}

// Close closes the current contour.
func (p *Path) Close() {
	if len(p.Contours) == 0 {
		return
	}
	p.Contours[len(p.Contours)-1].Closed = true
}

// current returns the contour being built, starting one at the origin when
// the path is empty.
func (p *Path) current() *Contour {
	if len(p.Contours) == 0 {
		p.MoveTo(0, 0)
	}
	return p.Contours[len(p.Contours)-1]
}

// IsEmpty reports whether the path has no points.
func (p *Path) IsEmpty() bool {
	if p == nil {
		return true
	}
	for _, c := range p.Contours {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// PointCount returns the number of points over all contours.
func (p *Path) PointCount() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, c := range p.Contours {
		n += len(c.Points)
	}
	return n
}

// Points returns a copy of every point of the path in contour order.
func (p *Path) Points() Points {
	out := make(Points, 0, p.PointCount())
	if p == nil {
		return out
	}
	for _, c := range p.Contours {
		out = append(out, c.Points...)
	}
	return out
}
