package vg

// Group collects paths and geometries into one geometry, in order. Nil
// entries are skipped. Any other shape returns a *ShapeTypeError.
func Group(shapes ...Shape) (*Geometry, error) {
	g := &Geometry{}
	for _, s := range shapes {
		if IsAbsent(s) {
			continue
		}
		switch v := s.(type) {
		case *Path:
			g.Add(v.Clone())
		case *Geometry:
			g.Extend(v.Clone())
		default:
			return nil, &ShapeTypeError{Op: "group", Value: s}
		}
	}
	return g, nil
}

// Ungroup returns copies of the paths of s.
func Ungroup(s Shape) []*Path {
	g := toGeometry(s)
	if g == nil {
		return nil
	}
	return g.Paths
}
