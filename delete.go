package vg

// Delete removes the parts of s selected by region, or keeps only them
// when deleteSelected is false. Points on the edge of region count as
// inside.
//
// At ScopePoints every point is judged on its own; contours keep their
// closed flag and point order and are never removed, even when emptied. At
// ScopeContours and ScopePaths a unit is selected when any of its points
// lies in region, and selected units are dropped or kept as a whole.
func Delete(s Shape, region Rect, scope Scope, deleteSelected bool) *Geometry {
	g := toGeometry(s)
	if g == nil {
		return nil
	}
	out := &Geometry{Paths: make([]*Path, 0, len(g.Paths))}
	for _, p := range g.Paths {
		if p == nil {
			continue
		}
		switch scope {
		case ScopePaths:
			if anyInside(region, p.Contours...) != deleteSelected {
				out.Add(p)
			}
		case ScopeContours:
			kept := p.cloneStyle()
			for _, c := range p.Contours {
				if anyInside(region, c) != deleteSelected {
					kept.AddContour(c)
				}
			}
			out.Add(kept)
		default:
			kept := p.cloneStyle()
			for _, c := range p.Contours {
				if c == nil {
					continue
				}
				nc := &Contour{Points: make([]Point, 0, len(c.Points)), Closed: c.Closed}
				for _, pt := range c.Points {
					if region.Contains(pt) != deleteSelected {
						nc.Points = append(nc.Points, pt)
					}
				}
				kept.AddContour(nc)
			}
			out.Add(kept)
		}
	}
	return out
}

func anyInside(region Rect, contours ...*Contour) bool {
	for _, c := range contours {
		if c == nil {
			continue
		}
		for _, p := range c.Points {
			if region.Contains(p) {
				return true
			}
		}
	}
	return false
}
