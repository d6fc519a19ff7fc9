package vg

// Importer reads a vector file into a geometry.
type Importer interface {
	Import(path string) (*Geometry, error)
}

// ImportFile reads path with imp. When centered is set, the result is moved
// so that the center of its bounding box lies on pos. Import failures are
// logged and give nil.
func ImportFile(imp Importer, path string, centered bool, pos Point) *Geometry {
	if imp == nil {
		return nil
	}
	g, err := imp.Import(path)
	if err != nil {
		Logger().Warn("vg: import failed", "path", path, "err", err)
		return nil
	}
	if g == nil || !centered {
		return g
	}
	c := g.Bounds().Center()
	return Translate(g, pos.Sub(c))
}
