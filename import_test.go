package vg

import "testing"

func TestImportFile(t *testing.T) {
	src := NewGeometry(square(10, 10, 20))
	imp := staticImporter{g: src}

	g := ImportFile(imp, "shape.svg", false, Point{})
	if g.Bounds() != src.Bounds() {
		t.Errorf("uncentered bounds = %+v, want %+v", g.Bounds(), src.Bounds())
	}

	g = ImportFile(imp, "shape.svg", true, Pt(100, 100))
	if c := g.Bounds().Center(); !approxPoint(c, Pt(100, 100), epsilon) {
		t.Errorf("centered at %v, want (100, 100)", c)
	}
}

func TestImportFileFailures(t *testing.T) {
	if ImportFile(nil, "x.svg", true, Point{}) != nil {
		t.Error("nil importer should give nil")
	}
	if ImportFile(failingImporter{}, "x.svg", true, Point{}) != nil {
		t.Error("failed import should give nil")
	}
}
