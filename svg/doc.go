// Package svg imports SVG files as vg geometries.
//
// Importer implements [vg.Importer] on top of github.com/srwiley/oksvg.
// Every SVG path element becomes one [vg.Path]; its outline is replayed
// through the rasterx.Adder interface, so lines and Bézier curves keep their
// control points. Fill colors are carried over with their opacity, and
// strokes keep their color and width:
//
//	g := vg.ImportFile(svg.NewImporter(), "logo.svg", true, vg.Pt(0, 0))
package svg
