// Package vg provides procedural vector-geometry operators for Go.
//
// # Overview
//
// vg is the geometry kernel behind a node-based generative design tool.
// Every operator takes shapes plus numeric or point parameters and
// deterministically returns new shapes. Operators never mutate their
// inputs and keep no state between calls.
//
// # Quick Start
//
//	import "github.com/gogpu/vg"
//
//	// A star, copied five times along a rotating progression
//	star := vg.Star(vg.Pt(0, 0), 5, 50, 20)
//	order, _ := vg.ParseOrder("tsr")
//	g := vg.Copy(star, 5, order, vg.Pt(120, 0), 15, vg.Pt(-10, -10))
//
//	// Scatter 100 points inside it, reproducibly
//	pts := vg.Scatter(g, 100, 42)
//
// # Shape Model
//
// The model has four levels:
//   - Point: a coordinate plus an on-curve/off-curve kind
//   - Contour: an ordered run of points, open or closed
//   - Path: contours plus fill, stroke and stroke width
//   - Geometry: an ordered list of paths (z-order)
//
// Shape is a sealed union over Point, Points, *Contour, *Path and
// *Geometry. A nil Shape (or a nil pointer variant) means "no shape";
// operators propagate it instead of failing.
//
// # Coordinate System
//
// Screen coordinates are used throughout:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Operator angles are in degrees
//
// # Collaborators
//
// Text outlines and file import are delegated through the TextLayout and
// Importer interfaces. The text and svg sub-packages provide
// implementations backed by go-text/typesetting and oksvg.
package vg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
