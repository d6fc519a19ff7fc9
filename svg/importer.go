package svg

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/gogpu/vg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Importer reads SVG documents. It implements [vg.Importer].
type Importer struct {
	cfg config
}

var _ vg.Importer = (*Importer)(nil)

// NewImporter creates an SVG importer.
func NewImporter(opts ...Option) *Importer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Importer{cfg: cfg}
}

// Import implements [vg.Importer].
func (im *Importer) Import(path string) (*vg.Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("svg: %w", err)
	}
	defer f.Close()

	g, err := im.Read(f)
	if err != nil {
		return nil, fmt.Errorf("svg: %s: %w", path, err)
	}
	return g, nil
}

// Read parses an SVG document from r.
func (im *Importer) Read(r io.Reader) (*vg.Geometry, error) {
	icon, err := oksvg.ReadIconStream(r, im.cfg.errMode)
	if err != nil {
		return nil, err
	}
	if len(icon.SVGPaths) == 0 && !im.cfg.allowNone {
		return nil, ErrNoPaths
	}

	root := icon.Transform
	if root == (rasterx.Matrix2D{}) {
		root = rasterx.Identity
	}

	g := vg.NewGeometry()
	for i := range icon.SVGPaths {
		sp := &icon.SVGPaths[i]
		p := vg.NewPath()
		adder := &rasterx.MatrixAdder{
			Adder: &pathAdder{p: p},
			M:     root.Mult(elementTransform(&sp.PathStyle)),
		}
		sp.Path.AddTo(adder)
		applyStyle(p, sp)
		g.Add(p)
	}
	vg.Logger().Debug("svg: imported document", "paths", len(g.Paths))
	return g, nil
}

// applyStyle copies the fill and stroke of sp onto p.
func applyStyle(p *vg.Path, sp *oksvg.SvgPath) {
	if paintSet(&sp.PathStyle, "fillerColor") {
		fill := vg.FromColor(sp.GetFillColor())
		fill.A *= sp.FillOpacity
		p.Fill = &fill
	}
	if paintSet(&sp.PathStyle, "linerColor") && sp.LineWidth > 0 {
		stroke := vg.FromColor(sp.GetLineColor())
		stroke.A *= sp.LineOpacity
		p.Stroke = &stroke
		p.StrokeWidth = sp.LineWidth
	}
}

// oksvg keeps paints and the element transform unexported and reports
// black for an absent paint. The fields are only inspected, never set.

// paintSet reports whether the named paint of style is set. A field that
// cannot be found counts as set.
func paintSet(style *oksvg.PathStyle, field string) bool {
	v := reflect.ValueOf(style).Elem().FieldByName(field)
	if !v.IsValid() || v.Kind() != reflect.Interface {
		return true
	}
	return !v.IsNil()
}

// elementTransform returns the transform oksvg recorded for a path element,
// or the identity when it cannot be read.
func elementTransform(style *oksvg.PathStyle) rasterx.Matrix2D {
	adder := reflect.ValueOf(style).Elem().FieldByName("mAdder")
	if !adder.IsValid() || adder.Kind() != reflect.Struct {
		return rasterx.Identity
	}
	m := adder.FieldByName("M")
	if !m.IsValid() || m.Type() != reflect.TypeOf(rasterx.Matrix2D{}) {
		return rasterx.Identity
	}
	get := func(name string) float64 {
		return m.FieldByName(name).Float()
	}
	t := rasterx.Matrix2D{A: get("A"), B: get("B"), C: get("C"), D: get("D"), E: get("E"), F: get("F")}
	if t == (rasterx.Matrix2D{}) {
		return rasterx.Identity
	}
	return t
}
