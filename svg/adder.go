package svg

import (
	"github.com/gogpu/vg"
	"golang.org/x/image/math/fixed"
)

// pathAdder is a rasterx.Adder that records the outline into a vg.Path
// instead of rasterizing it.
type pathAdder struct {
	p    *vg.Path
	open bool
}

func (a *pathAdder) Start(pt fixed.Point26_6) {
	a.open = true
	a.p.MoveTo(toFloat(pt))
}

func (a *pathAdder) Line(b fixed.Point26_6) {
	a.p.LineTo(toFloat(b))
}

func (a *pathAdder) QuadBezier(b, c fixed.Point26_6) {
	bx, by := toFloat(b)
	cx, cy := toFloat(c)
	a.p.QuadraticTo(bx, by, cx, cy)
}

func (a *pathAdder) CubeBezier(b, c, d fixed.Point26_6) {
	bx, by := toFloat(b)
	cx, cy := toFloat(c)
	dx, dy := toFloat(d)
	a.p.CubicTo(bx, by, cx, cy, dx, dy)
}

// Stop ends the current subpath, closing it when closeLoop is set.
func (a *pathAdder) Stop(closeLoop bool) {
	if a.open && closeLoop {
		a.p.Close()
	}
	a.open = false
}

func toFloat(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}
