package vg

import (
	"math"
	"testing"
)

func TestTransformDoesNotMutateInput(t *testing.T) {
	p := square(0, 0, 10)
	before := p.Contours[0].Points[0]
	_ = Transform(p, DefaultOrder, Pt(5, 5), 45, Pt(200, 200))
	if p.Contours[0].Points[0] != before {
		t.Error("Transform mutated its input")
	}
}

func TestTransformOrderMatters(t *testing.T) {
	p := Pt(10, 0)
	trs := Transform(p, MustParseOrder("trs"), Pt(100, 0), 90, Pt(200, 200))
	srt := Transform(p, MustParseOrder("srt"), Pt(100, 0), 90, Pt(200, 200))
	// trs: scale, rotate, then translate.
	if !approxPoint(trs, Pt(100, 20), 1e-9) {
		t.Errorf("trs = %v, want (100, 20)", trs)
	}
	// srt: translate, rotate, then scale.
	if !approxPoint(srt, Pt(0, 220), 1e-9) {
		t.Errorf("srt = %v, want (0, 220)", srt)
	}
}

func TestTransformAbsent(t *testing.T) {
	var p *Path
	if got := Transform(p, DefaultOrder, Pt(1, 1), 0, Pt(100, 100)); got != nil {
		t.Errorf("Transform(nil) = %v, want nil", got)
	}
}

func TestRotateAroundOrigin(t *testing.T) {
	got := Rotate(Pt(20, 10), 90, Pt(10, 10))
	if !approxPoint(got, Pt(10, 20), 1e-9) {
		t.Errorf("Rotate = %v, want (10, 20)", got)
	}
}

func TestScaleAroundOrigin(t *testing.T) {
	got := Scale(Points{Pt(20, 10)}, Pt(50, 200), Pt(10, 10))
	if !approxPoint(got[0], Pt(15, 10), 1e-9) {
		t.Errorf("Scale = %v, want (15, 10)", got[0])
	}
}

func TestAlign(t *testing.T) {
	p := square(10, 10, 20) // bounds 10..30
	tests := []struct {
		halign, valign string
		want           Rect
	}{
		{"left", "top", Rect{X: 0, Y: 0, Width: 20, Height: 20}},
		{"center", "middle", Rect{X: -10, Y: -10, Width: 20, Height: 20}},
		{"right", "bottom", Rect{X: -20, Y: -20, Width: 20, Height: 20}},
		{"sideways", "top", Rect{X: 10, Y: 0, Width: 20, Height: 20}},
		{"left", "", Rect{X: 0, Y: 10, Width: 20, Height: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.halign+"/"+tt.valign, func(t *testing.T) {
			got := Align(p, Pt(0, 0), tt.halign, tt.valign).Bounds()
			if got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFitKeepsProportionsAndCenters(t *testing.T) {
	shapes := map[string]Shape{
		"wide rect":  Rectangle(Pt(30, 40), 200, 50, Point{}),
		"tall star":  Star(Pt(-10, 5), 7, 80, 30),
		"ellipse":    Ellipse(Pt(0, 0), 13, 37),
		"point list": Points{Pt(0, 0), Pt(4, 1), Pt(2, 9)},
	}
	pos := Pt(100, 50)
	for name, s := range shapes {
		t.Run(name, func(t *testing.T) {
			in := Bounds(s)
			out := Bounds(Fit(s, pos, 60, 60, true))
			if !approx(in.Width/in.Height, out.Width/out.Height, 1e-9) {
				t.Errorf("ratio %v -> %v", in.Width/in.Height, out.Width/out.Height)
			}
			if !approxPoint(out.Center(), pos, 1e-9) {
				t.Errorf("center = %v, want %v", out.Center(), pos)
			}
			if math.Max(out.Width, out.Height) > 60+1e-9 {
				t.Errorf("result %+v exceeds the 60 x 60 box", out)
			}
			if !approx(math.Max(out.Width, out.Height), 60, 1e-9) {
				t.Errorf("result %+v does not touch the box", out)
			}
		})
	}
}

func TestFitStretches(t *testing.T) {
	out := Fit(square(0, 0, 10), Pt(0, 0), 40, 20, false).Bounds()
	want := Rect{X: -20, Y: -10, Width: 40, Height: 20}
	if !approx(out.X, want.X, epsilon) || !approx(out.Y, want.Y, epsilon) ||
		!approx(out.Width, want.Width, epsilon) || !approx(out.Height, want.Height, epsilon) {
		t.Errorf("Bounds() = %+v, want %+v", out, want)
	}
}

func TestFitFlatShape(t *testing.T) {
	line := Line(Pt(0, 5), Pt(10, 5))

	// The flat axis scales by +Inf, the other axis wins the minimum.
	kept := Fit(line, Pt(0, 0), 100, 100, true).Bounds()
	if !approx(kept.Width, 100, epsilon) || kept.Height != 0 {
		t.Errorf("keepProportions: Bounds() = %+v, want 100 x 0", kept)
	}

	// Without proportions the flat axis keeps scale 1.
	free := Fit(line, Pt(0, 0), 100, 30, false).Bounds()
	if !approx(free.Width, 100, epsilon) || free.Height != 0 || free.Y != 0 {
		t.Errorf("free: Bounds() = %+v, want 100 x 0 at y=0", free)
	}

	// Extents up to 1e-12 snap to zero.
	nearly := Line(Pt(0, 0), Pt(10, 1e-13))
	got := Fit(nearly, Pt(0, 0), 100, 100, true).Bounds()
	if !approx(got.Width, 100, 1e-9) {
		t.Errorf("near-flat: Bounds() = %+v, want width 100", got)
	}
}

// A shape flat on both axes scales by +Inf when proportions are kept. The
// degenerate result is kept as is: coordinates become NaN.
func TestFitInfiniteScaleEdgeCase(t *testing.T) {
	got := Fit(Pt(3, 4), Pt(10, 10), 100, 100, true)
	if !math.IsNaN(got.X) || !math.IsNaN(got.Y) {
		t.Errorf("Fit(point, keep) = %v, want NaN coordinates", got)
	}

	// Without proportions the point is simply moved onto pos.
	free := Fit(Pt(3, 4), Pt(10, 10), 100, 100, false)
	if !approxPoint(free, Pt(10, 10), epsilon) {
		t.Errorf("Fit(point, free) = %v, want (10, 10)", free)
	}
}

func TestFitTo(t *testing.T) {
	target := square(100, 100, 50)
	got := FitTo(square(0, 0, 10), target, true).Bounds()
	want := target.Bounds()
	if !approx(got.X, want.X, epsilon) || !approx(got.Width, want.Width, epsilon) {
		t.Errorf("FitTo bounds = %+v, want %+v", got, want)
	}
	p := square(0, 0, 10)
	if same := FitTo(p, nil, true); same == p || same.Bounds() != p.Bounds() {
		t.Error("FitTo(nil bounding) should return an unchanged copy")
	}
}
