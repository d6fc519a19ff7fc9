package vg

import "testing"

func TestCompoundUniteWithItself(t *testing.T) {
	shapes := map[string]*Path{
		"square":  square(0, 0, 10),
		"ellipse": Ellipse(Pt(0, 0), 40, 20),
		"star":    Star(Pt(0, 0), 5, 50, 20),
	}
	for name, a := range shapes {
		t.Run(name, func(t *testing.T) {
			out, ok := Compound(a, a.Clone(), Unite, false).(*Path)
			if !ok {
				t.Fatalf("Compound() returned %T, want *Path", out)
			}
			want := a.Area()
			if got := out.Area(); !approx(got, want, want*1e-3) {
				t.Errorf("area = %v, want %v", got, want)
			}
		})
	}
}

func TestCompoundOps(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 0, 10)
	tests := []struct {
		name   string
		op     BooleanOp
		invert bool
		want   float64
	}{
		{"unite", Unite, false, 150},
		{"subtract", Subtract, false, 50},
		{"intersect", Intersect, false, 50},
		{"subtract inverted", Subtract, true, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Compound(a, b, tt.op, tt.invert).(*Path)
			if got := out.Area(); !approx(got, tt.want, 1e-6) {
				t.Errorf("area = %v, want %v", got, tt.want)
			}
			for _, c := range out.Contours {
				if !c.Closed {
					t.Error("result contour is open")
				}
			}
		})
	}
}

func TestCompoundInvertSwapsSides(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 0, 10)
	out := Compound(a, b, Subtract, true).(*Path)
	// b - a keeps the part of b right of x=10.
	if !out.Contains(Pt(12, 5)) || out.Contains(Pt(2, 5)) {
		t.Errorf("inverted subtract kept the wrong side: %+v", out.Bounds())
	}
}

func TestCompoundFlattensSideFirst(t *testing.T) {
	// Two overlapping contours on one side count once.
	a := square(0, 0, 10)
	a.AddContour(square(5, 0, 10).Contours[0])
	out := Compound(a, square(100, 100, 1), Subtract, false).(*Path)
	if got := out.Area(); !approx(got, 150, 1e-6) {
		t.Errorf("area = %v, want 150", got)
	}
}

func TestCompoundAbsence(t *testing.T) {
	a := square(0, 0, 10)

	if got := Compound(nil, nil, Unite, false); got != nil {
		t.Errorf("Compound(nil, nil) = %v, want nil", got)
	}
	got, ok := Compound(nil, a, Intersect, false).(*Path)
	if !ok || got == a || got.Bounds() != a.Bounds() {
		t.Errorf("Compound(nil, a) = %v, want a copy of a", got)
	}
	var absent *Geometry
	if g, ok := Compound(a, absent, Subtract, false).(*Path); !ok || g == a {
		t.Errorf("Compound(a, absent) = %v, want a copy of a", g)
	}

	// A side without area gives absence.
	flat := Line(Pt(0, 0), Pt(10, 0))
	if got := Compound(a, flat, Unite, false); got != nil {
		t.Errorf("Compound(a, line) = %v, want nil", got)
	}
}

func TestCompoundUsesFirstSideStyle(t *testing.T) {
	a := square(0, 0, 10)
	a.Fill = White.ptr()
	b := square(5, 5, 10)
	b.Fill = Black.ptr()
	out := Compound(a, b, Unite, false).(*Path)
	if out.Fill == nil || *out.Fill != White {
		t.Errorf("fill = %v, want white", out.Fill)
	}
	out = Compound(a, b, Unite, true).(*Path)
	if out.Fill == nil || *out.Fill != Black {
		t.Errorf("inverted fill = %v, want black", out.Fill)
	}
}

func TestCompoundToleranceOption(t *testing.T) {
	e := Ellipse(Pt(0, 0), 100, 100)
	coarse := Compound(e, e, Unite, false, WithTolerance(5)).(*Path)
	fine := Compound(e, e, Unite, false, WithTolerance(0.01)).(*Path)
	if coarse.PointCount() >= fine.PointCount() {
		t.Errorf("coarse result has %d points, fine %d", coarse.PointCount(), fine.PointCount())
	}
}

func TestParseBooleanOp(t *testing.T) {
	for _, op := range []BooleanOp{Unite, Subtract, Intersect} {
		got, ok := ParseBooleanOp(op.String())
		if !ok || got != op {
			t.Errorf("ParseBooleanOp(%q) = %v, %v", op.String(), got, ok)
		}
	}
	if _, ok := ParseBooleanOp("xor"); ok {
		t.Error("ParseBooleanOp accepted xor")
	}
}
