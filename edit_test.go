package vg

import "testing"

func TestEdit(t *testing.T) {
	p := Rectangle(Pt(0, 0), 10, 10, Point{})
	tests := []struct {
		name   string
		deltas string
		want   []Point
	}{
		{
			name:   "single",
			deltas: "0:1,2",
			want:   []Point{Pt(-4, -3), Pt(5, -5), Pt(5, 5), Pt(-5, 5)},
		},
		{
			name:   "semicolons and spaces",
			deltas: "1:10,0; 3:0,-10 2:-1,-1",
			want:   []Point{Pt(-5, -5), Pt(15, -5), Pt(4, 4), Pt(-5, -5)},
		},
		{
			name:   "repeated index adds up",
			deltas: "0:1,1;0:1,1",
			want:   []Point{Pt(-3, -3), Pt(5, -5), Pt(5, 5), Pt(-5, 5)},
		},
		{
			name:   "garbage is skipped",
			deltas: "x:1,1; 2:a,b; 1; -1:3,3; 0:1; 9:5,5; 3:1,1",
			want:   []Point{Pt(-5, -5), Pt(5, -5), Pt(5, 5), Pt(-4, 6)},
		},
		{
			name:   "empty",
			deltas: "",
			want:   []Point{Pt(-5, -5), Pt(5, -5), Pt(5, 5), Pt(-5, 5)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Edit(p, tt.deltas).Contours[0].Points
			for i := range tt.want {
				if !approxPoint(got[i], tt.want[i], epsilon) {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEditIndexesAcrossPaths(t *testing.T) {
	g := NewGeometry(Line(Pt(0, 0), Pt(1, 0)), Line(Pt(0, 5), Pt(1, 5)))
	out := Edit(g, "2:0,1")
	if got := out.Paths[1].Contours[0].Points[0]; got != Pt(0, 6) {
		t.Errorf("point 2 = %v, want (0, 6)", got)
	}
	if g.Paths[1].Contours[0].Points[0] != Pt(0, 5) {
		t.Error("Edit mutated its input")
	}
}

func TestFreehand(t *testing.T) {
	p := Freehand("M 0,0 10,0 10,10 M20,20 30,30 junk 40,40")
	if len(p.Contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(p.Contours))
	}
	if n := len(p.Contours[0].Points); n != 3 {
		t.Errorf("first contour has %d points, want 3", n)
	}
	second := p.Contours[1].Points
	if len(second) != 3 || second[0] != Pt(20, 20) || second[2] != Pt(40, 40) {
		t.Errorf("second contour = %v", second)
	}
	if p.Stroke == nil || p.StrokeWidth != 1 {
		t.Error("freehand paths are stroked")
	}
}

func TestFreehandWithoutMove(t *testing.T) {
	p := Freehand("1,1 2,2")
	if len(p.Contours) != 1 || len(p.Contours[0].Points) != 2 {
		t.Errorf("got %+v, want one contour with two points", p.Contours)
	}
	if empty := Freehand("   "); len(empty.Contours) != 0 {
		t.Errorf("Freehand(blank) = %+v, want no contours", empty.Contours)
	}
}
