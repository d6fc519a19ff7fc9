package vg

import (
	"math"
	"testing"
)

func TestScatterIsDeterministic(t *testing.T) {
	star := Star(Pt(0, 0), 5, 50, 20)
	a := Scatter(star, 200, 42)
	b := Scatter(star, 200, 42)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
	c := Scatter(star, 200, 43)
	if len(c) > 0 && len(a) > 0 && c[0] == a[0] {
		t.Error("different seeds gave the same first point")
	}
}

func TestScatterPointsAreInside(t *testing.T) {
	shapes := map[string]Shape{
		"star":    Star(Pt(0, 0), 5, 50, 20),
		"ellipse": Ellipse(Pt(10, 10), 30, 80),
		"group":   NewGeometry(square(0, 0, 10), square(50, 50, 10)),
	}
	for name, s := range shapes {
		t.Run(name, func(t *testing.T) {
			pts := Scatter(s, 100, 7)
			if len(pts) > 100 {
				t.Fatalf("got %d points, want at most 100", len(pts))
			}
			for _, p := range pts {
				if !Contains(s, p) {
					t.Errorf("point %v is outside the shape", p)
				}
			}
		})
	}
}

func TestScatterGivesUpAfterBoundedAttempts(t *testing.T) {
	// A line has no interior: every attempt is rejected.
	pts := Scatter(Line(Pt(0, 0), Pt(10, 10)), 50, 1)
	if len(pts) != 0 {
		t.Errorf("got %d points, want 0", len(pts))
	}
	if Scatter(nil, 10, 1) != nil {
		t.Error("Scatter(nil) should be nil")
	}
}

func TestWiggleScopes(t *testing.T) {
	p := NewPath()
	p.AddContour(NewContour(false, Pt(0, 0), Pt(10, 0), Pt(20, 0)))
	p.AddContour(NewContour(false, Pt(0, 10), Pt(10, 10)))

	deltas := func(out *Path) []Point {
		var d []Point
		for ci, c := range out.Contours {
			for pi, pt := range c.Points {
				d = append(d, pt.Sub(p.Contours[ci].Points[pi]))
			}
		}
		return d
	}

	t.Run("points", func(t *testing.T) {
		d := deltas(Wiggle(p, ScopePoints, Pt(5, 5), 3))
		if d[0] == d[1] && d[1] == d[2] {
			t.Error("points moved together")
		}
	})
	t.Run("contours", func(t *testing.T) {
		d := deltas(Wiggle(p, ScopeContours, Pt(5, 5), 3))
		if d[0] != d[1] || d[1] != d[2] || d[3] != d[4] {
			t.Error("points of one contour moved apart")
		}
		if d[0] == d[3] {
			t.Error("contours moved together")
		}
	})
	t.Run("paths", func(t *testing.T) {
		d := deltas(Wiggle(p, ScopePaths, Pt(5, 5), 3))
		for i := range d {
			if d[i] != d[0] {
				t.Fatal("points of one path moved apart")
			}
		}
	})
}

func TestWiggleBoundsAndDeterminism(t *testing.T) {
	pts := Grid(10, 10, 100, 100, Pt(0, 0))
	a := Wiggle(pts, ScopePoints, Pt(3, 7), 99)
	b := Wiggle(pts, ScopePoints, Pt(3, 7), 99)
	for i := range pts {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between equal seeds", i)
		}
		d := a[i].Sub(pts[i])
		if math.Abs(d.X) > 3 || math.Abs(d.Y) > 7 {
			t.Errorf("point %d moved by %v, outside the offset", i, d)
		}
	}
}

func TestWiggleRandThreadsGenerator(t *testing.T) {
	r := NewRand(5)
	first := WiggleRand(Pt(0, 0), ScopePoints, Pt(1, 1), r)
	second := WiggleRand(Pt(0, 0), ScopePoints, Pt(1, 1), r)
	if first == second {
		t.Error("a shared generator should advance between calls")
	}
	if again := Wiggle(Pt(0, 0), ScopePoints, Pt(1, 1), 5); again != first {
		t.Errorf("Wiggle(seed 5) = %v, want %v", again, first)
	}
}

func TestSnap(t *testing.T) {
	shape := Star(Pt(3.3, -7.1), 6, 47, 19)

	same := Snap(shape, 10, 0, Pt(0, 0))
	for i, p := range same.Contours[0].Points {
		if p != shape.Contours[0].Points[i] {
			t.Errorf("strength 0 moved point %d: %v -> %v", i, shape.Contours[0].Points[i], p)
		}
	}

	snapped := Snap(shape, 10, 100, Pt(0, 0))
	for _, p := range snapped.Contours[0].Points {
		if math.Mod(p.X, 10) != 0 || math.Mod(p.Y, 10) != 0 {
			t.Errorf("point %v is not on the grid", p)
		}
	}
}

func TestSnapHalfStrengthAndOrigin(t *testing.T) {
	got := Snap(Pt(4, 4), 10, 50, Pt(0, 0))
	if !approxPoint(got, Pt(2, 2), epsilon) {
		t.Errorf("half snap = %v, want (2, 2)", got)
	}
	got = Snap(Pt(4, 4), 10, 100, Pt(5, 5))
	if !approxPoint(got, Pt(5, 5), epsilon) {
		t.Errorf("snap with origin = %v, want (5, 5)", got)
	}
	if got := Snap(Pt(4, 4), 0, 100, Pt(0, 0)); got != Pt(4, 4) {
		t.Errorf("zero distance moved the point to %v", got)
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(Pt(5, 0), Pt(0, 0), 0, false)
	p, ok := got.(Point)
	if !ok {
		t.Fatalf("Reflect(point) returned %T, want Point", got)
	}
	if !approxPoint(p, Pt(-5, 0), 1e-9) {
		t.Errorf("Reflect((5,0)) = %v, want (-5, 0)", p)
	}
}

func TestReflectAxes(t *testing.T) {
	tests := []struct {
		name  string
		in    Point
		axis  Point
		angle float64
		want  Point
	}{
		{"vertical mirror keeps y", Pt(3, 8), Pt(0, 0), 0, Pt(-3, 8)},
		{"horizontal mirror", Pt(3, 8), Pt(0, 0), 90, Pt(3, -8)},
		{"shifted axis", Pt(12, 1), Pt(10, 0), 0, Pt(8, 1)},
		{"point on axis", Pt(0, 5), Pt(0, 0), 0, Pt(0, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.in, tt.axis, tt.angle, false).(Point)
			if !approxPoint(got, tt.want, 1e-9) {
				t.Errorf("Reflect(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReflectKeepOriginal(t *testing.T) {
	points := []struct {
		name string
		in   Shape
		want Points
	}{
		{"point", Pt(5, 0), Points{Pt(5, 0), Pt(-5, 0)}},
		{"points", Points{Pt(5, 0), Pt(0, 5)}, Points{Pt(5, 0), Pt(0, 5), Pt(-5, 0), Pt(0, 5)}},
	}
	for _, tt := range points {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := Reflect(tt.in, Pt(0, 0), 0, true).(*Geometry)
			if !ok || len(g.Paths) != 2 {
				t.Fatalf("Reflect(%s, keep) = %v, want a *Geometry of two paths", tt.name, g)
			}
			got := g.Points()
			if len(got) != len(tt.want) {
				t.Fatalf("Reflect(%s, keep) points = %v, want %v", tt.name, got, tt.want)
			}
			for i := range got {
				if !approxPoint(got[i], tt.want[i], 1e-9) {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}

	p := square(1, 0, 4)
	g, ok := Reflect(p, Pt(0, 0), 0, true).(*Geometry)
	if !ok || len(g.Paths) != 2 {
		t.Fatalf("Reflect(path, keep) = %T", g)
	}
	b := g.Paths[1].Bounds()
	if !approx(b.X, -5, 1e-9) || !approx(b.Width, 4, 1e-9) {
		t.Errorf("mirror bounds = %+v, want x=-5 width 4", b)
	}

	if _, ok := Reflect(p, Pt(0, 0), 0, false).(*Path); !ok {
		t.Error("Reflect(path) should keep the path variant")
	}
	if Reflect(nil, Point{}, 0, true) != nil {
		t.Error("Reflect(nil) should be nil")
	}
}
