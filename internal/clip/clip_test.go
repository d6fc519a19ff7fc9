package clip

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func square(x, y, size float64) Ring {
	return Ring{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
}

func TestMergeIdenticalRings(t *testing.T) {
	got := Merge([]Ring{square(0, 0, 10), square(0, 0, 10)})
	if a := Area(got); math.Abs(a-100) > 1e-6 {
		t.Errorf("Area(Merge(sq, sq)) = %f, want 100", a)
	}
}

func TestMergeSkipsDegenerateRings(t *testing.T) {
	got := Merge([]Ring{{{0, 0}, {1, 1}}, nil})
	if len(got) != 0 {
		t.Errorf("Merge(degenerate) = %v, want no rings", got)
	}
}

func TestApply(t *testing.T) {
	a := []Ring{square(0, 0, 10)}
	b := []Ring{square(5, 0, 10)}

	tests := []struct {
		name string
		op   Op
		want float64
	}{
		{"union", Union, 150},
		{"difference", Difference, 50},
		{"intersection", Intersection, 50},
		{"xor", XOr, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Area(Apply(a, b, tt.op))
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Area(Apply(%s)) = %f, want %f", tt.name, got, tt.want)
			}
		})
	}
}

func TestApplyDisjointIntersectionIsEmpty(t *testing.T) {
	got := Apply([]Ring{square(0, 0, 1)}, []Ring{square(5, 5, 1)}, Intersection)
	if len(got) != 0 {
		t.Errorf("Apply(disjoint, Intersection) = %v, want empty", got)
	}
}

func TestPolygonUnwrapsBooleanResults(t *testing.T) {
	a := toPolygon([]Ring{square(0, 0, 10)})
	b := toPolygon([]Ring{square(5, 5, 10)})

	tests := []struct {
		name string
		got  geom.Polygonal
		want float64
	}{
		{"union", a.Union(b), 175},
		{"difference", a.Difference(b), 75},
		{"intersection", a.Intersection(b), 25},
		{"xor", a.XOr(b), 150},
		{"multi", geom.MultiPolygon{a, toPolygon([]Ring{square(20, 0, 2)})}, 104},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := polygon(tt.got)
			if len(got) == 0 {
				t.Fatalf("polygon(%s) returned no rings", tt.name)
			}
			if area := got.Area(); math.Abs(area-tt.want) > 1e-6 {
				t.Errorf("polygon(%s).Area() = %f, want %f", tt.name, area, tt.want)
			}
		})
	}
}

func TestPolygonNil(t *testing.T) {
	if got := polygon(nil); got != nil {
		t.Errorf("polygon(nil) = %v, want nil", got)
	}
}
