package vg

import "math"

// PointKind tells whether a point lies on the outline or steers a curve.
type PointKind uint8

const (
	// OnCurve points lie on the outline. This is the zero value.
	OnCurve PointKind = iota

	// OffCurve points are Bezier control points between two on-curve points.
	OffCurve
)

// String returns a string representation of the kind.
func (k PointKind) String() string {
	switch k {
	case OnCurve:
		return "on"
	case OffCurve:
		return "off"
	default:
		return "unknown"
	}
}

// Point represents a 2D point or vector.
// Arithmetic helpers return on-curve points.
type Point struct {
	X, Y float64
	Kind PointKind
}

// Pt is a convenience function to create an on-curve Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// MakePoint creates an on-curve point from two values.
func MakePoint(x, y float64) Point {
	return Pt(x, y)
}

// PointToValues splits a point into its coordinates.
func PointToValues(p Point) (x, y float64) {
	return p.X, p.Y
}

// control returns an off-curve point.
func control(x, y float64) Point {
	return Point{X: x, Y: y, Kind: OffCurve}
}

// IsOnCurve reports whether p lies on the outline.
func (p Point) IsOnCurve() bool {
	return p.Kind == OnCurve
}

// WithKind returns p with the given kind.
func (p Point) WithKind(k PointKind) Point {
	p.Kind = k
	return p
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Angle returns the direction from p to q in degrees.
func Angle(p, q Point) float64 {
	return degrees(math.Atan2(q.Y-p.Y, q.X-p.X))
}

// Coordinates returns the point at the given distance and angle (degrees)
// from p.
func Coordinates(p Point, distance, angle float64) Point {
	a := radians(angle)
	return Point{X: p.X + distance*math.Cos(a), Y: p.Y + distance*math.Sin(a)}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
