package vg

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translation creates a translation matrix.
func Translation(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scaling creates a scaling matrix.
func Scaling(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotation creates a rotation matrix (angle in radians).
func Rotation(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other). The result applies other
// first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point. The point kind is
// kept.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X:    m.A*p.X + m.B*p.Y + m.C,
		Y:    m.D*p.X + m.E*p.Y + m.F,
		Kind: p.Kind,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// TransformOp is one step of a transform order.
type TransformOp uint8

const (
	// OpTranslate moves by the translation vector.
	OpTranslate TransformOp = iota

	// OpRotate rotates by the rotation angle.
	OpRotate

	// OpScale scales by the scale factors.
	OpScale
)

// String returns the single-letter code of the operation.
func (op TransformOp) String() string {
	switch op {
	case OpTranslate:
		return "t"
	case OpRotate:
		return "r"
	case OpScale:
		return "s"
	default:
		return fmt.Sprintf("TransformOp(%d)", int(op))
	}
}

// Order is the sequence in which transform operations are composed.
type Order []TransformOp

// DefaultOrder translates, then scales, then rotates ("tsr").
var DefaultOrder = Order{OpTranslate, OpScale, OpRotate}

// ParseOrder parses a string of operation codes such as "tsr".
// 't' is translate, 'r' rotate and 's' scale.
func ParseOrder(s string) (Order, error) {
	order := make(Order, 0, len(s))
	for _, r := range s {
		switch r {
		case 't':
			order = append(order, OpTranslate)
		case 'r':
			order = append(order, OpRotate)
		case 's':
			order = append(order, OpScale)
		default:
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidOrder, r, s)
		}
	}
	return order, nil
}

// MustParseOrder is like ParseOrder but panics on error.
// It is intended for package-level order literals.
func MustParseOrder(s string) Order {
	o, err := ParseOrder(s)
	if err != nil {
		panic(err)
	}
	return o
}

// String returns the order as operation codes.
func (o Order) String() string {
	b := make([]byte, 0, len(o))
	for _, op := range o {
		b = append(b, op.String()...)
	}
	return string(b)
}

// Matrix composes the operations in order into one matrix. Each operation
// is right-multiplied onto the accumulated matrix, so the last operation in
// the order is the first one applied to a point. rotation is in degrees and
// scale holds plain factors.
func (o Order) Matrix(translation Point, rotation float64, scale Point) Matrix {
	m := Identity()
	for _, op := range o {
		switch op {
		case OpTranslate:
			m = m.Multiply(Translation(translation.X, translation.Y))
		case OpRotate:
			m = m.Multiply(Rotation(radians(rotation)))
		case OpScale:
			m = m.Multiply(Scaling(scale.X, scale.Y))
		}
	}
	return m
}
