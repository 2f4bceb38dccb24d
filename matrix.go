package splitrender

import "math"

// Point represents a 2D point or vector in whichever coordinate space the
// surrounding transform puts it in — component space inside a component
// renderer, device space after a backend applies its pixel scale.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

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

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
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

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
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

// PreTranslate composes a translation by (x, y) before m: the result maps a
// point p to m(translate(p)). Matches the renderer's "new = current ∘
// delta" composition rule, where m is "current" and the translation is
// "delta".
func (m Matrix) PreTranslate(x, y float64) Matrix {
	return m.Multiply(Translate(x, y))
}

// PreScale composes a uniform scale by s before m.
func (m Matrix) PreScale(s float64) Matrix {
	return m.Multiply(Scale(s, s))
}

// PreScaleXY composes a non-uniform scale before m.
func (m Matrix) PreScaleXY(sx, sy float64) Matrix {
	return m.Multiply(Scale(sx, sy))
}

// PreScaleNonUniformX composes a scale of only the x axis by f before m,
// used to undo/apply an aspect-ratio correction without affecting height.
func (m Matrix) PreScaleNonUniformX(f float64) Matrix {
	return m.Multiply(Scale(f, 1))
}
