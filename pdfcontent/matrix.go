package pdfcontent

// Matrix is a PDF affine transform in row-vector form:
//
//	[a b 0]
//	[c d 0]
//	[e f 1]
//
// Grounded on original_source/minimal_pdf_parser/base.py's TextMatrix,
// including its multiplication order (self * other, applied to a
// point as point × self × other).
type Matrix struct{ A, B, C, D, E, F float64 }

// Identity returns the identity matrix.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Translation returns the matrix that translates by (tx, ty).
func Translation(tx, ty float64) Matrix { return Matrix{A: 1, D: 1, E: tx, F: ty} }

// Mul returns m × other (m applied first, then other).
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		E: m.E*other.A + m.F*other.C + other.E,
		F: m.E*other.B + m.F*other.D + other.F,
	}
}
