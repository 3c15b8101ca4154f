package math

import "fmt"

// Matrix4 is a row-major 4x4 homogeneous transform. The zero value is the
// zero matrix; use Identity for the multiplicative identity.
type Matrix4 [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for i := 0; i < 4; i++ {
				sum += m[row][i] * other[i][col]
			}
			out[row][col] = sum
		}
	}
	return out
}

// MultiplyPoint applies the transform to a point (homogeneous w=1), so the
// translation column contributes.
func (m Matrix4) MultiplyPoint(p Point3) Point3 {
	return Point3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// MultiplyVec applies the transform to a vector (homogeneous w=0), ignoring
// the translation column.
func (m Matrix4) MultiplyVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] = m[col][row]
		}
	}
	return out
}

// Determinant returns the determinant by cofactor expansion.
func (m Matrix4) Determinant() float64 {
	return m.square().determinant()
}

// Inverse returns the inverse transform, computed as the adjugate divided by
// the determinant. A singular matrix is a fatal scene-configuration error:
// every shape, pattern and camera transform must be invertible.
func (m Matrix4) Inverse() Matrix4 {
	sq := m.square()
	det := sq.determinant()
	if det == 0 {
		panic(fmt.Sprintf("math: matrix is not invertible: %v", m))
	}

	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// cofactor(col, row): transposition folded into the indexing
			out[row][col] = sq.cofactor(col, row) / det
		}
	}
	return out
}

// Equals reports componentwise equality within Epsilon.
func (m Matrix4) Equals(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !EqualApprox(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix4) square() squareMatrix {
	sq := newSquareMatrix(4)
	for row := 0; row < 4; row++ {
		copy(sq[row], m[row][:])
	}
	return sq
}

// squareMatrix is a dynamically sized NxN matrix used only to run the
// recursive cofactor expansion over progressively smaller submatrices. The
// rendering pipeline itself only ever sees Matrix4.
type squareMatrix [][]float64

func newSquareMatrix(n int) squareMatrix {
	rows := make(squareMatrix, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	return rows
}

// submatrix returns the matrix with the given row and column removed.
func (sq squareMatrix) submatrix(row, col int) squareMatrix {
	n := len(sq)
	out := newSquareMatrix(n - 1)
	for r := 0; r < n-1; r++ {
		srcRow := r
		if srcRow >= row {
			srcRow++
		}
		for c := 0; c < n-1; c++ {
			srcCol := c
			if srcCol >= col {
				srcCol++
			}
			out[r][c] = sq[srcRow][srcCol]
		}
	}
	return out
}

// minor returns the determinant of the submatrix at (row, col).
func (sq squareMatrix) minor(row, col int) float64 {
	return sq.submatrix(row, col).determinant()
}

// cofactor returns the signed minor at (row, col).
func (sq squareMatrix) cofactor(row, col int) float64 {
	minor := sq.minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// determinant expands along the first column, bottoming out at the direct
// 2x2 formula.
func (sq squareMatrix) determinant() float64 {
	if len(sq) == 2 {
		return sq[0][0]*sq[1][1] - sq[0][1]*sq[1][0]
	}

	det := 0.0
	for row := 0; row < len(sq); row++ {
		det += sq[row][0] * sq.cofactor(row, 0)
	}
	return det
}
