package math

import "testing"

func TestMatrix4_Multiply(t *testing.T) {
	a := Matrix4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}
	b := Matrix4{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}
	expected := Matrix4{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	if got := a.Multiply(b); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMatrix4_MultiplyIdentity(t *testing.T) {
	m := Matrix4{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}

	if got := m.Multiply(Identity()); !got.Equals(m) {
		t.Errorf("Multiplying by identity changed the matrix: %v", got)
	}
}

func TestMatrix4_MultiplyPointAndVec(t *testing.T) {
	m := Matrix4{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}

	if got := m.MultiplyPoint(NewPoint3(1, 2, 3)); !got.Equals(NewPoint3(18, 24, 33)) {
		t.Errorf("Point: expected (18,24,33), got %v", got)
	}

	// The vector rule ignores the translation column.
	if got := m.MultiplyVec(NewVec3(1, 2, 3)); !got.Equals(NewVec3(14, 22, 32)) {
		t.Errorf("Vector: expected (14,22,32), got %v", got)
	}
}

func TestMatrix4_Transpose(t *testing.T) {
	m := Matrix4{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}
	expected := Matrix4{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 8, 5},
		{0, 8, 3, 8},
	}

	if got := m.Transpose(); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Errorf("Transposed identity is not identity: %v", got)
	}
}

func TestMatrix4_Determinant(t *testing.T) {
	m := Matrix4{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}

	if got := m.Determinant(); !EqualApprox(got, -4071) {
		t.Errorf("Expected -4071, got %f", got)
	}
}

func TestMatrix4_Inverse(t *testing.T) {
	tests := []struct {
		name     string
		matrix   Matrix4
		expected Matrix4
	}{
		{
			name: "general invertible matrix",
			matrix: Matrix4{
				{-5, 2, 6, -8},
				{1, -5, 1, 8},
				{7, 7, -6, -7},
				{1, -3, 7, 4},
			},
			expected: Matrix4{
				{0.21805, 0.45113, 0.24060, -0.04511},
				{-0.80827, -1.45677, -0.44361, 0.52068},
				{-0.07895, -0.22368, -0.05263, 0.19737},
				{-0.52256, -0.81391, -0.30075, 0.30639},
			},
		},
		{
			name: "matrix with zero entries",
			matrix: Matrix4{
				{8, -5, 9, 2},
				{7, 5, 6, 1},
				{-6, 0, 9, 6},
				{-3, 0, -9, -4},
			},
			expected: Matrix4{
				{-0.15385, -0.15385, -0.28205, -0.53846},
				{-0.07692, 0.12308, 0.02564, 0.03077},
				{0.35897, 0.35897, 0.43590, 0.92308},
				{-0.69231, -0.69231, -0.76923, -1.92308},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.matrix.Inverse()
			if !inv.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, inv)
			}
			if got := tt.matrix.Multiply(inv); !got.Equals(Identity()) {
				t.Errorf("M * inverse(M) is not identity: %v", got)
			}
			if got := inv.Inverse(); !got.Equals(tt.matrix) {
				t.Errorf("Double inverse is not the original: %v", got)
			}
		})
	}
}

func TestMatrix4_InverseRoundTripsTransforms(t *testing.T) {
	transforms := []struct {
		name   string
		matrix Matrix4
	}{
		{"translation", Translation(NewVec3(5, -3, 2))},
		{"scaling", Scaling(NewVec3(2, 3, 4))},
		{"rotation", RotationY(1.2)},
		{"shearing", Shearing(1, 0, 0, 1, 0, 0)},
		{"composite", Translation(NewVec3(1, 2, 3)).Multiply(RotationX(0.5)).Multiply(Scaling(NewVec3(2, 2, 2)))},
	}

	for _, tt := range transforms {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.matrix.Multiply(tt.matrix.Inverse()); !got.Equals(Identity()) {
				t.Errorf("M * inverse(M) is not identity: %v", got)
			}
		})
	}
}

func TestMatrix4_InverseSingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic inverting a singular matrix")
		}
	}()

	singular := Matrix4{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}
	singular.Inverse()
}
