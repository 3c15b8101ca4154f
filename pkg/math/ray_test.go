package math

import "testing"

func TestRay_Position(t *testing.T) {
	ray := NewRay(NewPoint3(2, 3, 4), UnitX)

	tests := []struct {
		t        float64
		expected Point3
	}{
		{0, NewPoint3(2, 3, 4)},
		{1, NewPoint3(3, 3, 4)},
		{-1, NewPoint3(1, 3, 4)},
		{2.5, NewPoint3(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := ray.Position(tt.t); !got.Equals(tt.expected) {
			t.Errorf("Position(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	ray := NewRay(NewPoint3(1, 2, 3), UnitY)

	translated := ray.Transform(Translation(NewVec3(3, 4, 5)))
	if !translated.Origin.Equals(NewPoint3(4, 6, 8)) {
		t.Errorf("Translated origin: expected (4,6,8), got %v", translated.Origin)
	}
	if !translated.Direction.Equals(UnitY) {
		t.Errorf("Translated direction: expected (0,1,0), got %v", translated.Direction)
	}

	scaled := ray.Transform(Scaling(NewVec3(2, 3, 4)))
	if !scaled.Origin.Equals(NewPoint3(2, 6, 12)) {
		t.Errorf("Scaled origin: expected (2,6,12), got %v", scaled.Origin)
	}
	// Direction is not renormalized, so t keeps its meaning.
	if !scaled.Direction.Equals(NewVec3(0, 3, 0)) {
		t.Errorf("Scaled direction: expected (0,3,0), got %v", scaled.Direction)
	}
}
