package geometry

import (
	"testing"

	"github.com/user/go-phong-raytracer/pkg/material"
	"github.com/user/go-phong-raytracer/pkg/math"
)

func TestPlane_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    math.Point3
		direction math.Vec3
		expected  []float64
	}{
		{
			name:      "parallel ray misses",
			origin:    math.NewPoint3(0, 10, 0),
			direction: math.UnitZ,
			expected:  nil,
		},
		{
			name:      "coplanar ray reports no hit",
			origin:    math.Origin,
			direction: math.UnitZ,
			expected:  nil,
		},
		{
			name:      "from above",
			origin:    math.NewPoint3(0, 1, 0),
			direction: math.NewVec3(0, -1, 0),
			expected:  []float64{1},
		},
		{
			name:      "from below",
			origin:    math.NewPoint3(0, -1, 0),
			direction: math.UnitY,
			expected:  []float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane := NewPlane(math.Identity(), material.NewMaterial())
			xs := plane.Intersect(math.NewRay(tt.origin, tt.direction))

			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, want := range tt.expected {
				if !math.EqualApprox(xs[i].T, want) {
					t.Errorf("Intersection %d: expected t=%f, got t=%f", i, want, xs[i].T)
				}
				if xs[i].Shape != &plane {
					t.Errorf("Intersection %d does not reference the plane", i)
				}
			}
		})
	}
}

func TestPlane_NormalIsConstant(t *testing.T) {
	plane := NewPlane(math.Identity(), material.NewMaterial())

	for _, p := range []math.Point3{
		math.Origin,
		math.NewPoint3(10, 0, -10),
		math.NewPoint3(-5, 0, 150),
	} {
		if got := plane.NormalAt(p); !got.Equals(math.UnitY) {
			t.Errorf("NormalAt(%v): expected +Y, got %v", p, got)
		}
	}
}
