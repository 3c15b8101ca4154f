package lights

import "github.com/user/go-phong-raytracer/pkg/math"

// PointLight is a dimensionless light source at a position in world space.
// A world holds exactly one.
type PointLight struct {
	Position  math.Point3
	Intensity math.Color
}

// NewPointLight creates a new point light
func NewPointLight(position math.Point3, intensity math.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
