package geometry

import (
	stdmath "math"

	"github.com/user/go-phong-raytracer/pkg/math"
)

// intersectSphere solves the quadratic from substituting the ray equation
// into the unit-sphere equation |P|^2 = 1. A tangent ray yields two equal
// roots; both are reported.
func (s *Shape) intersectSphere(ray math.Ray) []Intersection {
	sphereToRay := ray.Origin.Subtract(math.Origin)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	return []Intersection{
		{T: (-b - sqrtD) / (2 * a), Shape: s},
		{T: (-b + sqrtD) / (2 * a), Shape: s},
	}
}
