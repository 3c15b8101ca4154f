package geometry

import (
	stdmath "math"

	"github.com/user/go-phong-raytracer/pkg/math"
)

// intersectPlane intersects a ray with the local xz-plane. Rays parallel to
// the plane miss, including rays lying in the plane: a coplanar ray would
// intersect at infinitely many points and reports none.
func (s *Shape) intersectPlane(ray math.Ray) []Intersection {
	if stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{{T: t, Shape: s}}
}
