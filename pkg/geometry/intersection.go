package geometry

import "github.com/user/go-phong-raytracer/pkg/math"

// Intersection records where along a ray a shape was struck.
type Intersection struct {
	T     float64
	Shape *Shape
}

// Hit returns the visible intersection: the one with the lowest positive t.
// Intersections at t <= 0 lie behind the ray origin and are ignored. When
// several intersections share the minimal t (a tangent ray's equal roots),
// the first one in list order wins; callers must not rely on which.
func Hit(intersections []Intersection) (Intersection, bool) {
	var hit Intersection
	found := false
	for _, i := range intersections {
		if i.T <= 0 {
			continue
		}
		if !found || i.T < hit.T {
			hit = i
			found = true
		}
	}
	return hit, found
}

// Computations is the per-hit shading record derived from an intersection:
// everything Lighting and the shadow test need, computed once.
type Computations struct {
	T      float64
	Shape  *Shape
	Point  math.Point3
	Eye    math.Vec3
	Normal math.Vec3
	Inside bool
	// OverPoint is the hit point nudged along the normal so shadow rays
	// cast from the surface do not re-intersect it (shadow acne).
	OverPoint math.Point3
}

// PrepareComputations derives the shading record for a hit. When the ray
// originates inside the shape the normal is flipped so shading always uses a
// normal facing the eye.
func PrepareComputations(hit Intersection, ray math.Ray) Computations {
	point := ray.Position(hit.T)
	eye := ray.Direction.Negate()
	normal := hit.Shape.NormalAt(point)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	return Computations{
		T:         hit.T,
		Shape:     hit.Shape,
		Point:     point,
		Eye:       eye,
		Normal:    normal,
		Inside:    inside,
		OverPoint: point.Add(normal.Multiply(math.Epsilon)),
	}
}
