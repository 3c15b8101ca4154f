package math

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray carried through the given transform, applying
// the point rule to the origin and the vector rule to the direction. The
// direction is deliberately not renormalized so that intersection t values
// remain meaningful in the transformed space.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MultiplyPoint(r.Origin),
		Direction: m.MultiplyVec(r.Direction),
	}
}
