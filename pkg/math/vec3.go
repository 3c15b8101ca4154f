package math

import "math"

// Epsilon is the tolerance used for all approximate floating-point
// comparisons in the renderer: component equality, degenerate-ray checks
// and the shadow-ray surface offset.
const Epsilon = 1e-4

// EqualApprox reports whether a and b are within Epsilon of each other.
func EqualApprox(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Vec3 represents a 3D direction or displacement. Under an affine transform
// it behaves as a homogeneous tuple with w=0: translation does not affect it.
type Vec3 struct {
	X, Y, Z float64
}

// Unit axis vectors.
var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector scaled by 1/scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction. Normalizing a
// zero-length vector is undefined by contract and not defended against.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the vector reflected about the given surface normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Equals reports componentwise equality within Epsilon.
func (v Vec3) Equals(other Vec3) bool {
	return EqualApprox(v.X, other.X) && EqualApprox(v.Y, other.Y) && EqualApprox(v.Z, other.Z)
}

// Point3 represents a 3D position. Under an affine transform it behaves as a
// homogeneous tuple with w=1: translation applies.
type Point3 struct {
	X, Y, Z float64
}

// Origin is the point (0,0,0).
var Origin = Point3{0, 0, 0}

// NewPoint3 creates a new Point3
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the point displaced by a vector
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the displacement from other to p
func (p Point3) Subtract(other Point3) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubtractVec returns the point displaced by the negated vector
func (p Point3) SubtractVec(v Vec3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equals reports componentwise equality within Epsilon.
func (p Point3) Equals(other Point3) bool {
	return EqualApprox(p.X, other.X) && EqualApprox(p.Y, other.Y) && EqualApprox(p.Z, other.Z)
}
