package geometry

import (
	"fmt"

	"github.com/user/go-phong-raytracer/pkg/material"
	"github.com/user/go-phong-raytracer/pkg/math"
)

// ShapeKind enumerates the closed set of primitives. The set is small, fixed
// and sits in the per-pixel loop, so shapes dispatch by exhaustive switch
// rather than through an interface.
type ShapeKind int

const (
	// SphereKind is the unit sphere centered at the local origin.
	SphereKind ShapeKind = iota
	// PlaneKind is the local xz-plane through the origin.
	PlaneKind
)

// Shape is a geometric primitive in its canonical local space, placed in the
// world by its transform: the unit sphere centered at the origin, or the
// xz-plane through the origin with local normal +Y. Constructed once per
// scene and immutable while rendering.
type Shape struct {
	Kind      ShapeKind
	Transform math.Matrix4
	Material  material.Material
}

// NewSphere creates a unit sphere with the given placement and material.
func NewSphere(transform math.Matrix4, mat material.Material) Shape {
	return Shape{Kind: SphereKind, Transform: transform, Material: mat}
}

// NewPlane creates an xz-plane with the given placement and material.
func NewPlane(transform math.Matrix4, mat material.Material) Shape {
	return Shape{Kind: PlaneKind, Transform: transform, Material: mat}
}

// Intersect returns the intersections of a world-space ray with the shape,
// carrying the ray into object space first.
func (s *Shape) Intersect(ray math.Ray) []Intersection {
	localRay := ray.Transform(s.Transform.Inverse())
	return s.localIntersect(localRay)
}

// NormalAt returns the world-space surface normal at a world-space point on
// the shape. Normals transform by the inverse transpose so they stay
// perpendicular under non-uniform scaling.
func (s *Shape) NormalAt(worldPoint math.Point3) math.Vec3 {
	inverse := s.Transform.Inverse()
	objectPoint := inverse.MultiplyPoint(worldPoint)
	objectNormal := s.localNormalAt(objectPoint)
	worldNormal := inverse.Transpose().MultiplyVec(objectNormal)
	return worldNormal.Normalize()
}

func (s *Shape) localIntersect(ray math.Ray) []Intersection {
	switch s.Kind {
	case SphereKind:
		return s.intersectSphere(ray)
	case PlaneKind:
		return s.intersectPlane(ray)
	default:
		panic(fmt.Sprintf("geometry: unknown shape kind %d", s.Kind))
	}
}

func (s *Shape) localNormalAt(point math.Point3) math.Vec3 {
	switch s.Kind {
	case SphereKind:
		return point.Subtract(math.Origin)
	case PlaneKind:
		return math.UnitY
	default:
		panic(fmt.Sprintf("geometry: unknown shape kind %d", s.Kind))
	}
}
