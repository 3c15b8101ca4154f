package math

import "math"

// Transform builders. Transforms compose by matrix multiplication with the
// rightmost factor applied first to an object-space point:
//
//	Translation(v).Multiply(RotationY(a)) // rotate, then translate

// Translation returns a transform that moves points by v.
func Translation(v Vec3) Matrix4 {
	return Matrix4{
		{1, 0, 0, v.X},
		{0, 1, 0, v.Y},
		{0, 0, 1, v.Z},
		{0, 0, 0, 1},
	}
}

// Scaling returns a transform that scales each axis by the matching
// component of v.
func Scaling(v Vec3) Matrix4 {
	return Matrix4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation about the x axis by angle radians.
func RotationX(angle float64) Matrix4 {
	sin, cos := math.Sincos(angle)
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation about the y axis by angle radians.
func RotationY(angle float64) Matrix4 {
	sin, cos := math.Sincos(angle)
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation about the z axis by angle radians.
func RotationZ(angle float64) Matrix4 {
	sin, cos := math.Sincos(angle)
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns a shear transform where each parameter names the
// coordinate moved in proportion to another, e.g. xy shears x by y.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Matrix4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform returns the world-to-camera matrix for an eye at from,
// looking at to, with the given up hint. Built from the camera's
// left/true-up/forward basis composed with a translation to the eye.
func ViewTransform(from, to Point3, up Vec3) Matrix4 {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	return orientation.Multiply(Translation(NewVec3(-from.X, -from.Y, -from.Z)))
}
