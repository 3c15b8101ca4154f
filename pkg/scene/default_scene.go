package scene

import (
	stdmath "math"

	"github.com/user/go-phong-raytracer/pkg/geometry"
	"github.com/user/go-phong-raytracer/pkg/lights"
	"github.com/user/go-phong-raytracer/pkg/material"
	"github.com/user/go-phong-raytracer/pkg/math"
)

// NewDefaultWorld creates the canonical two-sphere world: a greenish unit
// sphere containing a half-size default-material sphere, lit from the upper
// left. Most of the shading and shadow tests run against it.
func NewDefaultWorld() *World {
	light := lights.NewPointLight(math.NewPoint3(-10, 10, -10), math.White)

	outerMat := material.NewMaterial()
	outerMat.Color = math.NewColor(0.8, 1.0, 0.6)
	outerMat.Diffuse = 0.7
	outerMat.Specular = 0.2
	outer := geometry.NewSphere(math.Identity(), outerMat)

	inner := geometry.NewSphere(math.Scaling(math.NewVec3(0.5, 0.5, 0.5)), material.NewMaterial())

	return NewWorld([]geometry.Shape{outer, inner}, light)
}

// NewShowcaseScene creates a display scene: three patterned spheres resting
// on a checkered floor plane. It exercises every pattern variant and the
// full set of transform builders.
func NewShowcaseScene() (*World, math.Matrix4) {
	light := lights.NewPointLight(math.NewPoint3(-10, 10, -10), math.White)

	floorMat := material.NewMaterial()
	floorMat.Pattern = material.NewCheckerPattern(math.White, math.NewColor(0.2, 0.2, 0.2))
	floorMat.Specular = 0
	floor := geometry.NewPlane(math.Identity(), floorMat)

	middleMat := material.NewMaterial()
	middleMat.Pattern = material.NewStripePattern(
		math.NewColor(0.1, 1, 0.5),
		math.NewColor(0.9, 1, 0.9),
	).WithTransform(
		math.RotationZ(stdmath.Pi / 4).Multiply(math.Scaling(math.NewVec3(0.25, 0.25, 0.25))),
	)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middle := geometry.NewSphere(math.Translation(math.NewVec3(-0.5, 1, 0.5)), middleMat)

	rightMat := material.NewMaterial()
	rightMat.Pattern = material.NewGradientPattern(
		math.NewColor(0.5, 1, 0.1),
		math.NewColor(1, 0.2, 0.2),
	).WithTransform(
		math.Translation(math.NewVec3(1, 0, 0)).Multiply(math.Scaling(math.NewVec3(2, 2, 2))),
	)
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right := geometry.NewSphere(
		math.Translation(math.NewVec3(1.5, 0.5, -0.5)).
			Multiply(math.Scaling(math.NewVec3(0.5, 0.5, 0.5))),
		rightMat,
	)

	leftMat := material.NewMaterial()
	leftMat.Pattern = material.NewRingPattern(
		math.NewColor(1, 0.8, 0.1),
		math.NewColor(0.6, 0.3, 0),
	).WithTransform(
		math.RotationX(-stdmath.Pi / 3).Multiply(math.Scaling(math.NewVec3(0.15, 0.15, 0.15))),
	)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left := geometry.NewSphere(
		math.Translation(math.NewVec3(-1.5, 0.33, -0.75)).
			Multiply(math.RotationY(stdmath.Pi/6)).
			Multiply(math.Shearing(0.1, 0, 0, 0, 0, 0)).
			Multiply(math.Scaling(math.NewVec3(0.33, 0.33, 0.33))),
		leftMat,
	)

	world := NewWorld([]geometry.Shape{floor, middle, right, left}, light)

	cameraTransform := math.ViewTransform(
		math.NewPoint3(0, 1.5, -5),
		math.NewPoint3(0, 1, 0),
		math.UnitY,
	)

	return world, cameraTransform
}
