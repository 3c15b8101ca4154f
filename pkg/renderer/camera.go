package renderer

import (
	stdmath "math"

	"github.com/user/go-phong-raytracer/pkg/math"
)

// Camera maps pixel coordinates on a virtual image plane one unit in front
// of the eye to world-space rays. Resolution and field of view are fixed at
// construction; the view transform may be replaced between renders.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform    math.Matrix4
	transformInv math.Matrix4

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the given pixel dimensions and vertical
// field of view in radians, looking down -z from the origin.
func NewCamera(hSize, vSize int, fieldOfView float64) *Camera {
	halfView := stdmath.Tan(fieldOfView / 2)
	aspect := float64(hSize) / float64(vSize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:        hSize,
		VSize:        vSize,
		FieldOfView:  fieldOfView,
		transform:    math.Identity(),
		transformInv: math.Identity(),
		halfWidth:    halfWidth,
		halfHeight:   halfHeight,
		pixelSize:    halfWidth * 2 / float64(hSize),
	}
}

// Transform returns the current view transform.
func (c *Camera) Transform() math.Matrix4 {
	return c.transform
}

// SetTransform replaces the view transform, caching its inverse for ray
// generation. Panics if the transform is singular.
func (c *Camera) SetTransform(transform math.Matrix4) {
	c.transform = transform
	c.transformInv = transform.Inverse()
}

// PixelSize returns the world-space size of one square pixel on the image
// plane.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of pixel (x, y).
func (c *Camera) RayForPixel(x, y int) math.Ray {
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// The image plane sits at z=-1 in camera space, x increasing left to
	// right on the canvas means decreasing world x.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transformInv.MultiplyPoint(math.NewPoint3(worldX, worldY, -1))
	origin := c.transformInv.MultiplyPoint(math.Origin)
	direction := pixel.Subtract(origin).Normalize()

	return math.NewRay(origin, direction)
}
