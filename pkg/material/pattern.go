package material

import (
	"fmt"
	stdmath "math"

	"github.com/user/go-phong-raytracer/pkg/math"
)

// PatternKind enumerates the closed set of procedural patterns.
type PatternKind int

const (
	// NoPattern marks a material that shades with its plain base color.
	// Sampling it is a contract violation.
	NoPattern PatternKind = iota
	StripeKind
	GradientKind
	RingKind
	CheckerKind
)

// Pattern is a procedural two-color texture sampled in pattern-local space.
// Its transform is independent of the owning shape's transform, so a pattern
// can be scaled or rotated across a surface without moving the surface.
type Pattern struct {
	Kind      PatternKind
	A, B      math.Color
	Transform math.Matrix4
}

// NewStripePattern alternates colors along x in unit-wide bands.
func NewStripePattern(a, b math.Color) Pattern {
	return Pattern{Kind: StripeKind, A: a, B: b, Transform: math.Identity()}
}

// NewGradientPattern blends linearly from a to b over one unit of x.
func NewGradientPattern(a, b math.Color) Pattern {
	return Pattern{Kind: GradientKind, A: a, B: b, Transform: math.Identity()}
}

// NewRingPattern alternates colors in concentric rings around the y axis.
func NewRingPattern(a, b math.Color) Pattern {
	return Pattern{Kind: RingKind, A: a, B: b, Transform: math.Identity()}
}

// NewCheckerPattern alternates colors in a 3D checkerboard of unit cubes.
func NewCheckerPattern(a, b math.Color) Pattern {
	return Pattern{Kind: CheckerKind, A: a, B: b, Transform: math.Identity()}
}

// WithTransform returns a copy of the pattern with the given pattern-space
// transform.
func (p Pattern) WithTransform(transform math.Matrix4) Pattern {
	p.Transform = transform
	return p
}

// ColorAt samples the pattern at a point in pattern-local space.
func (p Pattern) ColorAt(point math.Point3) math.Color {
	switch p.Kind {
	case StripeKind:
		if modTwo(stdmath.Floor(point.X)) == 0 {
			return p.A
		}
		return p.B
	case GradientKind:
		distance := p.B.Subtract(p.A)
		fraction := point.X - stdmath.Floor(point.X)
		return p.A.Add(distance.Scale(fraction))
	case RingKind:
		radius := stdmath.Sqrt(point.X*point.X + point.Z*point.Z)
		if modTwo(stdmath.Floor(radius)) == 0 {
			return p.A
		}
		return p.B
	case CheckerKind:
		sum := stdmath.Floor(point.X) + stdmath.Floor(point.Y) + stdmath.Floor(point.Z)
		if modTwo(sum) == 0 {
			return p.A
		}
		return p.B
	default:
		panic(fmt.Sprintf("material: sampled unset pattern (kind %d)", p.Kind))
	}
}

// ColorAtObject samples the pattern at a world-space point on a shape with
// the given object-to-world transform: world -> object -> pattern space.
func (p Pattern) ColorAtObject(objectTransform math.Matrix4, worldPoint math.Point3) math.Color {
	objectPoint := objectTransform.Inverse().MultiplyPoint(worldPoint)
	patternPoint := p.Transform.Inverse().MultiplyPoint(objectPoint)
	return p.ColorAt(patternPoint)
}

// modTwo folds an integral float onto {0, 1}. Negative inputs map the same
// way as positive ones so bands continue seamlessly across the origin.
func modTwo(n float64) int {
	m := int(n) % 2
	if m < 0 {
		m += 2
	}
	return m
}
