package material

import (
	stdmath "math"

	"github.com/user/go-phong-raytracer/pkg/lights"
	"github.com/user/go-phong-raytracer/pkg/math"
)

// Material holds the Phong reflectance parameters for a shape. The base
// color comes from Pattern when one is set, otherwise from Color. Immutable
// during rendering.
type Material struct {
	Color     math.Color
	Pattern   Pattern
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// NewMaterial returns the default material: white, ambient 0.1, diffuse 0.9,
// specular 0.9, shininess 200.
func NewMaterial() Material {
	return Material{
		Color:     math.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Lighting evaluates the Phong model at a surface point. The shape's
// object-to-world transform is needed to sample the pattern in its local
// space. eye and normal must be unit vectors pointing away from the surface;
// a shadowed point receives the ambient term only.
func (m Material) Lighting(light lights.PointLight, objectTransform math.Matrix4, point math.Point3, eye, normal math.Vec3, inShadow bool) math.Color {
	baseColor := m.Color
	if m.Pattern.Kind != NoPattern {
		baseColor = m.Pattern.ColorAtObject(objectTransform, point)
	}

	effectiveColor := baseColor.Multiply(light.Intensity)
	ambient := effectiveColor.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDir := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		// Surface faces away from the light.
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	reflectDir := lightDir.Negate().Reflect(normal)
	reflectDotEye := reflectDir.Dot(eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := stdmath.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Scale(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
