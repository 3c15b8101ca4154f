package scene

import (
	"sort"

	"github.com/user/go-phong-raytracer/pkg/geometry"
	"github.com/user/go-phong-raytracer/pkg/lights"
	"github.com/user/go-phong-raytracer/pkg/math"
)

// World is a static scene: an ordered collection of shapes lit by a single
// point light. Built once per render and read-only while rendering, which is
// what makes the per-pixel work safe to parallelize.
type World struct {
	Objects []geometry.Shape
	Light   lights.PointLight
}

// NewWorld creates a world from shapes and a light.
func NewWorld(objects []geometry.Shape, light lights.PointLight) *World {
	return &World{Objects: objects, Light: light}
}

// Intersect returns the ray's intersections with every shape in the world,
// sorted ascending by t.
func (w *World) Intersect(ray math.Ray) []geometry.Intersection {
	var intersections []geometry.Intersection
	for i := range w.Objects {
		intersections = append(intersections, w.Objects[i].Intersect(ray)...)
	}

	sort.Slice(intersections, func(i, j int) bool {
		return intersections[i].T < intersections[j].T
	})
	return intersections
}

// ShadeHit evaluates the Phong model for a prepared hit, testing the
// over-point for shadow so the surface cannot occlude itself.
func (w *World) ShadeHit(comps geometry.Computations) math.Color {
	return comps.Shape.Material.Lighting(
		w.Light,
		comps.Shape.Transform,
		comps.Point,
		comps.Eye,
		comps.Normal,
		w.IsShadowed(comps.OverPoint),
	)
}

// ColorAt returns the color seen along a ray, or black if it hits nothing.
func (w *World) ColorAt(ray math.Ray) math.Color {
	hit, ok := geometry.Hit(w.Intersect(ray))
	if !ok {
		return math.Black
	}
	return w.ShadeHit(geometry.PrepareComputations(hit, ray))
}

// IsShadowed reports whether something blocks the light from reaching the
// point: a shadow ray cast toward the light hits a surface closer than the
// light itself.
func (w *World) IsShadowed(point math.Point3) bool {
	toLight := w.Light.Position.Subtract(point)
	distance := toLight.Length()

	shadowRay := math.NewRay(point, toLight.Normalize())
	hit, ok := geometry.Hit(w.Intersect(shadowRay))
	return ok && hit.T <= distance
}
