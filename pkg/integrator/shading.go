package integrator

import (
	"math"

	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/geometry"
	"github.com/df07/go-distributed-raytracer/pkg/lights"
	"github.com/df07/go-distributed-raytracer/pkg/scene"
)

// Shade computes the local Phong radiance at a hit: diffuse and specular
// from every unshadowed light plus ambient added once.
func Shade(sc *scene.Scene, ray core.Ray, hit geometry.IntersectionResult, counters *Counters) core.FColor {
	mat := hit.Shape.Material()
	normal := hit.Normal
	view := ray.Direction.Negate().Normalize()

	color := mat.Ambient.Multiply(sc.AmbientIntensity)

	for _, light := range sc.Lights {
		lighting := light.LightingAt(hit.Point)

		nDotL := normal.Dot(lighting.Direction)
		if nDotL <= 0 {
			// Light is behind the surface
			continue
		}

		if occluded(sc, hit.Point, lighting, counters) {
			continue
		}

		diffuse := lighting.Intensity.MultiplyColor(mat.Diffuse).Multiply(nDotL)
		color = color.Add(diffuse)

		if mat.Specular.IsBlack() {
			continue
		}
		reflected := normal.Multiply(2 * nDotL).Subtract(lighting.Direction)
		rDotV := reflected.Dot(view)
		if rDotV < 0 {
			continue
		}
		specular := lighting.Intensity.MultiplyColor(mat.Specular).Multiply(math.Pow(rDotV, mat.Shininess))
		color = color.Add(specular)
	}

	return color
}

// occluded casts a shadow ray from point toward the light and reports whether
// any shape lies in between
func occluded(sc *scene.Scene, point core.Vec3, lighting lights.Lighting, counters *Counters) bool {
	origin := point.Add(lighting.Direction.Multiply(sc.RayEpsilon))
	shadowRay := core.NewRay(origin, lighting.Direction)

	counters.ShadowRays++
	result, blocked := geometry.IntersectAll(sc.Shapes, shadowRay, sc.HitEpsilon, lighting.Distance, true)
	counters.IntersectionTests += int64(result.Tested)
	return blocked
}
