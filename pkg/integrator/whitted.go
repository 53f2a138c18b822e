package integrator

import (
	"math"

	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/geometry"
	"github.com/df07/go-distributed-raytracer/pkg/material"
	"github.com/df07/go-distributed-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive Whitted-style ray tracing: local
// Phong shading at every hit plus mirror reflection and Fresnel-weighted
// refraction up to a fixed depth.
type WhittedIntegrator struct {
	config      scene.SamplingConfig
	termination TerminationPolicy
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config scene.SamplingConfig, termination TerminationPolicy) *WhittedIntegrator {
	return &WhittedIntegrator{
		config:      config,
		termination: termination,
	}
}

// RayColor traces a primary ray
func (wi *WhittedIntegrator) RayColor(ray core.Ray, sc *scene.Scene, counters *Counters) core.FColor {
	counters.PrimaryRays++
	color, _ := wi.trace(ray, sc, 1, counters)
	return color
}

// trace returns the radiance along ray at recursion depth. The boolean is
// false when the ray was terminated by the depth limit and contributes nothing.
func (wi *WhittedIntegrator) trace(ray core.Ray, sc *scene.Scene, depth int, counters *Counters) (core.FColor, bool) {
	if depth > wi.config.MaxDepth {
		if wi.termination == TerminateWhite {
			return core.Gray(1), true
		}
		return core.FColor{}, false
	}

	hit, isHit := geometry.IntersectAll(sc.Shapes, ray, sc.HitEpsilon, math.Inf(1), false)
	counters.IntersectionTests += int64(hit.Tested)
	if !isHit {
		return sc.Background, true
	}

	color := Shade(sc, ray, hit, counters)

	mat := hit.Shape.Material()
	if mat.Reflective {
		color = color.Add(wi.reflect(ray, sc, hit, mat, depth, counters))
	}
	if mat.Refractive {
		color = color.Add(wi.refract(ray, sc, hit, mat, depth, counters))
	}

	return color, true
}

// reflect follows the mirror direction and weights the result by the
// material's reflection coefficient
func (wi *WhittedIntegrator) reflect(ray core.Ray, sc *scene.Scene, hit geometry.IntersectionResult, mat material.Material, depth int, counters *Counters) core.FColor {
	view := ray.Direction.Negate().Normalize()
	direction := material.MirrorDirection(view, hit.Normal)

	counters.ReflectionRays++
	reflected, ok := wi.trace(wi.spawn(sc, hit.Point, direction), sc, depth+1, counters)
	if !ok {
		return core.FColor{}
	}
	return reflected.MultiplyColor(mat.Reflection)
}

// refract splits the incoming ray at a dielectric boundary into reflected and
// transmitted rays weighted by the Fresnel terms
func (wi *WhittedIntegrator) refract(ray core.Ray, sc *scene.Scene, hit geometry.IntersectionResult, mat material.Material, depth int, counters *Counters) core.FColor {
	view := ray.Direction.Negate().Normalize()
	boundary := material.Orient(view, hit.Normal, sc.VacuumIndex, mat.RefractiveIndex)
	cosIncident := boundary.Normal.Dot(view)

	reflectance, transmittance := 1.0, 0.0
	transmitDir, cosTransmit, canRefract := boundary.Refract(view)
	if canRefract {
		reflectance, transmittance = boundary.Fresnel(cosIncident, cosTransmit)
	}

	var color core.FColor

	reflectDir := material.MirrorDirection(view, boundary.Normal)
	counters.ReflectionRays++
	if reflected, ok := wi.trace(wi.spawn(sc, hit.Point, reflectDir), sc, depth+1, counters); ok {
		color = color.Add(reflected.MultiplyColor(mat.Reflection).Multiply(reflectance))
	}

	if canRefract && transmittance > 0 {
		counters.RefractionRays++
		if transmitted, ok := wi.trace(wi.spawn(sc, hit.Point, transmitDir), sc, depth+1, counters); ok {
			color = color.Add(transmitted.MultiplyColor(mat.Reflection).Multiply(transmittance))
		}
	}

	return color
}

// spawn creates a secondary ray offset from the surface along its direction
func (wi *WhittedIntegrator) spawn(sc *scene.Scene, point, direction core.Vec3) core.Ray {
	return core.NewRay(point.Add(direction.Multiply(sc.RayEpsilon)), direction)
}
