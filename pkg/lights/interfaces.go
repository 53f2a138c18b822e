package lights

import "github.com/df07/go-distributed-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is a source of direct illumination for Phong shading
type Light interface {
	Type() LightType

	// LightingAt returns the illumination arriving at point
	LightingAt(point core.Vec3) Lighting
}

// Lighting describes how a light illuminates a single point
type Lighting struct {
	Direction core.Vec3   // Unit direction from the point toward the light
	Intensity core.FColor // Radiance arriving from the light
	Distance  float64     // Distance to the light, +Inf for directional lights
}
