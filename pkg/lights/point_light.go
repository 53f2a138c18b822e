package lights

import "github.com/df07/go-distributed-raytracer/pkg/core"

// PointLight emits equally in every direction from a single position.
// Intensity does not fall off with distance.
type PointLight struct {
	Position  core.Vec3
	Intensity core.FColor
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity core.FColor) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Type returns the light type
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// LightingAt returns the direction and distance from point to the light
func (pl *PointLight) LightingAt(point core.Vec3) Lighting {
	toLight := pl.Position.Subtract(point)
	return Lighting{
		Direction: toLight.Normalize(),
		Intensity: pl.Intensity,
		Distance:  toLight.Length(),
	}
}
