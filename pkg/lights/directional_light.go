package lights

import (
	"math"

	"github.com/df07/go-distributed-raytracer/pkg/core"
)

// DirectionalLight illuminates the whole scene from infinitely far away
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels in
	Intensity core.FColor
}

// NewDirectionalLight creates a light travelling along direction
func NewDirectionalLight(direction core.Vec3, intensity core.FColor) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Intensity: intensity}
}

// Type returns the light type
func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// LightingAt returns the same lighting for every point
func (dl *DirectionalLight) LightingAt(point core.Vec3) Lighting {
	return Lighting{
		Direction: dl.Direction.Negate(),
		Intensity: dl.Intensity,
		Distance:  math.Inf(1),
	}
}
