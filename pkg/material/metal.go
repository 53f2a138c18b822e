package material

import (
	"github.com/df07/go-distributed-raytracer/pkg/core"
)

// NewMirror creates a perfect mirror. It has no local Phong response; all of
// its radiance comes from the reflected ray weighted by coefficient.
func NewMirror(coefficient core.FColor) Material {
	return Material{
		Reflective: true,
		Reflection: coefficient,
	}
}

// MirrorDirection returns the reflection of view about normal: 2(N·V)N - V.
// Both vectors point away from the surface; view need not be unit length but
// normal must be.
func MirrorDirection(view, normal core.Vec3) core.Vec3 {
	return normal.Multiply(2 * normal.Dot(view)).Subtract(view)
}
