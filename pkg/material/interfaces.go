package material

import (
	"github.com/df07/go-distributed-raytracer/pkg/core"
)

// Material holds the Phong coefficients of a surface together with its
// optional specular transport (mirror reflection, refraction).
// Materials are plain values attached to shapes and are never mutated
// once a render has started.
type Material struct {
	Ambient   core.FColor // Ambient reflectance, each channel in [0,1]
	Diffuse   core.FColor // Diffuse reflectance, each channel in [0,1]
	Specular  core.FColor // Specular reflectance, each channel in [0,1]
	Shininess float64     // Phong exponent

	Reflective bool        // Spawn a mirror reflection ray
	Refractive bool        // Spawn Fresnel-weighted reflection and refraction rays
	Reflection core.FColor // Weight applied to reflected/refracted radiance

	RefractiveIndex float64 // Index of refraction of the medium inside the surface
}

// HasSecondaryRays reports whether hitting this material spawns recursive rays
func (m Material) HasSecondaryRays() bool {
	return m.Reflective || m.Refractive
}

// NewPhong creates a material with explicit Phong coefficients
func NewPhong(ambient, diffuse, specular core.FColor, shininess float64) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewMatte creates a purely diffuse material whose ambient response matches its albedo
func NewMatte(albedo core.FColor) Material {
	return NewPhong(albedo, albedo, core.FColor{}, 0)
}
