package material

import (
	"math"

	"github.com/df07/go-distributed-raytracer/pkg/core"
)

// NewGlass creates a transparent material with the given index of refraction.
// Reflected and refracted radiance are both scaled by coefficient after the
// Fresnel split.
func NewGlass(refractiveIndex float64, coefficient core.FColor) Material {
	return Material{
		Refractive:      true,
		Reflection:      coefficient,
		RefractiveIndex: refractiveIndex,
	}
}

// Interface describes the boundary crossed by a ray: the normal oriented to
// the side the ray arrives from and the indices on each side.
type Interface struct {
	Normal   core.Vec3 // Unit normal on the incident side
	Incident float64   // Index of the medium the ray travels in
	Transmit float64   // Index of the medium on the far side
}

// Orient builds the Interface for a ray arriving with unit view vector
// (pointing away from the surface) at a surface with outward unit normal.
// When N·V is negative the ray is leaving the medium: the normal is negated
// and the index order is swapped.
func Orient(view, outwardNormal core.Vec3, outside, inside float64) Interface {
	if outwardNormal.Dot(view) < 0 {
		return Interface{Normal: outwardNormal.Negate(), Incident: inside, Transmit: outside}
	}
	return Interface{Normal: outwardNormal, Incident: outside, Transmit: inside}
}

// Refract applies Snell's law to the unit view vector. It returns the unit
// transmitted direction, the cosine of the transmission angle and false on
// total internal reflection.
func (i Interface) Refract(view core.Vec3) (core.Vec3, float64, bool) {
	eta := i.Incident / i.Transmit
	cosIncident := math.Min(i.Normal.Dot(view), 1.0)
	sinTransmitSq := eta * eta * (1 - cosIncident*cosIncident)
	if sinTransmitSq > 1 {
		return core.Vec3{}, 0, false
	}

	cosTransmit := math.Sqrt(1 - sinTransmitSq)
	direction := view.Multiply(-eta).Add(i.Normal.Multiply(eta*cosIncident - cosTransmit))
	return direction.Normalize(), cosTransmit, true
}

// Fresnel returns the reflectance and transmittance for light crossing the
// interface, averaging the s- and p-polarized amplitude coefficients.
func (i Interface) Fresnel(cosIncident, cosTransmit float64) (reflectance, transmittance float64) {
	n1, n2 := i.Incident, i.Transmit

	rs := (n1*cosIncident - n2*cosTransmit) / (n1*cosIncident + n2*cosTransmit)
	rp := (n2*cosIncident - n1*cosTransmit) / (n2*cosIncident + n1*cosTransmit)

	reflectance = (rs*rs + rp*rp) / 2
	if math.IsNaN(reflectance) {
		// Grazing incidence with both cosines zero
		reflectance = 1
	}
	reflectance = math.Min(1, reflectance)
	return reflectance, 1 - reflectance
}
