package geometry

import (
	"math"

	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: mat,
	}
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.material
}

// Intersect tests if a ray intersects with the sphere. Of the two roots the
// smaller one greater than tMin is used; tangent rays count as misses.
func (s *Sphere) Intersect(ray core.Ray, tMin float64) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return Intersection{}, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if root <= tMin {
		root = (-halfB + sqrtD) / a
		if root <= tMin {
			return Intersection{}, false
		}
	}

	point := ray.At(root)
	return Intersection{
		T:      root,
		Point:  point,
		Normal: point.Subtract(s.Center).Multiply(1.0 / s.Radius),
	}, true
}
