package geometry

import (
	"math"

	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/material"
)

// parallelTolerance below which a ray is treated as parallel to a plane
const parallelTolerance = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	material material.Material
}

// NewPlane creates a new plane
func NewPlane(normal, point core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		material: mat,
	}
}

// Material returns the plane's material
func (p *Plane) Material() material.Material {
	return p.material
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray, tMin float64) (Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays (including zero-length directions) never hit
	if math.Abs(denominator) < parallelTolerance {
		return Intersection{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin {
		return Intersection{}, false
	}

	return Intersection{
		T:      t,
		Point:  ray.At(t),
		Normal: p.Normal,
	}, true
}
