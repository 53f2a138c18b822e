package geometry

import (
	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Intersect is total: degenerate rays resolve to a miss, never a panic.
type Shape interface {
	// Intersect returns the nearest hit with parameter t > tMin
	Intersect(ray core.Ray, tMin float64) (Intersection, bool)
	Material() material.Material
}
