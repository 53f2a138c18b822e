package geometry

import "github.com/df07/go-distributed-raytracer/pkg/core"

// Intersection contains information about a ray-object intersection.
// It is a value scoped to a single query.
type Intersection struct {
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit outward surface normal at the intersection
	T      float64   // Parameter t along the ray
}

// Distance returns the distance from the ray origin to the intersection point
func (h Intersection) Distance(ray core.Ray) float64 {
	return h.T * ray.Direction.Length()
}
