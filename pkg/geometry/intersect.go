package geometry

import (
	"math"

	"github.com/df07/go-distributed-raytracer/pkg/core"
)

// IntersectionResult is the outcome of a scan over every shape in a scene.
type IntersectionResult struct {
	Intersection
	Shape    Shape   // Shape that was hit, nil on a miss
	Distance float64 // Distance from ray origin to the hit point
	Tested   int     // Number of shape intersection tests performed
}

// IntersectAll scans shapes linearly and returns the nearest hit whose
// distance from the ray origin is below maxDistance. With stopAtFirst the
// scan returns the first qualifying hit instead of the nearest one, which is
// all a shadow ray needs. Pass math.Inf(1) for an unbounded query.
//
// Cost is O(len(shapes)) per ray.
func IntersectAll(shapes []Shape, ray core.Ray, tMin, maxDistance float64, stopAtFirst bool) (IntersectionResult, bool) {
	result := IntersectionResult{Distance: math.Inf(1)}
	closestSoFar := maxDistance

	for _, shape := range shapes {
		result.Tested++
		hit, isHit := shape.Intersect(ray, tMin)
		if !isHit {
			continue
		}

		distance := hit.Distance(ray)
		if distance >= closestSoFar {
			continue
		}

		closestSoFar = distance
		result.Intersection = hit
		result.Shape = shape
		result.Distance = distance

		if stopAtFirst {
			break
		}
	}

	return result, result.Shape != nil
}
