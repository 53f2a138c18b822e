package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/scene"
)

var ErrUnknownPolicy = errors.New("integrator: unknown termination policy")

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along a primary ray.
	// Ray and intersection counts are added to counters.
	RayColor(ray core.Ray, scene *scene.Scene, counters *Counters) core.FColor
}

// TerminationPolicy decides what a ray contributes once the recursion
// depth limit has been exceeded
type TerminationPolicy int

const (
	// TerminateContributeNothing drops terminated rays entirely
	TerminateContributeNothing TerminationPolicy = iota

	// TerminateWhite treats a terminated ray as carrying white radiance
	TerminateWhite
)

// String returns the flag value for the policy
func (p TerminationPolicy) String() string {
	switch p {
	case TerminateContributeNothing:
		return "nothing"
	case TerminateWhite:
		return "white"
	default:
		return fmt.Sprintf("TerminationPolicy(%d)", int(p))
	}
}

// ParseTerminationPolicy converts a flag value into a TerminationPolicy
func ParseTerminationPolicy(value string) (TerminationPolicy, error) {
	switch value {
	case "", "nothing":
		return TerminateContributeNothing, nil
	case "white":
		return TerminateWhite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
	}
}
