package integrator

// Counters tracks the work done by a single worker. Each worker owns its
// counters exclusively; totals are produced by summing them after the
// reduction.
type Counters struct {
	PrimaryRays       int64
	ReflectionRays    int64
	RefractionRays    int64
	ShadowRays        int64
	IntersectionTests int64
}

// Add accumulates other into c
func (c *Counters) Add(other Counters) {
	c.PrimaryRays += other.PrimaryRays
	c.ReflectionRays += other.ReflectionRays
	c.RefractionRays += other.RefractionRays
	c.ShadowRays += other.ShadowRays
	c.IntersectionTests += other.IntersectionTests
}

// SecondaryRays returns the number of reflection and refraction rays
func (c Counters) SecondaryRays() int64 {
	return c.ReflectionRays + c.RefractionRays
}

// TotalRays returns every ray cast, shadow rays included
func (c Counters) TotalRays() int64 {
	return c.PrimaryRays + c.SecondaryRays() + c.ShadowRays
}
