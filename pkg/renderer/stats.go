package renderer

import (
	"time"

	"github.com/df07/go-distributed-raytracer/pkg/integrator"
)

// RenderStats contains statistics about rendering a set of pixels
type RenderStats struct {
	TotalPixels  int // Number of pixels visited
	TotalSamples int // Number of camera samples traced
	Counters     integrator.Counters
}

// Add accumulates other into s
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Counters.Add(other.Counters)
}

// WorkerStats describes the pass of a single rank
type WorkerStats struct {
	Rank     int
	Samples  SampleRange // Per-pixel samples taken by this rank
	Render   RenderStats
	Duration time.Duration // Time spent tracing, excluding the reduction
}

// FrameStats summarises a complete distributed render
type FrameStats struct {
	Workers        []WorkerStats // Per-rank statistics, only known for in-process workers
	Totals         RenderStats   // Totals across every rank
	RenderDuration time.Duration // Wall time until the slowest worker finished tracing
	ReduceDuration time.Duration // Time spent in the collective reduction
}
