package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-distributed-raytracer/pkg/cluster"
	"github.com/df07/go-distributed-raytracer/pkg/integrator"
	"github.com/df07/go-distributed-raytracer/pkg/scene"
)

// statsFields is the number of values appended to every reduced buffer to
// carry the rank's RenderStats
const statsFields = 7

// RankResult is the outcome of one rank's render. Frame, Image and Totals
// are only set on the coordinator.
type RankResult struct {
	Rank           int
	Worker         WorkerStats
	Frame          *RadianceBuffer // Finalized frame in [0,1]
	Image          *image.RGBA
	Totals         RenderStats // Summed across every rank
	ReduceDuration time.Duration
}

// RankRenderer renders one rank of a group and takes part in the reduction
type RankRenderer struct {
	scene     *scene.Scene
	comm      cluster.Communicator
	raytracer *Raytracer
}

// NewRankRenderer validates the render for comm's rank before any tracing starts
func NewRankRenderer(sc *scene.Scene, integratorInst integrator.Integrator, comm cluster.Communicator, opts Options) (*RankRenderer, error) {
	raytracer, err := NewRaytracer(sc, integratorInst, comm.Rank(), comm.Size(), opts)
	if err != nil {
		return nil, err
	}
	return &RankRenderer{scene: sc, comm: comm, raytracer: raytracer}, nil
}

// Samples returns the per-pixel sample range of this rank
func (rr *RankRenderer) Samples() SampleRange {
	return rr.raytracer.Samples()
}

// Render traces this rank's samples, joins the collective sum and, on the
// coordinator, finalizes the frame. A failed reduction yields no frame.
func (rr *RankRenderer) Render(ctx context.Context) (*RankResult, error) {
	buffer, stats := rr.raytracer.RenderPartial()
	result := &RankResult{Rank: rr.comm.Rank(), Worker: stats}

	payload := append(buffer.Floats(), encodeStats(stats.Render)...)

	start := time.Now()
	sum, err := rr.comm.ReduceSum(ctx, payload)
	result.ReduceDuration = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("renderer: reduction on rank %d: %w", rr.comm.Rank(), err)
	}

	if !cluster.IsCoordinator(rr.comm) {
		logger.Debugf("rank %d: contributed %d values in %v", result.Rank, len(payload), result.ReduceDuration)
		return result, nil
	}
	logger.Infof("reduced %d ranks in %v", rr.comm.Size(), result.ReduceDuration)

	pixels := len(sum) - statsFields
	totals := decodeStats(sum[pixels:])
	summed, err := NewRadianceBufferFromFloats(rr.scene.Width(), rr.scene.Height(), sum[:pixels])
	if err != nil {
		return nil, err
	}

	frame, err := Finalize(summed, rr.scene.SamplingConfig.SamplesPerPixel)
	if err != nil {
		return nil, err
	}

	result.Frame = frame
	result.Image = ToImage(frame)
	result.Totals = totals
	return result, nil
}

func encodeStats(s RenderStats) []float64 {
	c := s.Counters
	return []float64{
		float64(s.TotalPixels),
		float64(s.TotalSamples),
		float64(c.PrimaryRays),
		float64(c.ReflectionRays),
		float64(c.RefractionRays),
		float64(c.ShadowRays),
		float64(c.IntersectionTests),
	}
}

func decodeStats(v []float64) RenderStats {
	return RenderStats{
		TotalPixels:  int(v[0]),
		TotalSamples: int(v[1]),
		Counters: integrator.Counters{
			PrimaryRays:       int64(v[2]),
			ReflectionRays:    int64(v[3]),
			RefractionRays:    int64(v[4]),
			ShadowRays:        int64(v[5]),
			IntersectionTests: int64(v[6]),
		},
	}
}
