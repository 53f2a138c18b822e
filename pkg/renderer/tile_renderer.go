package renderer

import (
	"image"

	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/integrator"
	"github.com/df07/go-distributed-raytracer/pkg/scene"
)

// TileRenderer traces a range of samples for every pixel of a rectangle.
// It is owned by a single worker and is not safe for concurrent use.
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	sampler    *core.StreamSampler
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(sc *scene.Scene, integratorInst integrator.Integrator, seed int64) *TileRenderer {
	return &TileRenderer{
		scene:      sc,
		integrator: integratorInst,
		sampler:    core.NewStreamSampler(seed),
	}
}

// RenderTileBounds adds samples [samples.Start, samples.End()) of every pixel
// within bounds to buffer
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, buffer *RadianceBuffer, samples SampleRange) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for sample := samples.Start; sample < samples.End(); sample++ {
				buffer.AddSample(x, y, tr.renderSample(x, y, sample, &stats.Counters))
			}
		}
	}

	stats.TotalSamples = stats.TotalPixels * samples.Count
	return stats
}

// renderSample traces one jittered camera ray through pixel (x, y). The jitter
// comes from a stream keyed by pixel and sample index, so a sample has the
// same value no matter which worker takes it.
func (tr *TileRenderer) renderSample(x, y, sample int, counters *integrator.Counters) core.FColor {
	width := tr.scene.Width()
	samplesPerPixel := tr.scene.SamplingConfig.SamplesPerPixel
	tr.sampler.Reset(uint64((y*width+x)*samplesPerPixel + sample))

	jx := float64(x) + tr.sampler.Get1D()
	jy := float64(y) + tr.sampler.Get1D()
	ray := tr.scene.Camera.GetRay(jx, jy)

	return tr.integrator.RayColor(ray, tr.scene, counters)
}
