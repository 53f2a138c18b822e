package renderer

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-distributed-raytracer/pkg/integrator"
	"github.com/df07/go-distributed-raytracer/pkg/log"
	"github.com/df07/go-distributed-raytracer/pkg/scene"
)

var logger = log.New("renderer")

var ErrSceneNotReady = errors.New("renderer: scene has not been preprocessed")

// tileSize is the edge length of the square tiles a worker walks through
const tileSize = 64

// Options configures how a render is split between workers
type Options struct {
	Seed      int64           // Base seed of every sample stream
	Remainder RemainderPolicy // Who takes the S mod W leftover samples
}

// Raytracer renders one rank's share of the samples of every pixel
type Raytracer struct {
	scene        *scene.Scene
	rank         int
	worldSize    int
	samples      SampleRange
	tileRenderer *TileRenderer
}

// NewRaytracer validates the scene and the rank, and works out the rank's samples
func NewRaytracer(sc *scene.Scene, integratorInst integrator.Integrator, rank, worldSize int, opts Options) (*Raytracer, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if sc.Camera == nil {
		return nil, ErrSceneNotReady
	}

	samples, err := PartitionSamples(sc.SamplingConfig.SamplesPerPixel, worldSize, rank, opts.Remainder)
	if err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:        sc,
		rank:         rank,
		worldSize:    worldSize,
		samples:      samples,
		tileRenderer: NewTileRenderer(sc, integratorInst, opts.Seed),
	}, nil
}

// Samples returns the per-pixel sample range of this rank
func (rt *Raytracer) Samples() SampleRange {
	return rt.samples
}

// RenderPartial traces the rank's samples for every pixel into a fresh
// buffer holding unnormalized radiance sums
func (rt *Raytracer) RenderPartial() (*RadianceBuffer, WorkerStats) {
	width, height := rt.scene.Width(), rt.scene.Height()
	buffer := NewRadianceBuffer(width, height)
	stats := WorkerStats{Rank: rt.rank, Samples: rt.samples}

	if rt.samples.Count == 0 {
		logger.Warningf("%v: no samples to trace", rt)
		return buffer, stats
	}

	logger.Debugf("%v: tracing %dx%d pixels", rt, width, height)
	start := time.Now()

	for _, tile := range tiles(width, height) {
		stats.Render.Add(rt.tileRenderer.RenderTileBounds(tile, buffer, rt.samples))
	}

	stats.Duration = time.Since(start)
	logger.Debugf("%v: traced %d samples in %v", rt, stats.Render.TotalSamples, stats.Duration)
	return buffer, stats
}

// tiles splits the frame into tileSize squares in row-major order
func tiles(width, height int) []image.Rectangle {
	var result []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			result = append(result, image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)))
		}
	}
	return result
}

// String describes the raytracer for log lines
func (rt *Raytracer) String() string {
	return fmt.Sprintf("rank %d/%d samples %s", rt.rank, rt.worldSize, rt.samples)
}
