package renderer

import (
	"context"
	"fmt"
	"image"
	"sort"
	"sync"
	"time"

	"github.com/df07/go-distributed-raytracer/pkg/cluster"
	"github.com/df07/go-distributed-raytracer/pkg/integrator"
	"github.com/df07/go-distributed-raytracer/pkg/scene"
)

// RankTask is one rank of an in-process render
type RankTask struct {
	Renderer *RankRenderer
}

// RankTaskResult contains the result from rendering a rank
type RankTaskResult struct {
	Rank   int
	Result *RankResult
	Error  error
}

// WorkerPool runs rank tasks on goroutines. Every rank blocks in the
// reduction until all ranks arrive, so the pool must have one worker per
// submitted task.
type WorkerPool struct {
	taskQueue   chan RankTask
	resultQueue chan RankTaskResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker handles individual rank tasks
type Worker struct {
	ID          int
	taskQueue   chan RankTask
	resultQueue chan RankTaskResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan RankTask, numWorkers),
		resultQueue: make(chan RankTaskResult, numWorkers),
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}
	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop waits for the workers to drain the queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a rank task to the worker pool
func (wp *WorkerPool) SubmitTask(task RankTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed rank result
func (wp *WorkerPool) GetResult() (RankTaskResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		rank := task.Renderer.comm.Rank()
		result, err := task.Renderer.Render(ctx)
		w.resultQueue <- RankTaskResult{Rank: rank, Result: result, Error: err}
	}
}

// DistributedRenderer renders a frame with several ranks inside one process,
// reducing their buffers over an in-process cluster group
type DistributedRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	workers    int
	options    Options
}

// Result is a finished frame together with its statistics
type Result struct {
	Frame *RadianceBuffer
	Image *image.RGBA
	Stats FrameStats
}

// NewDistributedRenderer creates a renderer running workers ranks
func NewDistributedRenderer(sc *scene.Scene, integratorInst integrator.Integrator, workers int, opts Options) (*DistributedRenderer, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorldSize, workers)
	}
	return &DistributedRenderer{
		scene:      sc,
		integrator: integratorInst,
		workers:    workers,
		options:    opts,
	}, nil
}

// Render validates every rank, runs them concurrently and returns the
// coordinator's finalized frame. If any rank fails the whole render fails.
func (dr *DistributedRenderer) Render(ctx context.Context) (*Result, error) {
	group, err := cluster.NewLocalGroup(dr.workers)
	if err != nil {
		return nil, err
	}
	defer group.Close()

	renderers := make([]*RankRenderer, dr.workers)
	for rank, member := range group.Members() {
		renderers[rank], err = NewRankRenderer(dr.scene, dr.integrator, member, dr.options)
		if err != nil {
			return nil, err
		}
	}

	logger.Infof("rendering %q at %dx%d, %d samples per pixel across %d workers",
		dr.scene.Name, dr.scene.Width(), dr.scene.Height(), dr.scene.SamplingConfig.SamplesPerPixel, dr.workers)
	if dr.scene.SamplingConfig.SamplesPerPixel%dr.workers != 0 && dr.options.Remainder == RemainderDrop {
		logger.Warningf("%d samples per pixel do not split evenly across %d workers, dropping %d",
			dr.scene.SamplingConfig.SamplesPerPixel, dr.workers, dr.scene.SamplingConfig.SamplesPerPixel%dr.workers)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	pool := NewWorkerPool(dr.workers)
	pool.Start(ctx)
	for _, r := range renderers {
		pool.SubmitTask(RankTask{Renderer: r})
	}

	var coordinator *RankResult
	var firstErr error
	stats := FrameStats{}
	for received := 0; received < dr.workers; received++ {
		res, _ := pool.GetResult()
		if res.Error != nil {
			if firstErr == nil {
				firstErr = res.Error
				// Release the ranks still waiting in the reduction
				cancel()
				group.Close()
			}
			continue
		}

		stats.Workers = append(stats.Workers, res.Result.Worker)
		stats.RenderDuration = max(stats.RenderDuration, res.Result.Worker.Duration)
		if res.Rank == cluster.Coordinator {
			coordinator = res.Result
		}
	}
	pool.Stop()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(stats.Workers, func(i, j int) bool {
		return stats.Workers[i].Rank < stats.Workers[j].Rank
	})
	stats.Totals = coordinator.Totals
	stats.ReduceDuration = coordinator.ReduceDuration
	logger.Infof("frame finished in %v", time.Since(start))

	return &Result{
		Frame: coordinator.Frame,
		Image: coordinator.Image,
		Stats: stats,
	}, nil
}
