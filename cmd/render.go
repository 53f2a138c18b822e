package cmd

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"github.com/df07/go-distributed-raytracer/pkg/cluster"
	"github.com/df07/go-distributed-raytracer/pkg/integrator"
	"github.com/df07/go-distributed-raytracer/pkg/loaders"
	"github.com/df07/go-distributed-raytracer/pkg/renderer"
	"github.com/df07/go-distributed-raytracer/pkg/scene"
)

// renderSetup is everything a render needs, resolved from the command line
type renderSetup struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	options    renderer.Options
	out        string
}

// setupRender builds and validates the scene and policies from ctx
func setupRender(ctx *cli.Context) (*renderSetup, error) {
	sc, err := createScene(ctx.String("scene"))
	if err != nil {
		return nil, err
	}
	if err := overridesFromContext(ctx).apply(sc); err != nil {
		return nil, err
	}

	termination, err := integrator.ParseTerminationPolicy(ctx.String("termination"))
	if err != nil {
		return nil, err
	}
	remainder, err := renderer.ParseRemainderPolicy(ctx.String("remainder"))
	if err != nil {
		return nil, err
	}

	return &renderSetup{
		scene:      sc,
		integrator: integrator.NewWhittedIntegrator(sc.SamplingConfig, termination),
		options: renderer.Options{
			Seed:      ctx.Int64("seed"),
			Remainder: remainder,
		},
		out: outputFilename(sc.Name, ctx.String("out"), time.Now()),
	}, nil
}

// outputFilename returns out, or output/<scene>/render_<timestamp>.png when out is empty
func outputFilename(sceneName, out string, now time.Time) string {
	if out != "" {
		return out
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// RenderFrame renders a still frame with several workers in this process.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	setup, err := setupRender(ctx)
	if err != nil {
		return err
	}

	r, err := renderer.NewDistributedRenderer(setup.scene, setup.integrator, ctx.Int("workers"), setup.options)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := r.Render(runCtx)
	if err != nil {
		return err
	}

	displayFrameStats(result.Stats)
	return saveFrame(setup.out, result.Image)
}

// RenderClusterRank renders one rank of a multi-process render. Rank 0
// listens on addr, collects the other ranks' buffers and writes the image.
func RenderClusterRank(ctx *cli.Context) error {
	setupLogging(ctx)

	setup, err := setupRender(ctx)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	comm, err := connect(runCtx, ctx.String("addr"), ctx.Int("rank"), ctx.Int("world-size"))
	if err != nil {
		return err
	}
	defer comm.Close()

	rr, err := renderer.NewRankRenderer(setup.scene, setup.integrator, comm, setup.options)
	if err != nil {
		return err
	}
	logger.Noticef("rank %d/%d rendering %q samples %s", comm.Rank(), comm.Size(), setup.scene.Name, rr.Samples())

	result, err := rr.Render(runCtx)
	if err != nil {
		return err
	}

	if !cluster.IsCoordinator(comm) {
		logger.Noticef("rank %d finished in %v", comm.Rank(), result.Worker.Duration)
		return nil
	}

	displayFrameStats(renderer.FrameStats{
		Workers:        []renderer.WorkerStats{result.Worker},
		Totals:         result.Totals,
		RenderDuration: result.Worker.Duration,
		ReduceDuration: result.ReduceDuration,
	})
	return saveFrame(setup.out, result.Image)
}

// connect joins the cluster, listening when rank is the coordinator
func connect(ctx context.Context, addr string, rank, worldSize int) (cluster.Communicator, error) {
	if rank == cluster.Coordinator {
		coordinator, err := cluster.Listen(addr, worldSize)
		if err != nil {
			return nil, err
		}
		if err := coordinator.WaitForPeers(ctx); err != nil {
			coordinator.Close()
			return nil, err
		}
		return coordinator, nil
	}
	return cluster.Dial(ctx, addr, rank, worldSize)
}

// saveFrame writes the finished image
func saveFrame(filename string, img image.Image) error {
	start := time.Now()
	if err := loaders.SavePNG(filename, img); err != nil {
		return err
	}
	logger.Noticef("render saved as %s (encoded in %v)", filename, time.Since(start))
	return nil
}
