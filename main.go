package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-distributed-raytracer/cmd"
)

// renderFlags are shared by every command that renders a frame
func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "scene, s",
			Value:  "sphere",
			Usage:  "built-in scene to render (see list-scenes)",
			EnvVar: "RAYTRACER_SCENE",
		},
		cli.IntFlag{
			Name:   "width",
			Usage:  "frame width, defaults to the scene's own",
			EnvVar: "RAYTRACER_WIDTH",
		},
		cli.IntFlag{
			Name:   "height",
			Usage:  "frame height, defaults to the scene's own",
			EnvVar: "RAYTRACER_HEIGHT",
		},
		cli.IntFlag{
			Name:   "spp",
			Usage:  "samples per pixel across all workers, defaults to the scene's own",
			EnvVar: "RAYTRACER_SPP",
		},
		cli.IntFlag{
			Name:   "max-depth",
			Usage:  "maximum recursion depth, defaults to the scene's own",
			EnvVar: "RAYTRACER_MAX_DEPTH",
		},
		cli.Int64Flag{
			Name:   "seed",
			Value:  1,
			Usage:  "seed of the sample jitter",
			EnvVar: "RAYTRACER_SEED",
		},
		cli.StringFlag{
			Name:   "termination",
			Value:  "nothing",
			Usage:  "contribution of rays past the depth limit: nothing or white",
			EnvVar: "RAYTRACER_TERMINATION",
		},
		cli.StringFlag{
			Name:   "remainder",
			Value:  "drop",
			Usage:  "samples left over when workers do not divide spp: drop or coordinator",
			EnvVar: "RAYTRACER_REMAINDER",
		},
		cli.Float64Flag{
			Name:   "epsilon",
			Usage:  "offset of secondary ray origins, defaults to the scene's own",
			EnvVar: "RAYTRACER_EPSILON",
		},
		cli.StringFlag{
			Name:   "background",
			Usage:  "background colour as a CSS name or #rrggbb",
			EnvVar: "RAYTRACER_BACKGROUND",
		},
		cli.StringFlag{
			Name:   "out, o",
			Usage:  "image filename, defaults to output/<scene>/render_<timestamp>.png",
			EnvVar: "RAYTRACER_OUT",
		},
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-distributed-raytracer"
	app.Usage = "render scenes with a Whitted ray tracer split across workers"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a frame with several workers in this process",
			Description: `
Every worker traces its share of the samples of each pixel into a private
buffer. The buffers are summed, divided by the samples per pixel and written
as a PNG.`,
			Flags: append(renderFlags(), cli.IntFlag{
				Name:   "workers, w",
				Value:  4,
				Usage:  "number of workers",
				EnvVar: "RAYTRACER_WORKERS",
			}),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "cluster",
			Usage: "render one rank of a multi-process frame",
			Description: `
Start one process per rank with the same scene flags. Rank 0 listens on --addr
and writes the image once every rank has sent its buffer; the other ranks dial
--addr and exit after the reduction.`,
			Flags: append(renderFlags(),
				cli.StringFlag{
					Name:   "addr",
					Value:  "127.0.0.1:7340",
					Usage:  "coordinator address",
					EnvVar: "RAYTRACER_ADDR",
				},
				cli.IntFlag{
					Name:   "rank",
					Usage:  "rank of this process",
					EnvVar: "RAYTRACER_RANK",
				},
				cli.IntFlag{
					Name:   "world-size",
					Value:  1,
					Usage:  "number of processes",
					EnvVar: "RAYTRACER_WORLD_SIZE",
				},
			),
			Action: cmd.RenderClusterRank,
		},
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
