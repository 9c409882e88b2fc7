package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/urfave/cli"
	"github.com/xlab/closer"

	"sphereflake/internal/config"
	"sphereflake/internal/stencil"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	width, height := config.GetWindowSize()

	app := cli.NewApp()
	app.Name = "sphereflake"
	app.Usage = "explore an infinite sphere flake fractal"
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
		cli.IntFlag{
			Name:  "width",
			Value: width,
			Usage: "surface width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: height,
			Usage: "surface height",
		},
		cli.IntFlag{
			Name:  "cache",
			Value: config.DefaultCacheBudget,
			Usage: "number of spheres kept generated across frames",
		},
		cli.StringFlag{
			Name:  "stencil",
			Value: "gold",
			Usage: "initial color scheme, one of " + strings.Join(stencil.Names(), ", "),
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "view",
			Usage: "open an interactive viewer window",
			Description: `
Keys: 1/2/3 select the color scheme, a/d and w/s orbit around the fractal,
shift+a/d yaw and shift+w/s pitch, [ and ] move along the view direction,
{ and } change the field of view, space resets the camera, p saves a BMP
screenshot and escape quits.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "fps",
					Value: config.DefaultFPSLimit,
					Usage: "frame rate cap, 0 for unlimited",
				},
				cli.StringFlag{
					Name:  "shots",
					Value: ".",
					Usage: "directory screenshots are written to",
				},
			},
			Action: runViewer,
		},
		{
			Name:  "bench",
			Usage: "traverse the fractal headless and report per-frame statistics",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "frames",
					Value: 10,
					Usage: "number of frames to traverse",
				},
				cli.Float64Flag{
					Name:  "orbit",
					Value: 1.0,
					Usage: "horizontal orbit between frames in degrees",
				},
			},
			Action: runBench,
		},
	}

	if err := app.Run(os.Args); err != nil {
		closer.Fatalln(err)
	}
}
