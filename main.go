package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
	"github.com/google/uuid"
)

// options holds the parsed command line
type options struct {
	Scene   string
	Width   int
	Height  int
	SPP     int
	Depth   int
	Workers int
	Seed    int64
	Out     string
	Debug   bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := core.NewDefaultLogger("raytracer", opts.Debug)
	if _, err := run(opts, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

// parseFlags parses args into options. It returns flag.ErrHelp after printing
// usage when -help is given.
func parseFlags(args []string, out io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&opts.Scene, "scene", "default", "Scene: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&opts.Width, "width", 400, "Image width in pixels")
	fs.IntVar(&opts.Height, "height", 225, "Image height in pixels")
	fs.IntVar(&opts.SPP, "spp", 0, "Samples per pixel (0 uses the scene's recommendation)")
	fs.IntVar(&opts.Depth, "depth", 0, "Maximum bounce depth (0 uses the scene's recommendation)")
	fs.IntVar(&opts.Workers, "workers", 0, "Parallel workers (0 uses all CPUs)")
	fs.Int64Var(&opts.Seed, "seed", 0, "Random seed (0 picks one from the clock)")
	fs.StringVar(&opts.Out, "out", "", "Output file (.png, .jpg, .bmp, .tif); defaults to output/<scene>/render_<id>.png")
	fs.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	help := fs.Bool("help", false, "Show help information")

	fs.Usage = func() {
		fmt.Fprintln(out, "Stochastic Raytracer")
		fmt.Fprintln(out, "Usage: raytracer [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if *help {
		fs.Usage()
		return opts, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// run builds the scene, renders it and returns the path the image was saved to
func run(opts options, logger core.Logger) (string, error) {
	s, err := scene.New(opts.Scene, opts.Width, opts.Height, opts.Seed)
	if err != nil {
		return "", err
	}

	config := renderer.MergeConfig(s.Config, renderer.Config{
		SamplesPerPixel: opts.SPP,
		MaxDepth:        opts.Depth,
		NumWorkers:      opts.Workers,
		Logger:          logger,
	})

	outputPath := opts.Out
	if outputPath == "" {
		outputPath = filepath.Join("output", s.Name, fmt.Sprintf("render_%s.png", uuid.NewString()[:8]))
	}

	logger.Infof("rendering scene %q (%d objects) to %s", s.Name, s.World.Len(), outputPath)
	if _, err := renderer.RenderWithConfig(s.World, s.Camera(), config, outputPath); err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}
	return outputPath, nil
}
