package renderer

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/loaders"
	"github.com/google/uuid"
)

// Config contains rendering configuration. Fields are used as given: a zero
// MaxDepth renders black and a zero Background is a black environment. Start
// from DefaultConfig to get the usual settings.
type Config struct {
	SamplesPerPixel int                   // Number of rays per pixel; must be positive
	MaxDepth        int                   // Maximum ray bounce depth
	NumWorkers      int                   // Parallel workers; 0 means runtime.NumCPU()
	Seed            int64                 // Base seed for per-column samplers; 0 picks one from the clock
	Background      integrator.Background // Environment gradient for rays that miss
	Logger          core.Logger           // nil means a no-op logger
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		NumWorkers:      runtime.NumCPU(),
		Background:      integrator.NightBackground,
		Logger:          core.NewNopLogger(),
	}
}

// MergeConfig returns base with every non-zero field of override applied.
// It suits overrides where zero means "not given", such as command line flags.
func MergeConfig(base, override Config) Config {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.Background != (integrator.Background{}) {
		result.Background = override.Background
	}
	if override.Logger != nil {
		result.Logger = override.Logger
	}
	return result
}

// Validate checks the configuration for values the renderer cannot use
func (c Config) Validate() error {
	var errs []error
	if c.SamplesPerPixel <= 0 {
		errs = append(errs, fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel))
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth))
	}
	if c.NumWorkers < 0 {
		errs = append(errs, fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers))
	}
	return errors.Join(errs...)
}

// Raytracer renders a world through a camera into a framebuffer
type Raytracer struct {
	ID         string
	world      geometry.Hittable
	camera     *Camera
	config     Config
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The config is validated, not merged
// with defaults; only the documented zero values of NumWorkers, Seed and
// Logger are resolved.
func NewRaytracer(world geometry.Hittable, camera *Camera, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if err := camera.Validate(); err != nil {
		return nil, fmt.Errorf("invalid camera: %w", err)
	}
	if config.NumWorkers == 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if config.Logger == nil {
		config.Logger = core.NewNopLogger()
	}

	return &Raytracer{
		ID:         uuid.NewString(),
		world:      world,
		camera:     camera,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth, config.Background),
		logger:     config.Logger,
	}, nil
}

// Config returns the resolved configuration, including the seed actually used
func (rt *Raytracer) Config() Config {
	return rt.config
}

// RenderPass renders the full image in parallel, one column per task
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()

	fb := NewFramebuffer(width, height)
	columns := NewColumnRenderer(rt.world, rt.camera, rt.integrator, rt.config.SamplesPerPixel)
	pool := NewWorkerPool(columns, fb, width, rt.config.NumWorkers, rt.config.Seed)

	rt.logger.Infof("render %s: %dx%d, %d spp, depth %d, %d workers",
		rt.ID, width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	pool.Start()
	for x := 0; x < width; x++ {
		pool.SubmitTask(ColumnTask{Column: x, TaskID: x})
	}

	var stats RenderStats
	for i := 0; i < width; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.merge(result.Stats)
		rt.logger.Debugf("render %s: column %d done (%d/%d)", rt.ID, result.Column, stats.ColumnsCompleted, width)
	}
	pool.Stop()

	stats.finalize()
	stats.Duration = time.Since(start)
	rt.logger.Infof("render %s: finished in %v (%.1f samples/pixel)", rt.ID, stats.Duration, stats.AverageSamples)

	return fb.Image(), stats
}

// RenderToFile renders and then saves the image. A save failure is logged
// and returned, but the rendered image is returned either way.
func (rt *Raytracer) RenderToFile(outputPath string) (*image.RGBA, RenderStats, error) {
	img, stats := rt.RenderPass()

	if err := loaders.SaveImage(outputPath, img); err != nil {
		rt.logger.Errorf("render %s: error saving image: %v", rt.ID, err)
		return img, stats, fmt.Errorf("saving %s: %w", outputPath, err)
	}
	rt.logger.Infof("render %s: saved image as %s", rt.ID, outputPath)
	return img, stats, nil
}

// Render is the one-call entry point: it renders world through camera with
// samplesPerPixel samples and default settings, then writes outputPath.
// A non-positive sample count is an error and nothing is rendered.
func Render(world geometry.Hittable, camera *Camera, samplesPerPixel int, outputPath string) (*image.RGBA, error) {
	if samplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", samplesPerPixel)
	}
	config := DefaultConfig()
	config.SamplesPerPixel = samplesPerPixel
	return RenderWithConfig(world, camera, config, outputPath)
}

// RenderWithConfig is Render with explicit configuration
func RenderWithConfig(world geometry.Hittable, camera *Camera, config Config, outputPath string) (*image.RGBA, error) {
	rt, err := NewRaytracer(world, camera, config)
	if err != nil {
		return nil, err
	}
	img, _, err := rt.RenderToFile(outputPath)
	return img, err
}
