package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewEmptyScene creates a scene with no objects; only the background is visible
func NewEmptyScene(width, height int, seed int64) *Scene {
	config := renderer.DefaultConfig()
	config.SamplesPerPixel = 1
	config.Background = integrator.NightBackground
	config.Seed = seed

	return &Scene{
		Name:         "empty",
		World:        geometry.NewWorld(),
		CameraConfig: standardCamera(width, height, core.Vec3{}),
		Config:       config,
	}
}
