package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.World
	CameraConfig renderer.CameraConfig
	Config       renderer.Config // Recommended render settings; zero fields take renderer defaults
}

// Builder constructs a scene for the given image size. The seed drives any
// random placement so the same seed always yields the same scene.
type Builder func(width, height int, seed int64) *Scene

var builders = map[string]Builder{
	"default":       NewDefaultScene,
	"diffuse-glass": NewDiffuseGlassScene,
	"empty":         NewEmptyScene,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene
func New(name string, width, height int, seed int64) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return build(width, height, seed), nil
}

// Camera creates the camera described by the scene's camera config
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// standardCamera is the fixed pinhole camera all built-in scenes use: viewport
// height 2, focal length 1, looking down -Z from origin.
func standardCamera(width, height int, origin core.Vec3) renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:          width,
		Height:         height,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
		Origin:         origin,
	}
}

// NewGroundParallelogram creates a horizontal square centered at center with
// its normal pointing up (0,1,0)
func NewGroundParallelogram(center core.Vec3, size float64, mat material.Material) *geometry.Parallelogram {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewParallelogramFromEdges(corner, u, v, mat)
}
