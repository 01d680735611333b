package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewDefaultScene creates a small daylight scene showing every primitive and
// material: three spheres on a checkered ground, a triangle and a light.
func NewDefaultScene(width, height int, seed int64) *Scene {
	checker := material.NewCheckerColor(core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.2, 0.3, 0.1), 0.5)
	ground := material.NewTexturedLambertian(checker)
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	glass := material.NewDielectric(1.5)
	normals := material.NewTexturedLambertian(material.NewNormalColor())
	light := material.NewEmissive(core.NewVec3(4, 3.8, 3.5))

	world := geometry.NewWorld(
		NewGroundParallelogram(core.NewVec3(0, 0, -3), 20, ground),
		geometry.NewSphere(core.NewVec3(0, 0.5, -3), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(-1.1, 0.5, -3), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1.1, 0.5, -3), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -2), 0.25, normals),
		// Mirror triangle behind the spheres
		geometry.NewTriangle(
			core.NewVec3(-2, 0, -5),
			core.NewVec3(2, 0, -5),
			core.NewVec3(0, 2.5, -5.5),
			metalSilver,
		),
		geometry.NewSphere(core.NewVec3(-2, 3, -2), 0.6, light),
	)

	config := renderer.DefaultConfig()
	config.Background = integrator.SkyBackground
	config.Seed = seed

	return &Scene{
		Name:         "default",
		World:        world,
		CameraConfig: standardCamera(width, height, core.NewVec3(0, 1, 0)),
		Config:       config,
	}
}
