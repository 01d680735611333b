package scene

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

const (
	shellRefractiveIndex = 1.3
	scatterRounds        = 40
)

// glowingOrb is an emissive sphere that sits inside a slightly larger glass shell
type glowingOrb struct {
	center   core.Vec3
	emission core.Vec3
}

var diffuseGlassOrbs = []glowingOrb{
	{core.NewVec3(-3, 2, -5), core.NewVec3(5, 0.2, 0.3)},
	{core.NewVec3(0, 2, -5), core.NewVec3(0.3, 5, 0.2)},
	{core.NewVec3(3, 2, -5), core.NewVec3(0.3, 0.2, 5)},
}

const (
	orbRadius   = 1.0
	shellRadius = 1.01
)

// NewDiffuseGlassScene creates a night scene lit only by three colored orbs in
// glass shells above a green checkered ground sphere, with randomly placed
// checkered, metal and glass spheres scattered through the volume.
func NewDiffuseGlassScene(width, height int, seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
			material.NewTexturedLambertian(material.NewCheckerColor(
				core.NewVec3(0.4, 0.8, 0.4), core.NewVec3(0.6, 1, 0.6), 0.25))),
	)
	for _, orb := range diffuseGlassOrbs {
		world.Add(geometry.NewSphere(orb.center, orbRadius, material.NewEmissive(orb.emission)))
	}
	shell := material.NewDielectric(shellRefractiveIndex)
	for _, orb := range diffuseGlassOrbs {
		world.Add(geometry.NewSphere(orb.center, shellRadius, shell))
	}

	for i := 0; i < scatterRounds; i++ {
		world.Add(randomSphere(sampler, 7.5, -14, checkeredMaterial(sampler)))
		world.Add(randomSphere(sampler, 8, -14, metalMaterial(sampler)))
		if i%2 == 0 {
			world.Add(randomSphere(sampler, 8, -13, glassMaterial(sampler)))
		}
	}

	config := renderer.DefaultConfig()
	config.SamplesPerPixel = 512
	config.Background = integrator.NightBackground
	config.Seed = seed

	return &Scene{
		Name:         "diffuse-glass",
		World:        world,
		CameraConfig: standardCamera(width, height, core.NewVec3(0, 1, 0)),
		Config:       config,
	}
}

// randomSphere places a sphere of radius [0.25,0.75) with x in [-11,11),
// y in [-1,maxY) and z in [minZ,-2)
func randomSphere(sampler core.Sampler, maxY, minZ float64, mat material.Material) *geometry.Sphere {
	center := core.NewVec3(
		core.RandomRange(sampler, -11, 11),
		core.RandomRange(sampler, -1, maxY),
		core.RandomRange(sampler, minZ, -2),
	)
	return geometry.NewSphere(center, core.RandomRange(sampler, 0.25, 0.75), mat)
}

func checkeredMaterial(sampler core.Sampler) material.Material {
	even := core.RandomVec3Range(sampler, 0.3, 1)
	odd := core.RandomVec3Range(sampler, 0.3, 1)
	return material.NewTexturedLambertian(material.NewCheckerColor(even, odd, core.RandomRange(sampler, 0.1, 0.25)))
}

// metalMaterial cubes the fuzz draw so most spheres are close to mirrors
func metalMaterial(sampler core.Sampler) material.Material {
	albedo := core.RandomVec3Range(sampler, 0.6, 0.8)
	return material.NewMetal(albedo, math.Pow(sampler.Get1D(), 3))
}

func glassMaterial(sampler core.Sampler) material.Material {
	tint := core.RandomVec3Range(sampler, 0.9, 1)
	return material.NewTintedDielectric(shellRefractiveIndex, material.NewSolidColor(tint))
}
