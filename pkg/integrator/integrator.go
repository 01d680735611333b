package integrator

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}

// Background is a vertical environment gradient standing in for sky light
type Background struct {
	Top    core.Vec3 // Color for rays pointing straight up
	Bottom core.Vec3 // Color for rays pointing straight down
}

// NightBackground is a dark blue gradient, darker towards the zenith
var NightBackground = Background{
	Top:    core.NewVec3(0.032, 0.04, 0.08),
	Bottom: core.NewVec3(0.08, 0.1, 0.2),
}

// SkyBackground is the classic white horizon to light blue sky gradient
var SkyBackground = Background{
	Top:    core.NewVec3(0.5, 0.7, 1.0),
	Bottom: core.NewVec3(1.0, 1.0, 1.0),
}

// Color returns the gradient color for a ray's direction
func (b Background) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5*unitDirection.Y + 0.5

	return b.Bottom.Lerp(b.Top, t)
}
