package integrator

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
)

const (
	// DefaultMaxDepth is the bounce budget per camera ray
	DefaultMaxDepth = 16

	// HitEpsilon is the lower t bound for scene queries; it keeps bounced rays
	// from re-hitting the surface they leave.
	HitEpsilon = 0.001
)

// PathTracingIntegrator is a depth-capped recursive path tracer without
// Russian roulette or light sampling.
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor traces ray with the full bounce budget
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, world, sampler, pt.MaxDepth)
}

// Trace returns the radiance along ray with depth bounces remaining
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, HitEpsilon, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray)
	}

	scatter, ok := hit.Material.Scatter(ray, *hit, sampler)
	if !ok {
		return core.Vec3{} // Absorbed
	}
	if scatter.IsEmission() {
		return scatter.Color
	}

	return scatter.Color.MultiplyVec(pt.Trace(scatter.Scattered, world, sampler, depth-1))
}
