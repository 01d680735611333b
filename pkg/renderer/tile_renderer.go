package renderer

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// ColumnRenderer renders whole image columns using an integrator
type ColumnRenderer struct {
	world           geometry.Hittable
	camera          *Camera
	integrator      integrator.Integrator
	samplesPerPixel int
}

// NewColumnRenderer creates a new column renderer
func NewColumnRenderer(world geometry.Hittable, camera *Camera, integratorInst integrator.Integrator, samplesPerPixel int) *ColumnRenderer {
	return &ColumnRenderer{
		world:           world,
		camera:          camera,
		integrator:      integratorInst,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderColumn samples every pixel of column x and writes the tone-mapped
// results to fb. Tracing happens outside the framebuffer lock.
func (cr *ColumnRenderer) RenderColumn(x int, fb *Framebuffer, sampler core.Sampler) RenderStats {
	height := cr.camera.Height()
	stats := RenderStats{TotalPixels: height}

	for y := 0; y < height; y++ {
		ps := cr.samplePixel(x, y, sampler)
		stats.TotalSamples += ps.SampleCount
		fb.Set(x, y, ToneMap(ps.GetColor()))
	}

	stats.ColumnsCompleted = 1
	return stats
}

// samplePixel averages samplesPerPixel jittered rays through pixel (x, y).
// Rows run top to bottom while v runs bottom to top, hence the flip.
func (cr *ColumnRenderer) samplePixel(x, y int, sampler core.Sampler) PixelStats {
	width := cr.camera.Width()
	height := cr.camera.Height()

	var ps PixelStats
	for s := 0; s < cr.samplesPerPixel; s++ {
		jitter := sampler.Get2D()
		u := (float64(x) + jitter.X) / float64(width-1)
		v := (float64(height-y) + jitter.Y) / float64(height-1)

		ray := cr.camera.GetRay(u, v)
		ps.AddSample(cr.integrator.RayColor(ray, cr.world, sampler))
	}
	return ps
}
