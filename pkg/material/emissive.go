package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission ColorSource // Emitted light color/intensity
}

// NewEmissive creates a new emissive material with a solid color
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: NewSolidColor(emission)}
}

// NewTexturedEmissive creates an emissive material from a color source
func NewTexturedEmissive(emission ColorSource) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// Nothing is scattered; the evaluated color is returned as emitted radiance.
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{Color: e.Emission.Evaluate(hit)}, true
}
