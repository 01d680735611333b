package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Material decides how an incoming ray interacts with a surface.
// Implementations must be safe for concurrent use; the built-in materials
// are immutable after construction.
type Material interface {
	// Scatter returns false when the surface absorbs the ray. Otherwise the
	// result either carries a continuation ray (HasScattered) whose radiance
	// is attenuated by Color, or is terminal and Color is emitted radiance.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered    core.Ray  // The scattered ray, valid only if HasScattered
	Color        core.Vec3 // Attenuation, or emitted radiance when nothing scattered
	HasScattered bool
}

// IsEmission reports whether the result is terminal emitted radiance
func (s ScatterResult) IsEmission() bool {
	return !s.HasScattered
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// NewHitRecord builds the record for a hit at parameter t, orienting the
// outward normal against the ray.
func NewHitRecord(ray core.Ray, t float64, outwardNormal core.Vec3, mat Material) HitRecord {
	h := HitRecord{
		Point:    ray.At(t),
		T:        t,
		Material: mat,
	}
	h.SetFaceNormal(ray, outwardNormal)
	return h
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
