package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at the hit. Implementations are pure
	// functions of the record.
	Evaluate(hit HitRecord) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of the hit
func (s *SolidColor) Evaluate(hit HitRecord) core.Vec3 {
	return s.Color
}
