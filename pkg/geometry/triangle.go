package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices.
// Its interior is open: points exactly on an edge are not hit.
type Triangle struct {
	Vertices [3]core.Vec3
	Material material.Material
	frame    planarFrame
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	return &Triangle{
		Vertices: [3]core.Vec3{v0, v1, v2},
		Material: mat,
		frame:    newPlanarFrame(v0, v1, v2),
	}
}

// Hit tests the ray against the triangle by solving for its barycentric coordinates
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	alpha, beta, tHit, ok := t.frame.solve(ray)
	if !ok {
		return nil, false
	}
	if alpha <= 0 || beta <= 0 || alpha+beta >= 1 {
		return nil, false
	}
	if tHit <= tMin || tHit >= tMax {
		return nil, false
	}

	hit := material.NewHitRecord(ray, tHit, t.frame.normal, t.Material)
	return &hit, true
}

// Normal returns the triangle's unit normal (edge1 × edge2)
func (t *Triangle) Normal() core.Vec3 {
	return t.frame.normal
}
