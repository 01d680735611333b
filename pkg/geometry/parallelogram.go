package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Parallelogram is spanned by an anchor vertex and the edges to two
// neighbouring vertices. Like Triangle, its boundary is excluded.
type Parallelogram struct {
	Vertices [3]core.Vec3 // Anchor, then the ends of the two edges
	Material material.Material
	frame    planarFrame
}

// NewParallelogram creates a parallelogram with corner anchor and edges to a and b
func NewParallelogram(anchor, a, b core.Vec3, mat material.Material) *Parallelogram {
	return &Parallelogram{
		Vertices: [3]core.Vec3{anchor, a, b},
		Material: mat,
		frame:    newPlanarFrame(anchor, a, b),
	}
}

// NewParallelogramFromEdges creates a parallelogram from a corner and two edge vectors
func NewParallelogramFromEdges(corner, u, v core.Vec3, mat material.Material) *Parallelogram {
	return NewParallelogram(corner, corner.Add(u), corner.Add(v), mat)
}

// Hit tests the ray against the parallelogram's unit square in edge coordinates
func (p *Parallelogram) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	alpha, beta, tHit, ok := p.frame.solve(ray)
	if !ok {
		return nil, false
	}
	if alpha <= 0 || alpha >= 1 || beta <= 0 || beta >= 1 {
		return nil, false
	}
	if tHit <= tMin || tHit >= tMax {
		return nil, false
	}

	hit := material.NewHitRecord(ray, tHit, p.frame.normal, p.Material)
	return &hit, true
}

// Normal returns the parallelogram's unit normal
func (p *Parallelogram) Normal() core.Vec3 {
	return p.frame.normal
}
