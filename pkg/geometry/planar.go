package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// planarFrame holds the anchor and edges of a triangle or parallelogram,
// along with the unit normal edge1 × edge2.
type planarFrame struct {
	anchor core.Vec3
	edge1  core.Vec3
	edge2  core.Vec3
	normal core.Vec3
}

func newPlanarFrame(v0, v1, v2 core.Vec3) planarFrame {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return planarFrame{
		anchor: v0,
		edge1:  edge1,
		edge2:  edge2,
		normal: edge1.Cross(edge2).Normalize(),
	}
}

// solve expresses the ray origin, relative to the anchor, in the basis
// (edge1, edge2, direction). The first two coordinates locate the hit on the
// plane; the third, negated, is the ray parameter. ok is false when the ray is
// parallel to the plane or the primitive is degenerate.
func (f planarFrame) solve(ray core.Ray) (alpha, beta, t float64, ok bool) {
	local, ok := core.SolveLinear3(f.edge1, f.edge2, ray.Direction, ray.Origin.Subtract(f.anchor))
	if !ok {
		return 0, 0, 0, false
	}
	return local.X, local.Y, -local.Z, true
}
