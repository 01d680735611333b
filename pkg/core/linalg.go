package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// singularEpsilon bounds the determinant relative to the product of the column
// lengths. Below it the columns are treated as coplanar, whatever their scale.
const singularEpsilon = 1e-12

// ToMgl converts v to an mgl64 vector
func (v Vec3) ToMgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts an mgl64 vector to a Vec3
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// SolveLinear3 solves [c0 c1 c2] * x = rhs for x, where c0, c1 and c2 are the
// matrix columns. It returns false when the columns are coplanar to within
// singularEpsilon of their combined length.
func SolveLinear3(c0, c1, c2, rhs Vec3) (Vec3, bool) {
	m := mgl64.Mat3FromCols(c0.ToMgl(), c1.ToMgl(), c2.ToMgl())
	det := m.Det()
	scale := c0.Length() * c1.Length() * c2.Length()
	// Negated so that a NaN determinant or a zero column also fails
	if !(math.Abs(det) > singularEpsilon*scale) {
		return Vec3{}, false
	}
	// Cramer's rule; mgl64's Inv gives up on determinants below its own
	// absolute epsilon, which tiny primitives reach
	b := rhs.ToMgl()
	return Vec3{
		X: mgl64.Mat3FromCols(b, c1.ToMgl(), c2.ToMgl()).Det() / det,
		Y: mgl64.Mat3FromCols(c0.ToMgl(), b, c2.ToMgl()).Det() / det,
		Z: mgl64.Mat3FromCols(c0.ToMgl(), c1.ToMgl(), b).Det() / det,
	}, true
}
