package material

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// NormalColor maps the hit normal from [-1,1] to an RGB color in [0,1]
type NormalColor struct{}

// NewNormalColor creates a color source that visualizes surface normals
func NewNormalColor() *NormalColor {
	return &NormalColor{}
}

// Evaluate returns 0.5*normal + 0.5 per channel
func (n *NormalColor) Evaluate(hit HitRecord) core.Vec3 {
	return hit.Normal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
}

// CheckerColor is a 3D checkerboard: space is split into cubic cells of
// CellSize and the color alternates with the parity of the cell index sum.
type CheckerColor struct {
	Even     core.Vec3 // Color for cells whose index sum is even
	Odd      core.Vec3 // Color for cells whose index sum is odd
	CellSize float64   // Edge length of a cell; must be positive
}

// NewCheckerColor creates a procedural checker pattern. A cell size that is
// not positive falls back to 1.
func NewCheckerColor(even, odd core.Vec3, cellSize float64) *CheckerColor {
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		cellSize = 1.0
	}
	return &CheckerColor{Even: even, Odd: odd, CellSize: cellSize}
}

// Evaluate selects a color from the parity of the floor-divided hit point
func (c *CheckerColor) Evaluate(hit HitRecord) core.Vec3 {
	if c.CellParity(hit.Point) == 0 {
		return c.Even
	}
	return c.Odd
}

// CellParity returns 0 or 1 for the cell containing p
func (c *CheckerColor) CellParity(p core.Vec3) int {
	i := int64(math.Floor(p.X / c.CellSize))
	j := int64(math.Floor(p.Y / c.CellSize))
	k := int64(math.Floor(p.Z / c.CellSize))
	// Go's % keeps the sign of the dividend
	parity := (i + j + k) % 2
	if parity < 0 {
		parity = -parity
	}
	return int(parity)
}
