package geometry

import (
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelogram_Hit_BasicIntersection(t *testing.T) {
	// 1x1 parallelogram in the XZ plane at y=0
	quad := NewParallelogramFromEdges(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0))

	hit, isHit := quad.Hit(ray, 0.001, 1000.0)
	require.True(t, isHit)
	assert.InDelta(t, 1.0, hit.T, 1e-9)
	assert.InDelta(t, 0, hit.Point.Subtract(core.NewVec3(0.5, 0, 0.5)).Length(), 1e-9)

	// u × v = x × z = -y, so a downward ray hits the back face
	assert.False(t, hit.FrontFace)
	assert.Equal(t, core.NewVec3(0, 1, 0), hit.Normal)
}

func TestParallelogram_Hit_Containment(t *testing.T) {
	quad := NewParallelogram(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), DummyMaterial{})

	tests := []struct {
		name      string
		x, y      float64
		shouldHit bool
	}{
		{"center", 0.5, 0.5, true},
		{"beyond triangle hypotenuse", 0.9, 0.9, true},
		{"outside X (negative)", -0.5, 0.5, false},
		{"outside X (positive)", 1.5, 0.5, false},
		{"outside Y (positive)", 0.5, 1.5, false},
		{"on edge alpha=0", 0, 0.5, false},
		{"on edge alpha=1", 1, 0.5, false},
		{"on edge beta=1", 0.5, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tt.x, tt.y, 2), core.NewVec3(0, 0, -1))
			hit, isHit := quad.Hit(ray, 0.001, 10)
			require.Equal(t, tt.shouldHit, isHit)
			if isHit {
				assert.InDelta(t, 2.0, hit.T, 1e-9)
				assert.True(t, hit.FrontFace)
			}
		})
	}
}

func TestParallelogram_Hit_Skewed(t *testing.T) {
	// Edges (2,0,0) and (1,1,0): the point (2, 0.5) lies inside, (0.2, 0.8) does not
	quad := NewParallelogramFromEdges(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(1, 1, 0), DummyMaterial{})

	_, isHit := quad.Hit(core.NewRay(core.NewVec3(2, 0.5, 1), core.NewVec3(0, 0, -1)), 0.001, 10)
	assert.True(t, isHit)

	_, isHit = quad.Hit(core.NewRay(core.NewVec3(0.2, 0.8, 1), core.NewVec3(0, 0, -1)), 0.001, 10)
	assert.False(t, isHit)
}

func TestParallelogram_Hit_Parallel(t *testing.T) {
	quad := NewParallelogramFromEdges(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), DummyMaterial{})
	_, isHit := quad.Hit(core.NewRay(core.NewVec3(0.5, 0, 0.5), core.NewVec3(1, 0, 1)), 0.001, 10)
	assert.False(t, isHit)
}
