package geometry

import (
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangle_Hit(t *testing.T) {
	// Triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, DummyMaterial{})

	tests := []struct {
		name          string
		ray           core.Ray
		tMin          float64
		tMax          float64
		shouldHit     bool
		expectedT     float64
		expectedFront bool
	}{
		{
			name:          "hits interior from +Z",
			ray:           core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			tMin:          0.001,
			tMax:          10.0,
			shouldHit:     true,
			expectedT:     1.0,
			expectedFront: true,
		},
		{
			name:          "hits interior from -Z",
			ray:           core.NewRay(core.NewVec3(0.25, 0.25, -2), core.NewVec3(0, 0, 1)),
			tMin:          0.001,
			tMax:          10.0,
			shouldHit:     true,
			expectedT:     2.0,
			expectedFront: false,
		},
		{
			name:      "outside triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "inside square but beyond hypotenuse",
			ray:       core.NewRay(core.NewVec3(0.75, 0.75, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "parallel to triangle plane",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 0), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "triangle behind the ray",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "beyond tMax",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -5), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      4.0,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, tt.tMin, tt.tMax)
			require.Equal(t, tt.shouldHit, isHit)
			if !tt.shouldHit {
				return
			}
			assert.InDelta(t, tt.expectedT, hit.T, 1e-9)
			assert.Equal(t, tt.expectedFront, hit.FrontFace)
			assert.InDelta(t, 1.0, hit.Normal.Length(), 1e-12)
			assert.LessOrEqual(t, hit.Normal.Dot(tt.ray.Direction), 0.0)
			assert.InDelta(t, 0, hit.Point.Z, 1e-9)
		})
	}
}

// Edges and vertices are outside the open triangle.
func TestTriangle_Hit_BoundaryIsExcluded(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), DummyMaterial{})

	boundary := []core.Vec3{
		core.NewVec3(0.5, 0, 1),   // on edge v0-v1
		core.NewVec3(0, 0.5, 1),   // on edge v0-v2
		core.NewVec3(0.5, 0.5, 1), // on the hypotenuse
		core.NewVec3(0, 0, 1),     // vertex
	}

	for _, origin := range boundary {
		_, isHit := triangle.Hit(core.NewRay(origin, core.NewVec3(0, 0, -1)), 0.001, 10)
		assert.False(t, isHit, "boundary point %v should miss", origin)
	}
}

func TestTriangle_Normal(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -3), DummyMaterial{})
	assert.InDelta(t, 0, triangle.Normal().Subtract(core.NewVec3(0, 1, 0)).Length(), 1e-12)
}

func TestTriangle_Hit_Degenerate(t *testing.T) {
	// Collinear vertices span no plane
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), DummyMaterial{})
	_, isHit := triangle.Hit(core.NewRay(core.NewVec3(0.5, 0, 1), core.NewVec3(0, 0, -1)), 0.001, 10)
	assert.False(t, isHit)
}

func TestTriangle_Hit_ObliqueRay(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(-1, -1, -3), core.NewVec3(1, -1, -3), core.NewVec3(0, 1, -3), DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.1, -0.2, -1))

	hit, isHit := triangle.Hit(ray, 0.001, 100)
	require.True(t, isHit)
	assert.InDelta(t, 3.0, hit.T, 1e-9)
	assert.InDelta(t, 0, hit.Point.Subtract(core.NewVec3(0.3, -0.6, -3)).Length(), 1e-9)
}

func TestTriangle_Hit_TinyTriangle(t *testing.T) {
	for _, size := range []float64{1e-9, 1e-7, 1e-6} {
		triangle := NewTriangle(
			core.NewVec3(0, 0, -1),
			core.NewVec3(size, 0, -1),
			core.NewVec3(0, size, -1),
			DummyMaterial{},
		)
		ray := core.NewRay(core.NewVec3(size/4, size/4, 0), core.NewVec3(0, 0, -1))

		hit, isHit := triangle.Hit(ray, 0.001, 10)
		require.True(t, isHit, "triangle of size %g", size)
		assert.InDelta(t, 1.0, hit.T, 1e-9)
	}
}
