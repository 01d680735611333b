package scene

import (
	"math"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"default", "diffuse-glass", "empty"}, Names())
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, 64, 48, 1)
			require.NoError(t, err)
			require.NotNil(t, s)

			assert.Equal(t, name, s.Name)
			assert.NotNil(t, s.World)
			assert.Equal(t, 64, s.CameraConfig.Width)
			assert.Equal(t, 48, s.CameraConfig.Height)
			assert.NoError(t, s.Camera().Validate())
			assert.NoError(t, s.Config.Validate())
			assert.Equal(t, int64(1), s.Config.Seed)
		})
	}
}

func TestNew_UnknownScene(t *testing.T) {
	s, err := New("cornell", 64, 48, 1)
	assert.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "diffuse-glass")
}

func TestNewDefaultScene_CenterRayHitsSomething(t *testing.T) {
	s := NewDefaultScene(32, 18, 1)
	assert.Equal(t, 7, s.World.Len())

	// Looking slightly down from the camera lands on the red sphere
	ray := core.NewRay(s.CameraConfig.Origin, core.NewVec3(0, -0.5, -3))
	hit, ok := s.World.Hit(ray, integrator.HitEpsilon, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.Point.Subtract(core.NewVec3(0, 0.5, -3)).Length(), 1e-9)
}

func TestNewEmptyScene(t *testing.T) {
	s := NewEmptyScene(8, 8, 0)
	assert.Equal(t, 0, s.World.Len())
	assert.Equal(t, integrator.NightBackground, s.Config.Background)
}

func TestNewDiffuseGlassScene_SeedIsReproducible(t *testing.T) {
	a := NewDiffuseGlassScene(16, 9, 99)
	b := NewDiffuseGlassScene(16, 9, 99)
	require.Equal(t, a.World.Len(), b.World.Len())

	for i := range a.World.Objects {
		sa, ok := a.World.Objects[i].(*geometry.Sphere)
		require.True(t, ok)
		sb := b.World.Objects[i].(*geometry.Sphere)
		assert.Equal(t, sa.Center, sb.Center)
		assert.Equal(t, sa.Radius, sb.Radius)
	}
}

func TestNewDiffuseGlassScene_Layout(t *testing.T) {
	s := NewDiffuseGlassScene(16, 9, 5)

	// Ground, three orbs, three shells, then checkered and metal spheres
	// every round plus glass every second round
	require.Equal(t, 1+3+3+scatterRounds*2+scatterRounds/2, s.World.Len())
	assert.Equal(t, 512, s.Config.SamplesPerPixel)
	assert.Equal(t, integrator.NightBackground, s.Config.Background)

	ground := s.World.Objects[0].(*geometry.Sphere)
	assert.Equal(t, core.NewVec3(0, -100.5, -1), ground.Center)
	assert.Equal(t, 100.0, ground.Radius)

	for i, orb := range diffuseGlassOrbs {
		emitter := s.World.Objects[1+i].(*geometry.Sphere)
		assert.Equal(t, orb.center, emitter.Center)
		assert.Equal(t, orbRadius, emitter.Radius)
		assert.IsType(t, &material.Emissive{}, emitter.Material)

		shell := s.World.Objects[4+i].(*geometry.Sphere)
		assert.Equal(t, orb.center, shell.Center)
		assert.Equal(t, shellRadius, shell.Radius)
		glass, ok := shell.Material.(*material.Dielectric)
		require.True(t, ok)
		assert.Equal(t, shellRefractiveIndex, glass.RefractiveIndex)
	}

	for _, obj := range s.World.Objects[7:] {
		sphere := obj.(*geometry.Sphere)
		assert.GreaterOrEqual(t, sphere.Radius, 0.25)
		assert.Less(t, sphere.Radius, 0.75)
		assert.GreaterOrEqual(t, sphere.Center.X, -11.0)
		assert.Less(t, sphere.Center.X, 11.0)
		assert.GreaterOrEqual(t, sphere.Center.Z, -14.0)
		assert.Less(t, sphere.Center.Z, -2.0)
		if metal, ok := sphere.Material.(*material.Metal); ok {
			assert.LessOrEqual(t, metal.Fuzzness, 1.0)
		}
	}
}

func TestNewGroundParallelogram(t *testing.T) {
	ground := NewGroundParallelogram(core.NewVec3(0, 0, 0), 4, nil)
	assert.InDelta(t, 1.0, ground.Normal().Y, 1e-12)

	hit, ok := ground.Hit(core.NewRay(core.NewVec3(1.5, 1, -1.5), core.NewVec3(0, -1, 0)), 0.001, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.T, 1e-9)

	_, ok = ground.Hit(core.NewRay(core.NewVec3(2.5, 1, 0), core.NewVec3(0, -1, 0)), 0.001, math.Inf(1))
	assert.False(t, ok)
}
