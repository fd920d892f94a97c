package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbitalgo/nbody/core/constants"
	"github.com/orbitalgo/nbody/core/vector"
	"github.com/orbitalgo/nbody/simulation"
)

func TestDefaultConfigMatchesConstants(t *testing.T) {
	c := NewDefaultConfig()

	require.Equal(t, constants.G, c.GravityConstant)
	require.Equal(t, constants.DefaultTheta, c.Theta)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	c := NewSimulationBuilder().
		WithTimeStep(0.02).
		WithTheta(0.8).
		WithGravityConstant(1.0).
		WithMaxBodies(42).
		Build()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, c.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, c, loaded)
}

func TestNewSimulation2DWiresConfig(t *testing.T) {
	c := NewDefaultConfig()
	bodies := []simulation.Body[vector.Vector2]{
		simulation.NewBody(vector.NewVector2(0, 0), vector.Zero2(), vector.Zero2(), 1),
		simulation.NewBody(vector.NewVector2(1, 1), vector.Zero2(), vector.Zero2(), 1),
	}

	sim := c.NewSimulation2D(bodies)
	require.Len(t, sim.Bodies(), 2)
}

func TestNewSimulation3DWiresConfig(t *testing.T) {
	c := NewDefaultConfig()
	bodies := []simulation.Body[vector.Vector3]{
		simulation.NewBody(vector.NewVector3(0, 0, 0), vector.Zero3(), vector.Zero3(), 1),
		simulation.NewBody(vector.NewVector3(1, 1, 1), vector.Zero3(), vector.Zero3(), 1),
	}

	sim := c.NewSimulation3D(bodies)
	require.Len(t, sim.Bodies(), 2)
}
