package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbitalgo/nbody/core/constants"
)

func TestVector2Arithmetic(t *testing.T) {
	a := NewVector2(1, 2)
	b := NewVector2(3, -1)

	require.Equal(t, Vector2{X: 4, Y: 1}, a.Add(b))
	require.Equal(t, Vector2{X: -2, Y: 3}, a.Sub(b))
	require.Equal(t, Vector2{X: 2, Y: 4}, a.Scale(2))
	require.Equal(t, Vector2{X: 0.5, Y: 1}, a.Div(2))
}

func TestVector2DistanceSoftened(t *testing.T) {
	a := NewVector2(0, 0)
	b := NewVector2(3, 4)

	require.InDelta(t, 25.001, a.DistanceSquared(b), 1e-12)
	require.InDelta(t, math.Sqrt(25.001), a.Distance(b), 1e-12)
}

func TestVector2DistanceToSelfIsSoftened(t *testing.T) {
	a := NewVector2(5, -5)

	require.Equal(t, constants.Epsilon, a.DistanceSquared(a))
	require.InDelta(t, math.Sqrt(constants.Epsilon), a.Distance(a), 1e-15)
}

func TestVector2MaxAbsComponent(t *testing.T) {
	require.Equal(t, 7.0, NewVector2(-7, 3).MaxAbsComponent())
	require.Equal(t, 3.0, NewVector2(2, -3).MaxAbsComponent())
	require.Equal(t, 0.0, Zero2().MaxAbsComponent())
}

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(-1, 0, 1)

	require.Equal(t, Vector3{X: 0, Y: 2, Z: 4}, a.Add(b))
	require.Equal(t, Vector3{X: 2, Y: 2, Z: 2}, a.Sub(b))
	require.Equal(t, Vector3{X: 2, Y: 4, Z: 6}, a.Scale(2))
}

func TestVector3DistanceSoftened(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(1, 2, 2)

	require.InDelta(t, 9.001, a.DistanceSquared(b), 1e-12)
}

func TestVector3MaxAbsComponent(t *testing.T) {
	require.Equal(t, 9.0, NewVector3(1, -9, 4).MaxAbsComponent())
}

func TestDotUnsoftened(t *testing.T) {
	v := NewVector2(3, 4)
	require.Equal(t, 25.0, v.Dot(v))

	v3 := NewVector3(1, 2, 2)
	require.Equal(t, 9.0, v3.Dot(v3))
}
