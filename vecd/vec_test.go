package vecd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FreddieWitherden/teatree/vecd"
)

func TestVec2Arithmetic(t *testing.T) {
	a := vecd.Vec2[float64]{X: 1, Y: 2}
	b := vecd.Vec2[float64]{X: 3, Y: -1}

	require.Equal(t, vecd.Vec2[float64]{X: 4, Y: 1}, a.Add(b))
	require.Equal(t, vecd.Vec2[float64]{X: -2, Y: 3}, a.Sub(b))
	require.Equal(t, vecd.Vec2[float64]{X: 2, Y: 4}, a.Scale(2))
	require.InDelta(t, 5.0, a.SquaredNorm(), 1e-12)
	require.Equal(t, vecd.Vec2[float64]{X: 1, Y: -1}, a.Min(b))
	require.Equal(t, vecd.Vec2[float64]{X: 3, Y: 2}, a.Max(b))
	require.Equal(t, vecd.Vec2[float64]{X: 2, Y: 1}, a.YX())
}

func TestVec3Norm(t *testing.T) {
	v := vecd.Vec3[float64]{X: 3, Y: 4, Z: 0}
	require.InDelta(t, 5.0, v.Norm(), 1e-12)
	require.InDelta(t, 25.0, v.SquaredNorm(), 1e-12)
}

func TestVec3Permutations(t *testing.T) {
	v := vecd.Vec3[float64]{X: 1, Y: 2, Z: 3}
	require.Equal(t, vecd.Vec3[float64]{X: 2, Y: 3, Z: 1}, v.YZX())
	require.Equal(t, vecd.Vec3[float64]{X: 3, Y: 1, Z: 2}, v.ZXY())
}
