package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FreddieWitherden/teatree/boundary"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

func mustP2(t *testing.T, rx, ry, vx, vy float64) particle.Particle2[float64] {
	t.Helper()
	p, err := particle.NewParticle2(vecd.Vec2[float64]{X: rx, Y: ry}, vecd.Vec2[float64]{X: vx, Y: vy}, 1, 1)
	require.NoError(t, err)
	return p
}

func TestOpen2IsNoOp(t *testing.T) {
	ps := []particle.Particle2[float64]{mustP2(t, -100, 100, -5, 5)}
	want := ps[0]
	boundary.Open2[float64]{}.Apply(ps)
	require.Equal(t, want, ps[0])
}

func TestReflective2ReflectsOutwardMotion(t *testing.T) {
	ps := []particle.Particle2[float64]{
		mustP2(t, -2, 0, -1, 0),  // below min, moving further out -> reflect
		mustP2(t, 2, 0, 1, 0),    // above max, moving further out -> reflect
		mustP2(t, -2, 0, 1, 0),   // below min but moving back in -> no change
		mustP2(t, 0, 0, 3, -3),   // inside bounds -> no change
	}
	b := boundary.Reflective2[float64]{Min: -1, Max: 1}
	b.Apply(ps)

	require.Equal(t, 1.0, ps[0].V.X)
	require.Equal(t, -1.0, ps[1].V.X)
	require.Equal(t, 1.0, ps[2].V.X) // unchanged
	require.Equal(t, 3.0, ps[3].V.X)
	require.Equal(t, -3.0, ps[3].V.Y)
}

func TestReflective2PreservesKineticEnergy(t *testing.T) {
	ps := []particle.Particle2[float64]{mustP2(t, -2, 3, -4, 5)}
	before := ps[0].V.SquaredNorm()
	b := boundary.Reflective2[float64]{Min: -1, Max: 1}
	b.Apply(ps)
	after := ps[0].V.SquaredNorm()
	require.Equal(t, before, after)
}
