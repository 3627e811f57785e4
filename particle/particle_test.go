package particle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

func TestNewParticle2(t *testing.T) {
	p, err := particle.NewParticle2(vecd.Vec2[float64]{X: 1}, vecd.Vec2[float64]{}, 2.0, 4.0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p.QtoM, 1e-15)

	_, err = particle.NewParticle2(vecd.Vec2[float64]{}, vecd.Vec2[float64]{}, 1.0, 0)
	require.ErrorIs(t, err, particle.ErrNonPositiveMass)

	_, err = particle.NewParticle2(vecd.Vec2[float64]{}, vecd.Vec2[float64]{}, 0, 1.0)
	require.ErrorIs(t, err, particle.ErrZeroCharge)
}

func TestNewParticle3(t *testing.T) {
	p, err := particle.NewParticle3(vecd.Vec3[float64]{}, vecd.Vec3[float64]{}, -3.0, 6.0)
	require.NoError(t, err)
	require.InDelta(t, -0.5, p.QtoM, 1e-15)
}
