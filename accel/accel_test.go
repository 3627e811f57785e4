package accel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FreddieWitherden/teatree/accel"
	"github.com/FreddieWitherden/teatree/moment"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

func mustP2(t *testing.T, x, y, q float64) particle.Particle2[float64] {
	t.Helper()
	p, err := particle.NewParticle2(vecd.Vec2[float64]{X: x, Y: y}, vecd.Vec2[float64]{}, q, 1)
	require.NoError(t, err)
	return p
}

// TestEvaluate2TwoRodAttraction is spec.md §8's S1 scenario carried through
// the full acceleration pass. N_D is fixed at 0.5 so that the 1/(d·N_D)
// normalization equals 1, reducing a_i to the raw field value the
// scenario states (spec.md does not name a default N_D for S1).
func TestEvaluate2TwoRodAttraction(t *testing.T) {
	ps := []particle.Particle2[float64]{
		mustP2(t, -5, 0, 1),
		mustP2(t, 5, 0, -1),
	}
	out, stats, err := accel.Evaluate2(ps, accel.Options2[float64]{
		Epsilon:    1e-5,
		Order:      moment.Octupole,
		NewMAC:     accel.OpeningAngleFactory2[float64](0),
		ND:         0.5,
		QtoMCutoff: 0,
	})
	require.NoError(t, err)
	require.InDelta(t, 0.1, out[0].X, 1e-4)
	require.InDelta(t, 0, out[0].Y, 1e-4)
	require.InDelta(t, -0.1, out[1].X, 1e-4)
	require.InDelta(t, 0, out[1].Y, 1e-4)
	require.Equal(t, int64(4), stats.LeavesVisited) // 2 leaves per target, summed over 2 targets
}

// TestEvaluate2QtomCutoffImmobilizes checks spec.md §4.J's immobile-particle
// rule: a particle with |qtom| below the cutoff always gets a=0.
func TestEvaluate2QtomCutoffImmobilizes(t *testing.T) {
	ps := []particle.Particle2[float64]{
		mustP2(t, -5, 0, 1),
		mustP2(t, 5, 0, -0.001),
	}
	out, _, err := accel.Evaluate2(ps, accel.Options2[float64]{
		Epsilon:    1e-5,
		Order:      moment.Monopole,
		NewMAC:     accel.OpeningAngleFactory2[float64](0),
		ND:         0.5,
		QtoMCutoff: 0.01,
	})
	require.NoError(t, err)
	require.Equal(t, vecd.Vec2[float64]{}, out[1])
}

func TestEvaluate2TooFewParticles(t *testing.T) {
	ps := []particle.Particle2[float64]{mustP2(t, 0, 0, 1)}
	_, _, err := accel.Evaluate2(ps, accel.Options2[float64]{NewMAC: accel.OpeningAngleFactory2[float64](0.5), ND: 1})
	require.Error(t, err)
}
