package accel_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FreddieWitherden/teatree/accel"
	"github.com/FreddieWitherden/teatree/moment"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

// TestEvaluate2MultipoleErrorIsMonotoneNonIncreasing is spec.md §8's S2
// scenario: 500 particles uniform in [5,10]×[12,17] with 45% negative unit
// charges, θ=0.6, ε=1e-5. Raising the multipole truncation order should not
// make the field at a given target substantially worse; a handful of
// targets regressing is tolerated (MAC-accepted branches differ particle to
// particle), but regressions must stay a small minority of the population.
func TestEvaluate2MultipoleErrorIsMonotoneNonIncreasing(t *testing.T) {
	const n = 500
	rng := rand.New(rand.NewSource(7))

	ps := make([]particle.Particle2[float64], n)
	for i := range ps {
		r := vecd.Vec2[float64]{
			X: 5 + rng.Float64()*5,
			Y: 12 + rng.Float64()*5,
		}
		q := 1.0
		if rng.Float64() < 0.45 {
			q = -1.0
		}
		p, err := particle.NewParticle2(r, vecd.Vec2[float64]{}, q, 1)
		require.NoError(t, err)
		ps[i] = p
	}

	const eps, theta, nd = 1e-5, 0.6, 0.5

	direct, _, err := accel.Evaluate2(ps, accel.Options2[float64]{
		Epsilon:    eps,
		Order:      moment.Octupole,
		NewMAC:     accel.OpeningAngleFactory2[float64](0), // θ=0 -> always expand, exact direct sum
		ND:         nd,
		QtoMCutoff: 0,
	})
	require.NoError(t, err)

	orders := []moment.Order{moment.Monopole, moment.Dipole, moment.Quadrupole}
	sigma := make([][n]float64, len(orders))
	for oi, order := range orders {
		approx, _, err := accel.Evaluate2(ps, accel.Options2[float64]{
			Epsilon:    eps,
			Order:      order,
			NewMAC:     accel.OpeningAngleFactory2[float64](theta),
			ND:         nd,
			QtoMCutoff: 0,
		})
		require.NoError(t, err)
		for i := range ps {
			dx := approx[i].X - direct[i].X
			dy := approx[i].Y - direct[i].Y
			sigma[oi][i] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	sigma0, sigma1, sigma2 := sigma[0], sigma[1], sigma[2]

	countRegressions := func(worse, better [n]float64) int {
		count := 0
		for i := range worse {
			if worse[i] > better[i] {
				count++
			}
		}
		return count
	}

	r10 := countRegressions(sigma1, sigma0)
	r21 := countRegressions(sigma2, sigma1)
	r20 := countRegressions(sigma2, sigma0)

	require.Less(t, r10, 50, "dipole regressed past monopole at %d/%d targets", r10, n)
	require.Less(t, r21, 50, "quadrupole regressed past dipole at %d/%d targets", r21, n)
	require.Less(t, r20, 50, "quadrupole regressed past monopole at %d/%d targets", r20, n)
}
