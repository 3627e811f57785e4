package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FreddieWitherden/teatree/field"
	"github.com/FreddieWitherden/teatree/mac"
	"github.com/FreddieWitherden/teatree/moment"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/tree"
	"github.com/FreddieWitherden/teatree/vecd"
)

func mustP2(t *testing.T, x, y, q float64) particle.Particle2[float64] {
	t.Helper()
	p, err := particle.NewParticle2(vecd.Vec2[float64]{X: x, Y: y}, vecd.Vec2[float64]{}, q, 1)
	require.NoError(t, err)
	return p
}

// TestTwoRodAttraction is spec.md §8's S1 scenario: two opposite unit
// charges 10 units apart. With θ=0 field evaluation is exact direct
// summation, so the field at p0 due to p1 alone should be (0.1, 0), and
// the field at p1 due to p0 alone is also (0.1, 0) (it points away from
// the positive charge; only the acceleration of the negative p1 is -0.1).
func TestTwoRodAttraction(t *testing.T) {
	ps := []particle.Particle2[float64]{
		mustP2(t, -5, 0, 1),
		mustP2(t, 5, 0, -1),
	}
	root, _, err := tree.Build2(ps, []int{0, 1}, tree.BuildOptions2{Order: moment.Octupole})
	require.NoError(t, err)

	macP := mac.NewOpeningAngle2(ps[0].R, 0) // θ=0 -> never accept, always expand
	ev := field.NewEvaluator2(ps[0].R, 1e-5, moment.Octupole, macP, ps)
	e0 := ev.Evaluate(root)
	require.InDelta(t, 0.1, e0.X, 1e-4)
	require.InDelta(t, 0, e0.Y, 1e-4)

	macP1 := mac.NewOpeningAngle2(ps[1].R, 0)
	ev1 := field.NewEvaluator2(ps[1].R, 1e-5, moment.Octupole, macP1, ps)
	e1 := ev1.Evaluate(root)
	require.InDelta(t, 0.1, e1.X, 1e-4)
	require.InDelta(t, 0, e1.Y, 1e-4)
}

// TestSelfInteractionIsExactlyZero verifies spec.md §4.I's self-interaction
// identity: when the leaf visited is the target itself, R=0 and the
// softened field is exactly the zero vector, never a near-zero residual.
func TestSelfInteractionIsExactlyZero(t *testing.T) {
	ps := []particle.Particle2[float64]{
		mustP2(t, 1, 2, 3),
		mustP2(t, -4, 5, -2),
	}
	root, _, err := tree.Build2(ps, []int{0, 1}, tree.BuildOptions2{Order: moment.Monopole})
	require.NoError(t, err)

	// θ large enough to always accept branches never arises with 2
	// particles split into 2 leaves, so both contributions are leaf
	// contributions; evaluating field at exactly p0's own position
	// isolates the self term.
	macP := mac.NewOpeningAngle2(ps[0].R, 0)
	ev := field.NewEvaluator2(ps[0].R, 1e-3, moment.Monopole, macP, ps)
	out := ev.Evaluate(root)

	// The only nonzero contribution should be from particle 1; verify by
	// direct computation and subtracting.
	R := ps[0].R.Sub(ps[1].R)
	denom := R.SquaredNorm() + 1e-3*1e-3
	want := R.Scale(ps[1].Q / denom)
	require.InDelta(t, want.X, out.X, 1e-12)
	require.InDelta(t, want.Y, out.Y, 1e-12)
}

// TestMultipole2MonopoleMatchesDirectSum checks that, at long range, the
// monopole-order branch contribution matches direct summation to leading
// order (spec.md §8 invariant 4's direct-summation baseline).
func TestMultipole2MonopoleMatchesDirectSum(t *testing.T) {
	ps := []particle.Particle2[float64]{
		mustP2(t, 100, 0, 1),
		mustP2(t, 102, 0, 1),
		mustP2(t, 101, 1, 1),
	}
	target := vecd.Vec2[float64]{X: 0, Y: 0}

	var direct vecd.Vec2[float64]
	for _, p := range ps {
		R := target.Sub(p.R)
		denom := R.SquaredNorm() + 1e-6
		direct = direct.Add(R.Scale(p.Q / denom))
	}

	root, _, err := tree.Build2(ps, []int{0, 1, 2}, tree.BuildOptions2{Order: moment.Monopole})
	require.NoError(t, err)
	macP := mac.NewOpeningAngle2(target, 10) // accept immediately: root is a single well-separated cluster
	ev := field.NewEvaluator2(target, 1e-3, moment.Monopole, macP, ps)
	approx := ev.Evaluate(root)

	require.InDelta(t, direct.X, approx.X, 5e-3)
	require.InDelta(t, direct.Y, approx.Y, 5e-3)
}
