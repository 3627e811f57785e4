package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FreddieWitherden/teatree/moment"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/tree"
	"github.com/FreddieWitherden/teatree/vecd"
	"github.com/FreddieWitherden/teatree/visitor"
)

func mustParticle2(t *testing.T, x, y, q float64) particle.Particle2[float64] {
	t.Helper()
	p, err := particle.NewParticle2(vecd.Vec2[float64]{X: x, Y: y}, vecd.Vec2[float64]{}, q, 1)
	require.NoError(t, err)
	return p
}

// TestBuild2Invariants checks spec.md §8 invariants 1-3: bbox containment,
// charge conservation at every branch, and a leaf count equal to N.
func TestBuild2Invariants(t *testing.T) {
	ps := []particle.Particle2[float64]{
		mustParticle2(t, -5, 0, 1),
		mustParticle2(t, 5, 0, -1),
		mustParticle2(t, 0, 5, 2),
		mustParticle2(t, 0, -5, -2),
		mustParticle2(t, 3, 3, 0.5),
	}
	idx := []int{0, 1, 2, 3, 4}

	root, _, err := tree.Build2(ps, idx, tree.BuildOptions2{Order: moment.Quadrupole})
	require.NoError(t, err)

	var checkInvariants func(b *tree.Branch2[float64])
	checkInvariants = func(b *tree.Branch2[float64]) {
		require.True(t, b.Min.X <= b.R.X && b.R.X <= b.Max.X)
		require.True(t, b.Min.Y <= b.R.Y && b.R.Y <= b.Max.Y)
		require.Greater(t, b.Size2, 0.0)

		var sumQ, sumAbsQ float64
		for _, n := range b.Children() {
			if n.IsLeaf() {
				p := ps[n.Leaf()]
				sumQ += p.Q
				sumAbsQ += absF(p.Q)
			} else {
				br := n.Branch()
				sumQ += br.Moments.M
				sumAbsQ += br.AbsQ
				checkInvariants(br)
			}
		}
		require.InDelta(t, sumQ, b.Moments.M, 1e-9)
		require.InDelta(t, sumAbsQ, b.AbsQ, 1e-9)
	}
	checkInvariants(root)

	w := &visitor.Walker[int, *tree.Branch2[float64]]{
		Accept:   func(*tree.Branch2[float64]) bool { return false },
		OnLeaf:   func(int) {},
		Children: (*tree.Branch2[float64]).Children,
	}
	w.Visit(visitor.BranchNode[int, *tree.Branch2[float64]](root))
	require.Equal(t, len(ps), w.Leaves)
}

// TestBuild2Deterministic verifies spec.md §8's "round-trip" property:
// rebuilding over an unchanged array yields bit-identical aggregates.
func TestBuild2Deterministic(t *testing.T) {
	ps := []particle.Particle2[float64]{
		mustParticle2(t, 1, 1, 1),
		mustParticle2(t, -1, 2, -1),
		mustParticle2(t, 4, -3, 2),
	}

	root1, _, err := tree.Build2(append([]particle.Particle2[float64]{}, ps...), []int{0, 1, 2}, tree.BuildOptions2{Order: moment.Dipole})
	require.NoError(t, err)
	root2, _, err := tree.Build2(append([]particle.Particle2[float64]{}, ps...), []int{0, 1, 2}, tree.BuildOptions2{Order: moment.Dipole})
	require.NoError(t, err)

	require.Equal(t, root1.R, root2.R)
	require.Equal(t, root1.Size2, root2.Size2)
	require.Equal(t, root1.Moments, root2.Moments)
}

// TestBuild2TooFew checks the documented minimum.
func TestBuild2TooFew(t *testing.T) {
	_, _, err := tree.Build2([]particle.Particle2[float64]{mustParticle2(t, 0, 0, 1)}, []int{0}, tree.BuildOptions2{})
	require.ErrorIs(t, err, tree.ErrTooFewParticles)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
