package field

import (
	"github.com/FreddieWitherden/teatree/mac"
	"github.com/FreddieWitherden/teatree/moment"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/tree"
	"github.com/FreddieWitherden/teatree/vecd"
	"github.com/FreddieWitherden/teatree/visitor"
)

// Evaluator2 evaluates the 2D electric field at a fixed target position by
// traversing a tree: branches accepted by MAC contribute their multipole
// expansion, branches rejected by MAC are expanded, and leaves contribute
// a softened Coulomb field (spec.md §4.I).
type Evaluator2[S vecd.Real] struct {
	R         vecd.Vec2[S]
	Epsilon2  S
	Order     moment.Order
	MAC       mac.Predicate2[S]
	Particles []particle.Particle2[S]

	Leaves, Branches int
}

// NewEvaluator2 builds an evaluator for target r with softening epsilon.
func NewEvaluator2[S vecd.Real](r vecd.Vec2[S], epsilon S, order moment.Order, m mac.Predicate2[S], particles []particle.Particle2[S]) *Evaluator2[S] {
	return &Evaluator2[S]{R: r, Epsilon2: epsilon * epsilon, Order: order, MAC: m, Particles: particles}
}

// Evaluate walks root and returns the accumulated field at e.R. Visitation
// counters are left in e.Leaves/e.Branches.
func (e *Evaluator2[S]) Evaluate(root *tree.Branch2[S]) vecd.Vec2[S] {
	w := &visitor.ReducingWalker[int, *tree.Branch2[S], vecd.Vec2[S]]{
		Accept: func(b *tree.Branch2[S]) bool {
			return e.MAC.Accept(mac.Box2[S]{R: b.R, Min: b.Min, Max: b.Max, Size2: b.Size2})
		},
		OnLeaf:   e.leafField,
		OnBranch: e.branchField,
		Children: (*tree.Branch2[S]).Children,
		Combine:  func(a, b vecd.Vec2[S]) vecd.Vec2[S] { return a.Add(b) },
		Zero:     vecd.Zero2[S](),
	}
	out := w.Visit(visitor.BranchNode[int, *tree.Branch2[S]](root))
	e.Leaves, e.Branches = w.Leaves, w.Branches
	return out
}

// leafField is the softened Coulomb field due to one particle. A
// self-interaction (target == source) yields the zero vector because R=0.
func (e *Evaluator2[S]) leafField(i int) vecd.Vec2[S] {
	p := e.Particles[i]
	R := e.R.Sub(p.R)
	denom := R.SquaredNorm() + e.Epsilon2
	return R.Scale(p.Q / denom)
}

// branchField is the truncated multipole expansion of a branch's
// aggregated moments, evaluated at e.R (spec.md §4.I).
func (e *Evaluator2[S]) branchField(b *tree.Branch2[S]) vecd.Vec2[S] {
	R := e.R.Sub(b.R)
	invR2 := 1 / R.SquaredNorm()
	return Multipole2(b.Moments, R, invR2, e.Order)
}

// Multipole2 evaluates the 2D multipole field of moments m at displacement
// R (= target − source) with invR2 = 1/|R|², through the given order.
func Multipole2[S vecd.Real](m moment.Moments2[S], R vecd.Vec2[S], invR2 S, order moment.Order) vecd.Vec2[S] {
	out := R.Scale(m.M * invR2)
	if order < moment.Dipole {
		return out
	}

	invR4 := invR2 * invR2
	Dx := vecd.Vec2[S]{X: m.Dx, Y: m.Dy}
	Dy := Dx.YX()
	x, y := R, R.YX()

	dip := x.Mul(x).Sub(y.Mul(y)).Mul(Dx).
		Add(x.Mul(y).Scale(2).Mul(Dy)).
		Scale(invR4)
	out = out.Add(dip)
	if order < moment.Quadrupole {
		return out
	}

	invR6 := invR4 * invR2
	Qxx := vecd.Vec2[S]{X: m.Qxx, Y: m.Qyy}
	Qyy := Qxx.YX()
	Qxy := vecd.Vec2[S]{X: m.Qxy, Y: m.Qxy}
	x2 := x.Mul(x)
	y2 := x2.YX()

	quad := x.Mul(x2.Sub(y2.Scale(3))).Mul(Qxx.Sub(Qyy)).
		Add(y.Mul(Qxy).Mul(x2.Scale(6).Sub(y2.Scale(2)))).
		Scale(invR6)
	out = out.Add(quad)
	if order < moment.Octupole {
		return out
	}

	// The 2D octupole moment is traceless: Oyyy = -Oxxy, Oxyy = -Oxxx
	// (see moment.Moments2's documented layout).
	invR8 := invR6 * invR2
	Oxxx := vecd.Vec2[S]{X: m.Oxxx, Y: -m.Oxxy}
	Oxxy := vecd.Vec2[S]{X: m.Oxxy, Y: -m.Oxxx}
	Oyyy := Oxxx.YX()
	Oxyy := Oxxy.YX()

	a := y2.Sub(x.Mul(y).Scale(2)).Sub(x2)
	bb := y2.Add(x.Mul(y).Scale(2)).Sub(x2)
	oct := Oxxx.Sub(Oxyy.Scale(3)).Mul(a).Mul(bb).
		Add(x.Mul(y).Mul(y2.Sub(x2)).Scale(4).Mul(Oyyy.Sub(Oxxy.Scale(3)))).
		Scale(invR8)
	return out.Add(oct)
}
