package field

import (
	"math"

	"github.com/FreddieWitherden/teatree/mac"
	"github.com/FreddieWitherden/teatree/moment"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/tree"
	"github.com/FreddieWitherden/teatree/vecd"
	"github.com/FreddieWitherden/teatree/visitor"
)

// Evaluator3 is the 3D counterpart of Evaluator2.
type Evaluator3[S vecd.Real] struct {
	R         vecd.Vec3[S]
	Epsilon2  S
	Order     moment.Order
	MAC       mac.Predicate3[S]
	Particles []particle.Particle3[S]

	Leaves, Branches int
}

// NewEvaluator3 builds an evaluator for target r with softening epsilon.
func NewEvaluator3[S vecd.Real](r vecd.Vec3[S], epsilon S, order moment.Order, m mac.Predicate3[S], particles []particle.Particle3[S]) *Evaluator3[S] {
	return &Evaluator3[S]{R: r, Epsilon2: epsilon * epsilon, Order: order, MAC: m, Particles: particles}
}

// Evaluate walks root and returns the accumulated field at e.R.
func (e *Evaluator3[S]) Evaluate(root *tree.Branch3[S]) vecd.Vec3[S] {
	w := &visitor.ReducingWalker[int, *tree.Branch3[S], vecd.Vec3[S]]{
		Accept: func(b *tree.Branch3[S]) bool {
			return e.MAC.Accept(mac.Box3[S]{R: b.R, Min: b.Min, Max: b.Max, Size2: b.Size2})
		},
		OnLeaf:   e.leafField,
		OnBranch: e.branchField,
		Children: (*tree.Branch3[S]).Children,
		Combine:  func(a, b vecd.Vec3[S]) vecd.Vec3[S] { return a.Add(b) },
		Zero:     vecd.Zero3[S](),
	}
	out := w.Visit(visitor.BranchNode[int, *tree.Branch3[S]](root))
	e.Leaves, e.Branches = w.Leaves, w.Branches
	return out
}

// leafField is the 3D softened Coulomb field: q·R/(|R|²+ε²)^1.5. A
// self-interaction yields the zero vector because R=0.
func (e *Evaluator3[S]) leafField(i int) vecd.Vec3[S] {
	p := e.Particles[i]
	R := e.R.Sub(p.R)
	denom := R.SquaredNorm() + e.Epsilon2
	denom32 := denom * S(math.Sqrt(float64(denom)))
	return R.Scale(p.Q / denom32)
}

func (e *Evaluator3[S]) branchField(b *tree.Branch3[S]) vecd.Vec3[S] {
	R := e.R.Sub(b.R)
	invR := 1 / R.Norm()
	return Multipole3(b.Moments, R, invR, e.Order)
}

// Multipole3 evaluates the 3D multipole field of moments m at displacement
// R (= target − source) with invR = 1/|R|, through the given order.
// Quadrupole uses the trace form Σ(3RᵢRⱼ−δᵢⱼ|R|²)Qᵢⱼ·invR⁷/2 that spec.md
// §4.I specifies; there is no 3D octupole term (moment.Moments3 carries
// none, matching the original's incomplete 3D octupole — see DESIGN.md).
func Multipole3[S vecd.Real](m moment.Moments3[S], R vecd.Vec3[S], invR S, order moment.Order) vecd.Vec3[S] {
	invR3 := invR * invR * invR
	out := R.Scale(m.M * invR3)
	if order < moment.Dipole {
		return out
	}

	D := vecd.Vec3[S]{X: m.Dx, Y: m.Dy, Z: m.Dz}
	r2 := R.SquaredNorm()
	RdotD := R.Dot(D)
	invR5 := invR3 * invR * invR

	dip := R.Scale(3 * RdotD).Sub(D.Scale(r2)).Scale(invR5)
	out = out.Add(dip)
	if order < moment.Quadrupole {
		return out
	}

	invR7 := invR5 * invR * invR
	qx := (3*R.X*R.X-r2)*m.Qxx + 3*R.X*R.Y*m.Qxy + 3*R.X*R.Z*m.Qxz
	qy := 3*R.Y*R.X*m.Qxy + (3*R.Y*R.Y-r2)*m.Qyy + 3*R.Y*R.Z*m.Qyz
	qz := 3*R.Z*R.X*m.Qxz + 3*R.Z*R.Y*m.Qyz + (3*R.Z*R.Z-r2)*m.Qzz

	quad := vecd.Vec3[S]{X: qx, Y: qy, Z: qz}.Scale(invR7 * 0.5)
	return out.Add(quad)
}
