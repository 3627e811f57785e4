package tree

import (
	"github.com/FreddieWitherden/teatree/moment"
	"github.com/FreddieWitherden/teatree/partition"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
	"github.com/FreddieWitherden/teatree/visitor"
)

// child2 is one of a Branch2's up-to-4 children: either a leaf reference
// (particle index, Br == nil) or an owning pointer to a sub-branch.
type child2[S vecd.Real] struct {
	Br      *Branch2[S]
	LeafIdx int
}

func (c child2[S]) isLeaf() bool { return c.Br == nil }

// Branch2 is one node of a 2D spatial tree: its bounding box, its
// |charge|-weighted center, and its multipole moments shifted to that
// center (spec.md §3, §4.G).
type Branch2[S vecd.Real] struct {
	children []child2[S]

	R        vecd.Vec2[S]
	Min, Max vecd.Vec2[S]
	AbsQ     S
	Size2    S
	Moments  moment.Moments2[S]
}

// NumChildren reports how many of the up to 4 orthant slots are occupied.
func (b *Branch2[S]) NumChildren() int { return len(b.children) }

// Children returns b's children as dual-dispatch visitor nodes, leaf
// payload being the particle index.
func (b *Branch2[S]) Children() []visitor.Node[int, *Branch2[S]] {
	out := make([]visitor.Node[int, *Branch2[S]], len(b.children))
	for i, c := range b.children {
		if c.isLeaf() {
			out[i] = visitor.LeafNode[int, *Branch2[S]](c.LeafIdx)
		} else {
			out[i] = visitor.BranchNode[int, *Branch2[S]](c.Br)
		}
	}
	return out
}

// BuildOptions2 configures a 2D tree build.
type BuildOptions2 struct {
	Order    moment.Order
	MaxDepth int // 0 means DefaultMaxDepth
}

func (o BuildOptions2) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Build2 constructs a 2D tree over particles[idx[0]], ..., particles[idx[n-1]],
// permuting idx in place (spec.md §4.D, §4.E). idx must hold at least 2
// entries. The returned Pool2 owns every Branch2 allocated during the
// build and must be kept alive as long as the returned *Branch2 is used.
func Build2[S vecd.Real](particles []particle.Particle2[S], idx []int, opts BuildOptions2) (*Branch2[S], *Pool2[S], error) {
	if len(idx) < 2 {
		return nil, nil, ErrTooFewParticles
	}
	pool := NewPool2[S](len(idx))
	pos := func(i int) vecd.Vec2[S] { return particles[i].R }
	root, err := buildBranch2(pool, particles, pos, idx, 0, len(idx), 0, opts)
	if err != nil {
		return nil, nil, err
	}
	return root, pool, nil
}

func buildBranch2[S vecd.Real](pool *Pool2[S], particles []particle.Particle2[S], pos partition.PositionFunc2[S], idx []int, lo, hi, level int, opts BuildOptions2) (*Branch2[S], error) {
	b := pool.alloc()

	splits := partition.Split2(idx, pos, lo, hi)

	type agg struct {
		q      S
		absQ   S
		r      vecd.Vec2[S]
		min    vecd.Vec2[S]
		max    vecd.Vec2[S]
		branch *Branch2[S]
	}
	var kids []agg

	for o := 0; o < 4; o++ {
		subLo, subHi := splits[o], splits[o+1]
		size := subHi - subLo
		switch {
		case size == 0:
			continue
		case size == 1:
			p := particles[idx[subLo]]
			b.children = append(b.children, child2[S]{LeafIdx: idx[subLo]})
			kids = append(kids, agg{q: p.Q, absQ: absS(p.Q), r: p.R, min: p.R, max: p.R})
		default:
			if level >= opts.maxDepth() {
				return nil, &partition.DegenerateTreeError{Count: size, MaxDepth: opts.maxDepth()}
			}
			child, err := buildBranch2(pool, particles, pos, idx, subLo, subHi, level+1, opts)
			if err != nil {
				return nil, err
			}
			b.children = append(b.children, child2[S]{Br: child})
			kids = append(kids, agg{q: child.Moments.M, absQ: child.AbsQ, r: child.R, min: child.Min, max: child.Max, branch: child})
		}
	}

	// Pass 1: center of absolute charge, charge sum, bounding box.
	var sumAbsQ S
	var sumAbsQR vecd.Vec2[S]
	bmin, bmax := kids[0].min, kids[0].max
	for _, k := range kids {
		sumAbsQ += k.absQ
		sumAbsQR = sumAbsQR.Add(k.r.Scale(k.absQ))
		bmin = bmin.Min(k.min)
		bmax = bmax.Max(k.max)
	}
	b.R = sumAbsQR.Scale(1 / sumAbsQ)
	b.AbsQ = sumAbsQ
	b.Min, b.Max = bmin, bmax
	diag := bmax.Sub(bmin)
	b.Size2 = diag.SquaredNorm()

	// Pass 2: fold each child's moments, shifted to b.R, into b.Moments.
	// r is the displacement from the child's own center to the parent's
	// center (R_parent - R_child), per shift_2d.hpp's convention.
	for _, k := range kids {
		r := b.R.Sub(k.r)
		if k.branch != nil {
			moment.ShiftChild2(&b.Moments, k.branch.Moments, r, opts.Order)
		} else {
			moment.ShiftChild2(&b.Moments, moment.LeafMoments2(k.q), r, opts.Order)
		}
	}

	return b, nil
}

func absS[S vecd.Real](v S) S {
	if v < 0 {
		return -v
	}
	return v
}
