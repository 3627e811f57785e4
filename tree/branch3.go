package tree

import (
	"github.com/FreddieWitherden/teatree/moment"
	"github.com/FreddieWitherden/teatree/partition"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
	"github.com/FreddieWitherden/teatree/visitor"
)

// child3 is one of a Branch3's up-to-8 children.
type child3[S vecd.Real] struct {
	Br      *Branch3[S]
	LeafIdx int
}

func (c child3[S]) isLeaf() bool { return c.Br == nil }

// Branch3 is the 3D counterpart of Branch2.
type Branch3[S vecd.Real] struct {
	children []child3[S]

	R        vecd.Vec3[S]
	Min, Max vecd.Vec3[S]
	AbsQ     S
	Size2    S
	Moments  moment.Moments3[S]
}

// NumChildren reports how many of the up to 8 orthant slots are occupied.
func (b *Branch3[S]) NumChildren() int { return len(b.children) }

// Children returns b's children as dual-dispatch visitor nodes.
func (b *Branch3[S]) Children() []visitor.Node[int, *Branch3[S]] {
	out := make([]visitor.Node[int, *Branch3[S]], len(b.children))
	for i, c := range b.children {
		if c.isLeaf() {
			out[i] = visitor.LeafNode[int, *Branch3[S]](c.LeafIdx)
		} else {
			out[i] = visitor.BranchNode[int, *Branch3[S]](c.Br)
		}
	}
	return out
}

// BuildOptions3 configures a 3D tree build.
type BuildOptions3 struct {
	Order    moment.Order
	MaxDepth int
}

func (o BuildOptions3) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Build3 is the 3D counterpart of Build2.
func Build3[S vecd.Real](particles []particle.Particle3[S], idx []int, opts BuildOptions3) (*Branch3[S], *Pool3[S], error) {
	if len(idx) < 2 {
		return nil, nil, ErrTooFewParticles
	}
	pool := NewPool3[S](len(idx))
	pos := func(i int) vecd.Vec3[S] { return particles[i].R }
	root, err := buildBranch3(pool, particles, pos, idx, 0, len(idx), 0, opts)
	if err != nil {
		return nil, nil, err
	}
	return root, pool, nil
}

func buildBranch3[S vecd.Real](pool *Pool3[S], particles []particle.Particle3[S], pos partition.PositionFunc3[S], idx []int, lo, hi, level int, opts BuildOptions3) (*Branch3[S], error) {
	b := pool.alloc()

	splits := partition.Split3(idx, pos, lo, hi)

	type agg struct {
		q      S
		absQ   S
		r      vecd.Vec3[S]
		min    vecd.Vec3[S]
		max    vecd.Vec3[S]
		branch *Branch3[S]
	}
	var kids []agg

	for o := 0; o < 8; o++ {
		subLo, subHi := splits[o], splits[o+1]
		size := subHi - subLo
		switch {
		case size == 0:
			continue
		case size == 1:
			p := particles[idx[subLo]]
			b.children = append(b.children, child3[S]{LeafIdx: idx[subLo]})
			kids = append(kids, agg{q: p.Q, absQ: absS(p.Q), r: p.R, min: p.R, max: p.R})
		default:
			if level >= opts.maxDepth() {
				return nil, &partition.DegenerateTreeError{Count: size, MaxDepth: opts.maxDepth()}
			}
			child, err := buildBranch3(pool, particles, pos, idx, subLo, subHi, level+1, opts)
			if err != nil {
				return nil, err
			}
			b.children = append(b.children, child3[S]{Br: child})
			kids = append(kids, agg{q: child.Moments.M, absQ: child.AbsQ, r: child.R, min: child.Min, max: child.Max, branch: child})
		}
	}

	var sumAbsQ S
	var sumAbsQR vecd.Vec3[S]
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

	for _, k := range kids {
		r := b.R.Sub(k.r)
		if k.branch != nil {
			moment.ShiftChild3(&b.Moments, k.branch.Moments, r, opts.Order)
		} else {
			moment.ShiftChild3(&b.Moments, moment.LeafMoments3(k.q), r, opts.Order)
		}
	}

	return b, nil
}
