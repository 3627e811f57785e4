package moment

import "github.com/FreddieWitherden/teatree/vecd"

// Order is the multipole truncation order: 0 = monopole, 1 = +dipole,
// 2 = +quadrupole, 3 = +octupole. Orders above 3 are a Non-goal (spec.md §1).
type Order int

const (
	Monopole   Order = 0
	Dipole     Order = 1
	Quadrupole Order = 2
	Octupole   Order = 3
)

// Moments2 is the flat multipole moment record in 2D, through octupole.
type Moments2[S vecd.Real] struct {
	M            S // monopole: signed sum of charge
	Dx, Dy       S // dipole
	Qxx, Qyy     S // quadrupole, diagonal
	Qxy          S // quadrupole, off-diagonal
	Oxxx, Oxxy   S // octupole, independent components (traceless)
}

// LeafMoments2 returns the moment record for a bare point charge q: a pure
// monopole, M=q and every higher moment zero (a particle's own moments
// about its own position are zero by definition; ShiftChild2 is what gives
// it nonzero dipole/quadrupole/octupole once folded into a parent whose
// center differs from the particle's position).
func LeafMoments2[S vecd.Real](q S) Moments2[S] {
	return Moments2[S]{M: q}
}

// ShiftChild2 folds a child's moments d (already expressed about the
// child's own center) into the parent accumulator p, shifted by
// r = parent.center - child.center, through order. This is the Cartesian
// expansion transcribed from teatree's src/particle/moments/shift_2d.hpp.
func ShiftChild2[S vecd.Real](p *Moments2[S], d Moments2[S], r vecd.Vec2[S], order Order) {
	p.M += d.M

	if order < Dipole {
		return
	}
	dDip := vecd.Vec2[S]{X: d.Dx, Y: d.Dy}
	pDip := dDip.Sub(r.Scale(d.M))
	p.Dx += pDip.X
	p.Dy += pDip.Y

	if order < Quadrupole {
		return
	}
	// p.Qxx += d.Qxx - 2*r.x*d.Dx + r.x^2*d.M   (and symmetric for Qyy)
	p.Qxx += d.Qxx - 2*r.X*d.Dx + r.X*r.X*d.M
	p.Qyy += d.Qyy - 2*r.Y*d.Dy + r.Y*r.Y*d.M
	p.Qxy += d.Qxy - r.X*d.Dy - r.Y*d.Dx + r.X*r.Y*d.M

	if order < Octupole {
		return
	}
	// The octupole is kept as the independent components of its traceless
	// part: Oxxx + i·Oxxy = A3/4 with A3 = Σq(δx + i·δy)³. In complex form
	// A3 shifts as A3 - 3r·A2 + 3r²·A1 - r³·M, where A2 = (Qxx-Qyy) + 2i·Qxy
	// and A1 = Dx + i·Dy.
	a2r, a2i := d.Qxx-d.Qyy, 2*d.Qxy
	r2r, r2i := r.X*r.X-r.Y*r.Y, 2*r.X*r.Y
	r3r, r3i := r2r*r.X-r2i*r.Y, r2r*r.Y+r2i*r.X
	p.Oxxx += d.Oxxx - 0.75*(r.X*a2r-r.Y*a2i) + 0.75*(r2r*d.Dx-r2i*d.Dy) - 0.25*r3r*d.M
	p.Oxxy += d.Oxxy - 0.75*(r.X*a2i+r.Y*a2r) + 0.75*(r2r*d.Dy+r2i*d.Dx) - 0.25*r3i*d.M
}
