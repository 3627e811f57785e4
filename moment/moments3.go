package moment

import "github.com/FreddieWitherden/teatree/vecd"

// Moments3 is the flat multipole moment record in 3D, through quadrupole
// order. It has no octupole components; field.Multipole3 has no 3D
// octupole term either.
type Moments3[S vecd.Real] struct {
	M                  S // monopole
	Dx, Dy, Dz         S // dipole
	Qxx, Qyy, Qzz      S // quadrupole, diagonal
	Qxy, Qxz, Qyz      S // quadrupole, off-diagonal
}

// LeafMoments3 returns the moment record for a bare point charge q.
func LeafMoments3[S vecd.Real](q S) Moments3[S] {
	return Moments3[S]{M: q}
}

// ShiftChild3 folds a child's moments d into the parent accumulator p,
// shifted by r = parent.center - child.center, through order. Transcribed
// from teatree's src/particle/moments/shift_3d.hpp.
func ShiftChild3[S vecd.Real](p *Moments3[S], d Moments3[S], r vecd.Vec3[S], order Order) {
	p.M += d.M

	if order < Dipole {
		return
	}
	dDip := vecd.Vec3[S]{X: d.Dx, Y: d.Dy, Z: d.Dz}
	pDip := dDip.Sub(r.Scale(d.M))
	p.Dx += pDip.X
	p.Dy += pDip.Y
	p.Dz += pDip.Z

	if order < Quadrupole {
		return
	}
	// Diagonal: Qii += d.Qii - 2*r_i*D_i + r_i^2*d.M
	p.Qxx += d.Qxx - 2*r.X*d.Dx + r.X*r.X*d.M
	p.Qyy += d.Qyy - 2*r.Y*d.Dy + r.Y*r.Y*d.M
	p.Qzz += d.Qzz - 2*r.Z*d.Dz + r.Z*r.Z*d.M

	// Off-diagonal: Qij += d.Qij - r_i*D_j - r_j*D_i + r_i*r_j*d.M
	p.Qxy += d.Qxy - r.X*d.Dy - r.Y*d.Dx + r.X*r.Y*d.M
	p.Qxz += d.Qxz - r.X*d.Dz - r.Z*d.Dx + r.X*r.Z*d.M
	p.Qyz += d.Qyz - r.Y*d.Dz - r.Z*d.Dy + r.Y*r.Z*d.M
}
