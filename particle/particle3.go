package particle

import "github.com/FreddieWitherden/teatree/vecd"

// Particle3 is a point charge in 3D; see Particle2 for field semantics.
type Particle3[S vecd.Real] struct {
	R, V vecd.Vec3[S]
	Q    S
	QtoM S
}

// NewParticle3 constructs a particle with mass m > 0 and charge q != 0,
// returning ErrNonPositiveMass or ErrZeroCharge otherwise.
func NewParticle3[S vecd.Real](r, v vecd.Vec3[S], q, m S) (Particle3[S], error) {
	if m <= 0 {
		return Particle3[S]{}, ErrNonPositiveMass
	}
	if q == 0 {
		return Particle3[S]{}, ErrZeroCharge
	}
	return Particle3[S]{R: r, V: v, Q: q, QtoM: q / m}, nil
}
