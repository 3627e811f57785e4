package particle

import "github.com/FreddieWitherden/teatree/vecd"

// Particle2 is a point charge in 2D: position R and velocity V are mutated
// in place once per integrator step; Q (charge) and QtoM (charge/mass) are
// fixed at construction and read-only thereafter.
type Particle2[S vecd.Real] struct {
	R, V Vec2S[S]
	Q    S
	QtoM S
}

// Vec2S is an alias kept local to this package so callers don't need to
// import vecd just to name the position/velocity type.
type Vec2S[S vecd.Real] = vecd.Vec2[S]

// NewParticle2 constructs a particle with mass m > 0 and charge q != 0,
// returning ErrNonPositiveMass or ErrZeroCharge otherwise.
func NewParticle2[S vecd.Real](r, v vecd.Vec2[S], q, m S) (Particle2[S], error) {
	if m <= 0 {
		return Particle2[S]{}, ErrNonPositiveMass
	}
	if q == 0 {
		return Particle2[S]{}, ErrZeroCharge
	}
	return Particle2[S]{R: r, V: v, Q: q, QtoM: q / m}, nil
}
