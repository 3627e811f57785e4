package integrator

import (
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

// AccelFunc2 evaluates the acceleration on every particle given its current
// position; callers typically close over a tree build + field evaluation.
type AccelFunc2[S vecd.Real] func(particles []particle.Particle2[S]) ([]vecd.Vec2[S], error)

// Composition2 is a symmetric composition position-Verlet integrator over
// 2D particles, parameterized by precomputed per-sub-step coefficients.
type Composition2[S vecd.Real] struct {
	hg, hgp []S
}

// NewComposition2 builds a composition integrator from the half-length base
// coefficient vector gamma and a fixed macro-step dt (spec.md §4.K).
func NewComposition2[S vecd.Real](gamma []S, dt S) *Composition2[S] {
	hg, hgp := hAndHPrime(gamma, dt)
	return &Composition2[S]{hg: hg, hgp: hgp}
}

// NewComposition2FromOrder looks up the spec's gamma table for order (2, 4,
// or 6) and builds a Composition2 from it.
func NewComposition2FromOrder[S vecd.Real](order int, dt S) (*Composition2[S], error) {
	gamma, err := gammaForOrder[S](order)
	if err != nil {
		return nil, err
	}
	return NewComposition2(gamma, dt), nil
}

// Step advances particles by one macro-step of size dt starting at time t,
// calling accel once per sub-step, and returns the new time. Positions and
// velocities are mutated in place. accel is expected to return acceleration
// (already scaled by charge/mass and the Debye normalization), not raw
// field, matching accel.Evaluate2's output.
func (c *Composition2[S]) Step(particles []particle.Particle2[S], t S, accel AccelFunc2[S]) (S, error) {
	advance(particles, c.hgp[0])

	n := len(c.hg)
	for i := 0; i < n; i++ {
		a, err := accel(particles)
		if err != nil {
			return t, err
		}
		for j := range particles {
			particles[j].V = particles[j].V.Add(a[j].Scale(c.hg[i]))
		}
		advance(particles, c.hgp[i+1])
	}

	return t + c.dt(), nil
}

func (c *Composition2[S]) dt() S {
	var sum S
	for _, h := range c.hgp {
		sum += h
	}
	return sum
}

func advance[S vecd.Real](particles []particle.Particle2[S], h S) {
	for i := range particles {
		particles[i].R = particles[i].R.Add(particles[i].V.Scale(h))
	}
}
