package integrator

import (
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

// AccelFunc3 is the 3D counterpart of AccelFunc2.
type AccelFunc3[S vecd.Real] func(particles []particle.Particle3[S]) ([]vecd.Vec3[S], error)

// Composition3 is the 3D counterpart of Composition2.
type Composition3[S vecd.Real] struct {
	hg, hgp []S
}

// NewComposition3 is the 3D counterpart of NewComposition2.
func NewComposition3[S vecd.Real](gamma []S, dt S) *Composition3[S] {
	hg, hgp := hAndHPrime(gamma, dt)
	return &Composition3[S]{hg: hg, hgp: hgp}
}

// NewComposition3FromOrder is the 3D counterpart of NewComposition2FromOrder.
func NewComposition3FromOrder[S vecd.Real](order int, dt S) (*Composition3[S], error) {
	gamma, err := gammaForOrder[S](order)
	if err != nil {
		return nil, err
	}
	return NewComposition3(gamma, dt), nil
}

// Step is the 3D counterpart of Composition2.Step.
func (c *Composition3[S]) Step(particles []particle.Particle3[S], t S, accel AccelFunc3[S]) (S, error) {
	advance3(particles, c.hgp[0])

	n := len(c.hg)
	for i := 0; i < n; i++ {
		a, err := accel(particles)
		if err != nil {
			return t, err
		}
		for j := range particles {
			particles[j].V = particles[j].V.Add(a[j].Scale(c.hg[i]))
		}
		advance3(particles, c.hgp[i+1])
	}

	return t + c.dt(), nil
}

func (c *Composition3[S]) dt() S {
	var sum S
	for _, h := range c.hgp {
		sum += h
	}
	return sum
}

func advance3[S vecd.Real](particles []particle.Particle3[S], h S) {
	for i := range particles {
		particles[i].R = particles[i].R.Add(particles[i].V.Scale(h))
	}
}
