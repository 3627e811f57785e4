package boundary

import (
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

// Constraint2 applies a boundary rule to every particle's velocity at the
// end of a macro-step (spec.md §4.K).
type Constraint2[S vecd.Real] interface {
	Apply(particles []particle.Particle2[S])
}

// Open2 is the no-op boundary: particles move freely.
type Open2[S vecd.Real] struct{}

// Apply implements Constraint2.
func (Open2[S]) Apply([]particle.Particle2[S]) {}

// Reflective2 elastically reflects a particle's velocity on any axis where
// it has crossed [Min, Max] while still moving outward, without clamping
// position (spec.md §4.K).
type Reflective2[S vecd.Real] struct {
	Min, Max S
}

// Apply implements Constraint2.
func (b Reflective2[S]) Apply(particles []particle.Particle2[S]) {
	for i := range particles {
		p := &particles[i]
		reflectAxis(p.R.X, &p.V.X, b.Min, b.Max)
		reflectAxis(p.R.Y, &p.V.Y, b.Min, b.Max)
	}
}

func reflectAxis[S vecd.Real](r S, v *S, min, max S) {
	if r < min && *v < 0 {
		*v = -*v
	} else if r > max && *v > 0 {
		*v = -*v
	}
}
