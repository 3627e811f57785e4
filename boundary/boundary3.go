package boundary

import (
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

// Constraint3 is the 3D counterpart of Constraint2.
type Constraint3[S vecd.Real] interface {
	Apply(particles []particle.Particle3[S])
}

// Open3 is the 3D counterpart of Open2.
type Open3[S vecd.Real] struct{}

// Apply implements Constraint3.
func (Open3[S]) Apply([]particle.Particle3[S]) {}

// Reflective3 is the 3D counterpart of Reflective2.
type Reflective3[S vecd.Real] struct {
	Min, Max S
}

// Apply implements Constraint3.
func (b Reflective3[S]) Apply(particles []particle.Particle3[S]) {
	for i := range particles {
		p := &particles[i]
		reflectAxis(p.R.X, &p.V.X, b.Min, b.Max)
		reflectAxis(p.R.Y, &p.V.Y, b.Min, b.Max)
		reflectAxis(p.R.Z, &p.V.Z, b.Min, b.Max)
	}
}
