// Package particle defines the Particle record used throughout teatree:
// a position and velocity that are overwritten every integrator step, and
// a charge and charge-to-mass ratio that are fixed at construction.
//
// Particles are created once when the input stream is parsed (see
// teatreeio) and live for the whole simulation; the tree built over them
// each step holds leaf references into the caller's particle slice, never
// a copy (spec.md §9, "leaves are references... never owned by the tree").
package particle
