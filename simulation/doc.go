// Package simulation wires the per-step loop of spec.md §5: integrate,
// constrain, report. One Driver owns a particle array, an accel.Options,
// a composition integrator, and a boundary constraint, and drives them
// through a fixed number of macro-steps, writing snapshots on the
// configured output_steps and invoking a per-iteration callback.
package simulation
