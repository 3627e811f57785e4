// Package accel implements the acceleration pass of spec.md §4.J: build a
// tree once per step, then evaluate the field at every particle position
// in parallel with dynamic scheduling, scale by charge/mass and by the
// fixed 1/(d·N_D) normalization, and report visitation/timing statistics.
package accel
