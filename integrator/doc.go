// Package integrator implements the symmetric composition position-Verlet
// integrator of spec.md §4.K: orders 2, 4, and 6, built from a symmetric
// coefficient vector expanded into precomputed per-sub-step h/h' arrays.
package integrator
