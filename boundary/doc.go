// Package boundary implements the two boundary constraints spec.md §4.K
// names: Open (a no-op) and Reflective (elastic velocity reversal at a
// box boundary), applied once per integrator macro-step.
package boundary
