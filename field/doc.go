// Package field implements the field-evaluator visitor of spec.md §4.I: a
// per-target tree traversal that combines a mac.Predicate with a truncated
// multipole expansion at accepted branches and a softened (Plummer)
// point-charge field at leaves.
//
// Softening only ever applies to leaf (particle-particle) interactions;
// branch contributions are always the exact geometric multipole term, per
// spec.md §4.I.
package field
