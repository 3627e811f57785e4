// Package tree builds and owns the spatial tree: a 2ᵈ-ary orthant-
// partitioned tree of particles (spec.md §4.E) with monopole through
// octupole moments aggregated at every branch (§4.G).
//
// A Tree is built once per acceleration evaluation from an arena-backed
// pool of Branch nodes and discarded before the next (spec.md §9): Pool
// is a slice-backed bump arena scoped to a single Build call, dropped in
// O(1) by simply letting it be garbage collected. Leaves are references
// into the caller's particle slice — the tree never copies or owns a
// particle.
//
// Construction computes each branch's bounding box and |charge|-weighted
// center in one pass over its children, then folds each child's already-
// computed moments into the parent (shifted to the parent's own center)
// in a second pass, exactly the two-pass aggregation teatree's
// src/particle/pseudo_particle.hpp and pseudo_particle_visitor.hpp use.
package tree
