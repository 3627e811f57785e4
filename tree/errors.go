package tree

import "errors"

// ErrTooFewParticles is returned by Build when fewer than 2 particles are
// given: a branch always contains at least 2 distinct positions (spec.md
// §3's invariants); a single particle has no tree, just itself.
var ErrTooFewParticles = errors.New("tree: build requires at least 2 particles")

// DefaultMaxDepth is the recursion-depth bound spec.md §4.D names before a
// range of indistinguishable positions is declared a DegenerateTree.
const DefaultMaxDepth = 64
