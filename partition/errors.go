package partition

import "fmt"

// DegenerateTreeError is returned when the partitioner cannot separate a
// range of particles after MaxDepth recursive splits: they are coincident
// to machine precision (spec.md §4.D, §7).
type DegenerateTreeError struct {
	Count    int
	MaxDepth int
}

func (e *DegenerateTreeError) Error() string {
	return fmt.Sprintf("partition: %d particles remain indistinguishable after %d levels of recursion (degenerate tree)", e.Count, e.MaxDepth)
}

// DefaultMaxDepth is the recursion-depth bound spec.md §4.D names as the
// default before a coincident-position range is declared degenerate.
const DefaultMaxDepth = 64
