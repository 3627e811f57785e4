package tree

import "github.com/FreddieWitherden/teatree/vecd"

// Pool3 is the 3D counterpart of Pool2.
type Pool3[S vecd.Real] struct {
	nodes []Branch3[S]
}

// NewPool3 preallocates capacity for capacityHint branches.
func NewPool3[S vecd.Real](capacityHint int) *Pool3[S] {
	if capacityHint < 1 {
		capacityHint = 1
	}
	return &Pool3[S]{nodes: make([]Branch3[S], 0, capacityHint)}
}

func (p *Pool3[S]) alloc() *Branch3[S] {
	p.nodes = append(p.nodes, Branch3[S]{})
	return &p.nodes[len(p.nodes)-1]
}

// Len reports how many branches have been allocated from the pool so far.
func (p *Pool3[S]) Len() int { return len(p.nodes) }
