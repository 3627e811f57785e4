package accel

import "time"

// IterationStats is the per-step instrumentation spec.md §4.J requires:
// tree-build and evaluation wall time, and total leaves/branches visited
// summed across every target particle.
type IterationStats struct {
	TreeBuild     time.Duration
	Evaluation    time.Duration
	LeavesVisited int64
	BranchVisited int64
}
