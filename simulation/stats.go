package simulation

import "time"

// IterationStats is spec.md §6's per-iteration statistic tuple:
// (tree_build_time_s, eval_time_s, other_time_s, leaves_visited,
// branches_visited, accel_evals).
type IterationStats struct {
	TreeBuildTime   time.Duration
	EvalTime        time.Duration
	OtherTime       time.Duration
	LeavesVisited   int64
	BranchesVisited int64
	AccelEvals      int
}
