package partition

import "github.com/FreddieWitherden/teatree/vecd"

// PositionFunc2 returns the position of the particle stored at buffer
// index i (not the permuted index — the partitioner operates on a
// permutation of particle indices, never the particles themselves).
type PositionFunc2[S vecd.Real] func(i int) vecd.Vec2[S]

// Split2 partitions idx[lo:hi] in place into 4 contiguous orthant ranges
// about the midpoint of the bounding box of the positions in idx[lo:hi],
// returning the 5 split points s0=lo..s4=hi such that idx[s_k:s_k+1] all
// lie in orthant k. Orthants are numbered by bit pattern: bit 1 set iff
// x >= mid.X, bit 0 set iff y >= mid.Y.
func Split2[S vecd.Real](idx []int, pos PositionFunc2[S], lo, hi int) [5]int {
	var splits [5]int
	splits[0] = lo
	splits[4] = hi

	mid := boundingMidpoint2(idx, pos, lo, hi)

	// First split the whole range on x, then split each half on y.
	xMid := stablePartition(idx, lo, hi, func(i int) bool { return pos(i).X < mid.X })
	splits[2] = xMid

	yLeft := stablePartition(idx, lo, xMid, func(i int) bool { return pos(i).Y < mid.Y })
	splits[1] = yLeft

	yRight := stablePartition(idx, xMid, hi, func(i int) bool { return pos(i).Y < mid.Y })
	splits[3] = yRight

	return splits
}

func boundingMidpoint2[S vecd.Real](idx []int, pos PositionFunc2[S], lo, hi int) vecd.Vec2[S] {
	min, max := pos(idx[lo]), pos(idx[lo])
	for k := lo + 1; k < hi; k++ {
		p := pos(idx[k])
		min = min.Min(p)
		max = max.Max(p)
	}
	return min.Add(max).Scale(0.5)
}
