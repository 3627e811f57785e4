package partition

import "github.com/FreddieWitherden/teatree/vecd"

// PositionFunc3 returns the position of the particle stored at buffer
// index i.
type PositionFunc3[S vecd.Real] func(i int) vecd.Vec3[S]

// Split3 partitions idx[lo:hi] in place into 8 contiguous orthant ranges
// about the midpoint of the bounding box of idx[lo:hi], returning the 9
// split points s0=lo..s8=hi. Partitioning proceeds axis by axis: x first,
// then y independently within each x-half, then z independently within
// each of the four resulting quarters.
func Split3[S vecd.Real](idx []int, pos PositionFunc3[S], lo, hi int) [9]int {
	var splits [9]int
	splits[0] = lo
	splits[8] = hi

	mid := boundingMidpoint3(idx, pos, lo, hi)

	xMid := stablePartition(idx, lo, hi, func(i int) bool { return pos(i).X < mid.X })
	splits[4] = xMid

	// Within [lo, xMid): split on y, then each y-half on z.
	yLL := stablePartition(idx, lo, xMid, func(i int) bool { return pos(i).Y < mid.Y })
	splits[2] = yLL
	splits[1] = stablePartition(idx, lo, yLL, func(i int) bool { return pos(i).Z < mid.Z })
	splits[3] = stablePartition(idx, yLL, xMid, func(i int) bool { return pos(i).Z < mid.Z })

	// Within [xMid, hi): split on y, then each y-half on z.
	yRL := stablePartition(idx, xMid, hi, func(i int) bool { return pos(i).Y < mid.Y })
	splits[6] = yRL
	splits[5] = stablePartition(idx, xMid, yRL, func(i int) bool { return pos(i).Z < mid.Z })
	splits[7] = stablePartition(idx, yRL, hi, func(i int) bool { return pos(i).Z < mid.Z })

	return splits
}

func boundingMidpoint3[S vecd.Real](idx []int, pos PositionFunc3[S], lo, hi int) vecd.Vec3[S] {
	min, max := pos(idx[lo]), pos(idx[lo])
	for k := lo + 1; k < hi; k++ {
		p := pos(idx[k])
		min = min.Min(p)
		max = max.Max(p)
	}
	return min.Add(max).Scale(0.5)
}
