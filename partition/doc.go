// Package partition implements the orthant partitioner (spec.md §4.D):
// given a range of particle indices, it splits the range into 2ᵈ
// contiguous sub-ranges, one per orthant relative to the midpoint of the
// range's axis-aligned bounding box.
//
// Partitioning never moves particle records: it permutes a shared index
// buffer in place, recursively, one axis at a time (first x, then within
// each half independently y, then within each quarter independently z),
// exactly mirroring teatree's src/particle/partition.hpp compile-time
// recursion — written out here as explicit per-axis partition calls in
// Split2 and Split3 since Go has no recursion over a constant dimension.
package partition
