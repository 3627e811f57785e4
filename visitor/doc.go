// Package visitor implements the dual-dispatch traversal framework over a
// tree of Leaf and Branch nodes (spec.md §4.F): a side-effecting Walker
// invoked on every visited node, and a value-returning ReducingWalker
// whose branch value is a reduction of its children's values.
//
// Node[L, B] is a tagged union (a leaf payload L or a branch payload B)
// rather than an
// interface with runtime-dispatched methods — spec.md §9 explicitly
// prefers a sum type here, which is both faster and avoids allocating an
// interface value per visit.
//
// The Accept/OnLeaf/OnBranch shape mirrors the teacher's own traversal
// hook idiom (bfs.BFSOptions.OnVisit, dfs.DFSOptions.OnVisit): a plain
// callback struct threaded through the walk, rather than a classic
// visitor interface with a method per node kind.
package visitor
