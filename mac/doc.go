// Package mac implements the multipole-acceptance-criterion predicates of
// spec.md §4.H: the Barnes-Hut opening-angle test and the Salmon-Warren
// minimum-distance test, both parameterised by θ.
//
// A Predicate only ever sees a branch's already-aggregated bounding box,
// center, and size² (spec.md §4.G); it never touches individual particles,
// which is what lets the same two predicates serve both the 2D and 3D
// field evaluators in package field.
package mac
