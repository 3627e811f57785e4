// Package vecd provides fixed-size 2D and 3D vectors with elementwise
// arithmetic, norms, and componentwise min/max, generic over the
// underlying floating-point precision.
//
// Vec2 and Vec3 are plain value types (no heap allocation, no aliasing);
// every method returns a new vector rather than mutating its receiver,
// matching how the rest of the module treats positions and velocities as
// immutable snapshots between integrator steps.
//
// The scalar type parameter S is constrained to golang.org/x/exp/constraints.Float,
// so the same source compiles a float64 ("double", the default) or float32
// ("single") build without duplication, per spec.md §3's vector definition.
package vecd
