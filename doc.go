// Package teatree is an N-body electrostatic (Coulomb/Plummer) simulator
// for collisionless plasmas of point charges in 2D or 3D.
//
// 🚀 What is teatree?
//
//	A Barnes–Hut-style hierarchical tree code with multipole acceleration,
//	reducing each force evaluation from O(N²) to O(N log N):
//
//	  • Spatial tree: 2ᵈ-ary orthant partitioning with dual-dispatch visitors
//	  • Multipole aggregation: monopole through octupole moments
//	  • Field evaluation: opening-angle or min-distance MAC + softened Coulomb
//	  • Symplectic integration: composition position-Verlet, orders 2/4/6
//
// ✨ Why choose teatree?
//
//   - Focused       — a tree code and an integrator, nothing more
//   - Parallel      — the per-particle force sweep is data-parallel
//   - Deterministic — a fixed particle order yields a bit-reproducible tree
//   - Pure Go       — no cgo
//
// Everything is organized under small root-level packages:
//
//	vecd/        — fixed-size 2D/3D vector primitives
//	particle/    — the Particle record
//	moment/      — multipole moment records and shift formulas
//	partition/   — orthant partitioner
//	visitor/     — dual-dispatch leaf/branch visitor framework
//	tree/        — pooled branch tree, upward moment aggregation
//	mac/         — multipole acceptance criteria (opening-angle, min-distance)
//	field/       — field evaluator (multipole + softened Coulomb)
//	accel/       — parallel per-particle acceleration pass
//	boundary/    — open and reflective boundary constraints
//	integrator/  — composition position-Verlet pusher (orders 2, 4, 6)
//	simtype/     — simulation-type tag parsing and registry
//	config/      — simulation options and validation
//	teatreeio/   — particle input/output text format
//	simulation/  — the per-step driver wiring all of the above
//	cmd/teatree/ — a thin CLI front-end
//
// This package itself holds no code; it exists to document the module.
package teatree
