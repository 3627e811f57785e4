// Package config binds the recognized simulation options of spec.md §6
// (epsilon, theta, dt, nd, qtomcutoff, boundary bounds, output controls)
// via the functional-options idiom, validating them against InvalidParameter
// at bind time rather than deferring failures into the simulation loop.
package config
