// Package simtype parses and formats the compact simulation-type tag of
// spec.md §6: <B><D><P><MAC><EF><PSH>, e.g. "O2QOPC21" for an open 2D
// quadrupole opening-angle Plummer order-2-composition simulation.
package simtype
