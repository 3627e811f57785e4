// Package moment defines the multipole moment records (monopole through
// octupole) aggregated at every tree branch, and the shift formulas that
// translate a child's moments to its parent's center of absolute charge.
//
// One flat record type is carried per dimension (Moments2, Moments3); the
// configured multipole order (spec.md's p in {0,1,2,3}) selects which
// fields a given build populates — fields beyond the configured order are
// left zero and never read, which is a cheaper monomorphisation than one
// Go type per (dimension, order) pair while producing identical external
// behavior (see DESIGN.md's "moment" entry).
//
// The component layout is fixed as follows (spec.md §9's Open Question):
// 2D carries the raw quadrupole sums Qxx, Qyy, Qxy (the field uses only
// Qxx-Qyy and Qxy) and the two independent components Oxxx, Oxxy of the
// traceless octupole (Oxyy = -Oxxx and Oyyy = -Oxxy, the identities used
// in the field formulas); 3D carries the full symmetric
// Qxx,Qyy,Qzz,Qxy,Qxz,Qyz layout.
package moment
