// Package teatreeio implements spec.md §6's particle input/output text
// contract: one particle per line, comment lines prefixed with '#', an
// optional column-heading line, and a fixed-width/scientific-notation
// output format readable back by the same parser.
package teatreeio
