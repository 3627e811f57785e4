package integrator

import "fmt"

// UnsupportedOrderError is returned by NewComposition{2,3}FromOrder for any
// order other than 2, 4, or 6 (spec.md §4.K names exactly these three).
type UnsupportedOrderError struct {
	Order int
}

func (e *UnsupportedOrderError) Error() string {
	return fmt.Sprintf("integrator: unsupported composition order %d (want 2, 4, or 6)", e.Order)
}
