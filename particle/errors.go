package particle

import "errors"

// Sentinel errors for particle construction.
var (
	// ErrNonPositiveMass is returned when m <= 0.
	ErrNonPositiveMass = errors.New("particle: mass must be > 0")
	// ErrZeroCharge is returned when q == 0.
	ErrZeroCharge = errors.New("particle: charge must be != 0")
)
