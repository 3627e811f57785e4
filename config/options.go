package config

import (
	"github.com/FreddieWitherden/teatree/boundary"
	"github.com/FreddieWitherden/teatree/vecd"
)

// Kind selects the boundary constraint family, per spec.md §6.
type Kind int

const (
	BoundaryOpen Kind = iota
	BoundaryReflective
)

// Options holds the full set of recognized simulation options (spec.md §6).
type Options struct {
	Epsilon    float64
	Theta      float64
	Dt         float64
	ND         float64
	QtoMCutoff float64

	Boundary        Kind
	MinBound        float64
	MaxBound        float64

	OutputSteps    map[int]bool
	OutputBasename string
	OutputHeader   bool

	err error
}

// Option configures Options via the functional-options idiom.
type Option func(*Options)

// Default returns an Options with the spec's stated defaults: open
// boundary, qtomcutoff=0, output_header=true, everything else zero or
// empty. Theta=0 is valid as it stands; epsilon, dt, nd, output_steps and
// output_basename are invalid until set, per New's validation.
func Default() Options {
	return Options{
		Boundary:     BoundaryOpen,
		QtoMCutoff:   0,
		OutputHeader: true,
	}
}

// WithEpsilon sets the Plummer softening length; must be > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			o.err = invalid("epsilon", "must be > 0")
			return
		}
		o.Epsilon = eps
	}
}

// WithTheta sets the MAC parameter; must be >= 0.
func WithTheta(theta float64) Option {
	return func(o *Options) {
		if theta < 0 {
			o.err = invalid("theta", "must be >= 0")
			return
		}
		o.Theta = theta
	}
}

// WithDt sets the integrator macro-step size; must be > 0.
func WithDt(dt float64) Option {
	return func(o *Options) {
		if dt <= 0 {
			o.err = invalid("dt", "must be > 0")
			return
		}
		o.Dt = dt
	}
}

// WithND sets the Debye-sphere/circle population; must be > 0.
func WithND(nd float64) Option {
	return func(o *Options) {
		if nd <= 0 {
			o.err = invalid("nd", "must be > 0")
			return
		}
		o.ND = nd
	}
}

// WithQtoMCutoff sets the immobility threshold on |q/m|; must be >= 0.
func WithQtoMCutoff(cutoff float64) Option {
	return func(o *Options) {
		if cutoff < 0 {
			o.err = invalid("qtomcutoff", "must be >= 0")
			return
		}
		o.QtoMCutoff = cutoff
	}
}

// WithReflectiveBoundary selects reflective boundaries with the given
// limits, applied to every axis; requires min < max.
func WithReflectiveBoundary(min, max float64) Option {
	return func(o *Options) {
		if !(min < max) {
			o.err = invalid("min_bound/max_bound", "min_bound must be < max_bound")
			return
		}
		o.Boundary = BoundaryReflective
		o.MinBound = min
		o.MaxBound = max
	}
}

// WithOutputSteps sets the 1-based iteration indices at which a snapshot is
// written; must be non-empty and every entry must be positive.
func WithOutputSteps(steps []int) Option {
	return func(o *Options) {
		if len(steps) == 0 {
			o.err = invalid("output_steps", "must be non-empty")
			return
		}
		set := make(map[int]bool, len(steps))
		for _, s := range steps {
			if s <= 0 {
				o.err = invalid("output_steps", "every entry must be positive")
				return
			}
			set[s] = true
		}
		o.OutputSteps = set
	}
}

// WithOutputBasename sets the snapshot filename prefix; must be non-empty.
func WithOutputBasename(basename string) Option {
	return func(o *Options) {
		if basename == "" {
			o.err = invalid("output_basename", "must be non-empty")
			return
		}
		o.OutputBasename = basename
	}
}

// WithOutputHeader toggles the header line on snapshot output.
func WithOutputHeader(on bool) Option {
	return func(o *Options) { o.OutputHeader = on }
}

// New applies opts over Default and validates the result, returning the
// first InvalidParameterError encountered (options are applied in order,
// so the first invalid one wins).
func New(opts ...Option) (Options, error) {
	o := Default()
	for _, opt := range opts {
		if o.err != nil {
			break
		}
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	switch {
	case o.Epsilon <= 0:
		return Options{}, invalid("epsilon", "must be set (> 0)")
	case o.Dt <= 0:
		return Options{}, invalid("dt", "must be set (> 0)")
	case o.ND <= 0:
		return Options{}, invalid("nd", "must be set (> 0)")
	case o.OutputBasename == "":
		return Options{}, invalid("output_basename", "must be set")
	case len(o.OutputSteps) == 0:
		return Options{}, invalid("output_steps", "must be set")
	}

	return o, nil
}

// NewConstraint2 builds the boundary.Constraint2 this Options describes.
func NewConstraint2[S vecd.Real](o Options) boundary.Constraint2[S] {
	if o.Boundary == BoundaryReflective {
		return boundary.Reflective2[S]{Min: S(o.MinBound), Max: S(o.MaxBound)}
	}
	return boundary.Open2[S]{}
}

// NewConstraint3 builds the boundary.Constraint3 this Options describes.
func NewConstraint3[S vecd.Real](o Options) boundary.Constraint3[S] {
	if o.Boundary == BoundaryReflective {
		return boundary.Reflective3[S]{Min: S(o.MinBound), Max: S(o.MaxBound)}
	}
	return boundary.Open3[S]{}
}
