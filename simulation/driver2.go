package simulation

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/FreddieWitherden/teatree/accel"
	"github.com/FreddieWitherden/teatree/boundary"
	"github.com/FreddieWitherden/teatree/config"
	"github.com/FreddieWitherden/teatree/integrator"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/teatreeio"
	"github.com/FreddieWitherden/teatree/vecd"
)

// Driver2 drives a 2D simulation for a fixed number of macro-steps,
// writing snapshots on the configured output_steps and invoking
// OnIteration after each completed step.
type Driver2[S vecd.Real] struct {
	Particles []particle.Particle2[S]
	Opts      config.Options
	AccelOpts accel.Options2[S]
	Comp      *integrator.Composition2[S]
	Boundary  boundary.Constraint2[S]

	// OnIteration is called after each completed macro-step; returning
	// true requests the driver stop before the next iteration.
	OnIteration func(iter int, stats IterationStats) bool

	// OpenOutput opens the named snapshot file for writing; defaults to
	// os.Create. Overridable so tests need not touch the real filesystem.
	OpenOutput func(name string) (io.WriteCloser, error)
}

// NewDriver2 constructs a Driver2 with OpenOutput defaulted to os.Create.
func NewDriver2[S vecd.Real](particles []particle.Particle2[S], opts config.Options, accelOpts accel.Options2[S], comp *integrator.Composition2[S], b boundary.Constraint2[S]) *Driver2[S] {
	return &Driver2[S]{
		Particles: particles,
		Opts:      opts,
		AccelOpts: accelOpts,
		Comp:      comp,
		Boundary:  b,
		OpenOutput: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
	}
}

// Run advances the simulation for the given number of macro-steps,
// starting at simulation time 0.
func (d *Driver2[S]) Run(steps int) error {
	t := S(0)

	for iter := 1; iter <= steps; iter++ {
		start := time.Now()

		var treeDur, evalDur time.Duration
		var leaves, branches int64
		nEval := 0

		accelFn := func(ps []particle.Particle2[S]) ([]vecd.Vec2[S], error) {
			out, st, err := accel.Evaluate2(ps, d.AccelOpts)
			if err != nil {
				return nil, errors.Wrap(err, "simulation: acceleration pass")
			}
			treeDur += st.TreeBuild
			evalDur += st.Evaluation
			leaves += st.LeavesVisited
			branches += st.BranchVisited
			nEval++
			return out, nil
		}

		var err error
		t, err = d.Comp.Step(d.Particles, t, accelFn)
		if err != nil {
			return errors.Wrapf(err, "simulation: iteration %d", iter)
		}
		d.Boundary.Apply(d.Particles)

		total := time.Since(start)
		stats := IterationStats{
			TreeBuildTime:   treeDur,
			EvalTime:        evalDur,
			OtherTime:       total - treeDur - evalDur,
			LeavesVisited:   leaves,
			BranchesVisited: branches,
			AccelEvals:      nEval,
		}

		if d.Opts.OutputSteps[iter] {
			if err := d.writeSnapshot(iter); err != nil {
				return errors.Wrapf(err, "simulation: snapshot at iteration %d", iter)
			}
		}

		if d.OnIteration != nil && d.OnIteration(iter, stats) {
			return nil
		}
	}

	return nil
}

func (d *Driver2[S]) writeSnapshot(iter int) error {
	name := fmt.Sprintf("%s-%05d.txt", d.Opts.OutputBasename, iter)
	f, err := d.OpenOutput(name)
	if err != nil {
		return errors.Wrapf(err, "simulation: open snapshot %q", name)
	}
	defer f.Close()
	return teatreeio.WriteParticles2(f, d.Particles, d.Opts.OutputHeader)
}
