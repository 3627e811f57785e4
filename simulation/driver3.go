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

// Driver3 is the 3D counterpart of Driver2.
type Driver3[S vecd.Real] struct {
	Particles []particle.Particle3[S]
	Opts      config.Options
	AccelOpts accel.Options3[S]
	Comp      *integrator.Composition3[S]
	Boundary  boundary.Constraint3[S]

	OnIteration func(iter int, stats IterationStats) bool
	OpenOutput  func(name string) (io.WriteCloser, error)
}

// NewDriver3 is the 3D counterpart of NewDriver2.
func NewDriver3[S vecd.Real](particles []particle.Particle3[S], opts config.Options, accelOpts accel.Options3[S], comp *integrator.Composition3[S], b boundary.Constraint3[S]) *Driver3[S] {
	return &Driver3[S]{
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

// Run is the 3D counterpart of Driver2.Run.
func (d *Driver3[S]) Run(steps int) error {
	t := S(0)

	for iter := 1; iter <= steps; iter++ {
		start := time.Now()

		var treeDur, evalDur time.Duration
		var leaves, branches int64
		nEval := 0

		accelFn := func(ps []particle.Particle3[S]) ([]vecd.Vec3[S], error) {
			out, st, err := accel.Evaluate3(ps, d.AccelOpts)
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

func (d *Driver3[S]) writeSnapshot(iter int) error {
	name := fmt.Sprintf("%s-%05d.txt", d.Opts.OutputBasename, iter)
	f, err := d.OpenOutput(name)
	if err != nil {
		return errors.Wrapf(err, "simulation: open snapshot %q", name)
	}
	defer f.Close()
	return teatreeio.WriteParticles3(f, d.Particles, d.Opts.OutputHeader)
}
