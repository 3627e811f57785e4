// Command teatree runs an N-body electrostatic simulation from a particle
// input file, writing snapshots per the configured output steps.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/FreddieWitherden/teatree/accel"
	"github.com/FreddieWitherden/teatree/boundary"
	"github.com/FreddieWitherden/teatree/config"
	"github.com/FreddieWitherden/teatree/integrator"
	"github.com/FreddieWitherden/teatree/simtype"
	"github.com/FreddieWitherden/teatree/simulation"
	"github.com/FreddieWitherden/teatree/teatreeio"
)

func main() {
	log.SetFlags(0)

	var (
		input          = flag.String("input", "", "particle input file")
		typeTag        = flag.String("type", "O2QOPC21", "simulation-type tag, see spec §6")
		epsilon        = flag.Float64("epsilon", 1e-5, "Plummer softening length")
		theta          = flag.Float64("theta", 0.6, "MAC parameter")
		dt             = flag.Float64("dt", 1e-3, "integrator macro-step size")
		nd             = flag.Float64("nd", 1, "Debye-sphere/circle population")
		qtomcutoff     = flag.Float64("qtomcutoff", 0, "|q/m| below this is immobile")
		minBound       = flag.Float64("min-bound", 0, "reflective boundary minimum")
		maxBound       = flag.Float64("max-bound", 0, "reflective boundary maximum")
		reflective     = flag.Bool("reflective", false, "use reflective boundaries")
		steps          = flag.Int("steps", 1, "number of macro-steps to run")
		outputSteps    = flag.String("output-steps", "", "comma-separated 1-based iteration indices to snapshot")
		outputBasename = flag.String("output-basename", "out", "snapshot filename prefix")
		outputHeader   = flag.Bool("output-header", true, "emit the column-heading line")
	)
	flag.Parse()

	if *input == "" {
		log.Fatalf("Error: -input is required")
	}

	tag, err := simtype.Lookup(*typeTag)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	stepSet, err := parseOutputSteps(*outputSteps)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	opts := []config.Option{
		config.WithEpsilon(*epsilon),
		config.WithTheta(*theta),
		config.WithDt(*dt),
		config.WithND(*nd),
		config.WithQtoMCutoff(*qtomcutoff),
		config.WithOutputSteps(stepSet),
		config.WithOutputBasename(*outputBasename),
		config.WithOutputHeader(*outputHeader),
	}
	if *reflective {
		opts = append(opts, config.WithReflectiveBoundary(*minBound, *maxBound))
	}

	cfg, err := config.New(opts...)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	order, err := tag.CompositionOrder()
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Error: %s", errors.Wrapf(err, "opening %q", *input))
	}
	defer f.Close()

	switch tag.Dim {
	case 2:
		err = run2(f, cfg, tag, order, *steps)
	case 3:
		err = run3(f, cfg, tag, order, *steps)
	default:
		err = fmt.Errorf("unsupported dimension %d", tag.Dim)
	}
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
}

func parseOutputSteps(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("-output-steps is required")
	}
	parts := strings.Split(s, ",")
	steps := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid -output-steps entry %q: %w", p, err)
		}
		steps = append(steps, n)
	}
	return steps, nil
}

func run2(f *os.File, cfg config.Options, tag simtype.Tag, order int, steps int) error {
	particles, err := teatreeio.ReadParticles2[float64](f)
	if err != nil {
		return errors.Wrap(err, "cmd/teatree: reading particles")
	}

	macFactory := accel.OpeningAngleFactory2[float64](cfg.Theta)
	if tag.MAC == "M" {
		macFactory = accel.MinDistanceFactory2[float64](cfg.Theta)
	}

	accelOpts := accel.Options2[float64]{
		Epsilon:    cfg.Epsilon,
		Order:      tag.Order,
		NewMAC:     macFactory,
		ND:         cfg.ND,
		QtoMCutoff: cfg.QtoMCutoff,
	}

	comp, err := integrator.NewComposition2FromOrder[float64](order, cfg.Dt)
	if err != nil {
		return errors.Wrap(err, "cmd/teatree: building integrator")
	}

	var b boundary.Constraint2[float64] = config.NewConstraint2[float64](cfg)
	d := simulation.NewDriver2(particles, cfg, accelOpts, comp, b)
	d.OnIteration = func(iter int, stats simulation.IterationStats) bool {
		log.Printf("iter %d: tree=%s eval=%s other=%s leaves=%d branches=%d evals=%d",
			iter, stats.TreeBuildTime, stats.EvalTime, stats.OtherTime,
			stats.LeavesVisited, stats.BranchesVisited, stats.AccelEvals)
		return false
	}

	return errors.Wrap(d.Run(steps), "cmd/teatree: running simulation")
}

func run3(f *os.File, cfg config.Options, tag simtype.Tag, order int, steps int) error {
	particles, err := teatreeio.ReadParticles3[float64](f)
	if err != nil {
		return errors.Wrap(err, "cmd/teatree: reading particles")
	}

	macFactory := accel.OpeningAngleFactory3[float64](cfg.Theta)
	if tag.MAC == "M" {
		macFactory = accel.MinDistanceFactory3[float64](cfg.Theta)
	}

	accelOpts := accel.Options3[float64]{
		Epsilon:    cfg.Epsilon,
		Order:      tag.Order,
		NewMAC:     macFactory,
		ND:         cfg.ND,
		QtoMCutoff: cfg.QtoMCutoff,
	}

	comp, err := integrator.NewComposition3FromOrder[float64](order, cfg.Dt)
	if err != nil {
		return errors.Wrap(err, "cmd/teatree: building integrator")
	}

	var b boundary.Constraint3[float64] = config.NewConstraint3[float64](cfg)
	d := simulation.NewDriver3(particles, cfg, accelOpts, comp, b)
	d.OnIteration = func(iter int, stats simulation.IterationStats) bool {
		log.Printf("iter %d: tree=%s eval=%s other=%s leaves=%d branches=%d evals=%d",
			iter, stats.TreeBuildTime, stats.EvalTime, stats.OtherTime,
			stats.LeavesVisited, stats.BranchesVisited, stats.AccelEvals)
		return false
	}

	return errors.Wrap(d.Run(steps), "cmd/teatree: running simulation")
}
