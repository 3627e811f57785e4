package teatreeio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

var header2 = []string{"rx", "ry", "vx", "vy", "q", "m"}

// ReadParticles2 parses a 2D particle stream per spec.md §6: comment lines
// ('#'-prefixed) are skipped, an optional non-numeric heading line is
// skipped once, and every remaining line must carry exactly 6
// whitespace-separated numbers (rx, ry, vx, vy, q, m).
func ReadParticles2[S vecd.Real](r io.Reader) ([]particle.Particle2[S], error) {
	sc := bufio.NewScanner(r)
	var out []particle.Particle2[S]
	headingConsumed := false
	line := 0

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		values, ok := parseFields[S](fields)
		if !ok {
			if !headingConsumed && len(out) == 0 {
				headingConsumed = true
				continue
			}
			return nil, invalidInput(line)
		}
		headingConsumed = true

		if len(values) != 6 {
			return nil, invalidInput(line)
		}

		r := vecd.Vec2[S]{X: values[0], Y: values[1]}
		v := vecd.Vec2[S]{X: values[2], Y: values[3]}
		q, m := values[4], values[5]

		p, err := particle.NewParticle2(r, v, q, m)
		if err != nil {
			return nil, invalidInput(line)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// WriteParticles2 writes particles in spec.md §6's output contract.
// writeHeader controls whether the column-heading line is emitted.
func WriteParticles2[S vecd.Real](w io.Writer, particles []particle.Particle2[S], writeHeader bool) error {
	bw := bufio.NewWriter(w)

	if writeHeader {
		if _, err := fmt.Fprintln(bw, strings.Join(header2, " ")); err != nil {
			return err
		}
	}

	for _, p := range particles {
		_, err := fmt.Fprintf(bw, "%s %s %s %s %s %s\n",
			sciField(p.R.X), sciField(p.R.Y),
			sciField(p.V.X), sciField(p.V.Y),
			fixedField(p.Q), fixedField(massOf(p)))
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// massOf recovers the mass m = q/qtom used at construction, so round-trip
// output reproduces the original (q, m) pair rather than (q, qtom).
func massOf[S vecd.Real](p particle.Particle2[S]) S {
	return p.Q / p.QtoM
}

// validFieldCounts lists the whitespace-separated field counts this build's
// readers accept: 2*d+2 for d in {2,3}.
var validFieldCounts = []int{6, 8}

// parseFields reports ok=false only when some field is not a number (the
// case a heading line may take); an all-numeric line with a field count
// outside validFieldCounts yields nil values with ok=true, which the
// readers reject as invalid input.
func parseFields[S vecd.Real](fields []string) ([]S, bool) {
	out := make([]S, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out[i] = S(v)
	}
	if !slices.Contains(validFieldCounts, len(fields)) {
		return nil, true
	}
	return out, true
}

func sciField[S vecd.Real](v S) string {
	return fmt.Sprintf("%14.4e", float64(v))
}

func fixedField[S vecd.Real](v S) string {
	return fmt.Sprintf("%7.3f", float64(v))
}
