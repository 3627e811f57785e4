package teatreeio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/vecd"
)

var header3 = []string{"rx", "ry", "rz", "vx", "vy", "vz", "q", "m"}

// ReadParticles3 is the 3D counterpart of ReadParticles2 (8 fields per
// line: rx, ry, rz, vx, vy, vz, q, m).
func ReadParticles3[S vecd.Real](r io.Reader) ([]particle.Particle3[S], error) {
	sc := bufio.NewScanner(r)
	var out []particle.Particle3[S]
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

		if len(values) != 8 {
			return nil, invalidInput(line)
		}

		r := vecd.Vec3[S]{X: values[0], Y: values[1], Z: values[2]}
		v := vecd.Vec3[S]{X: values[3], Y: values[4], Z: values[5]}
		q, m := values[6], values[7]

		p, err := particle.NewParticle3(r, v, q, m)
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

// WriteParticles3 is the 3D counterpart of WriteParticles2.
func WriteParticles3[S vecd.Real](w io.Writer, particles []particle.Particle3[S], writeHeader bool) error {
	bw := bufio.NewWriter(w)

	if writeHeader {
		if _, err := fmt.Fprintln(bw, strings.Join(header3, " ")); err != nil {
			return err
		}
	}

	for _, p := range particles {
		_, err := fmt.Fprintf(bw, "%s %s %s %s %s %s %s %s\n",
			sciField(p.R.X), sciField(p.R.Y), sciField(p.R.Z),
			sciField(p.V.X), sciField(p.V.Y), sciField(p.V.Z),
			fixedField(p.Q), fixedField(massOf3(p)))
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

func massOf3[S vecd.Real](p particle.Particle3[S]) S {
	return p.Q / p.QtoM
}
