package teatreeio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/teatreeio"
	"github.com/FreddieWitherden/teatree/vecd"
)

func TestReadParticles2SkipsCommentsAndHeading(t *testing.T) {
	in := strings.NewReader(`# a comment
rx ry vx vy q m
-5 0 0 0 1 1
5 0 0 0 -1 1
`)
	ps, err := teatreeio.ReadParticles2[float64](in)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	require.Equal(t, -5.0, ps[0].R.X)
	require.Equal(t, 1.0, ps[1].QtoM)
}

func TestReadParticles2NoHeading(t *testing.T) {
	in := strings.NewReader("-5 0 0 0 1 1\n5 0 0 0 -1 1\n")
	ps, err := teatreeio.ReadParticles2[float64](in)
	require.NoError(t, err)
	require.Len(t, ps, 2)
}

func TestReadParticles2MalformedLineErrors(t *testing.T) {
	in := strings.NewReader("rx ry vx vy q m\n-5 0 0 0 1 1\nnotanumber 0 0 0 1 1\n")
	_, err := teatreeio.ReadParticles2[float64](in)
	var invalid *teatreeio.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 3, invalid.Line)
}

func TestReadParticles2WrongFieldCountErrors(t *testing.T) {
	in := strings.NewReader("-5 0 0 1 1\n")
	_, err := teatreeio.ReadParticles2[float64](in)
	var invalid *teatreeio.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestWriteThenReadParticles2RoundTrips(t *testing.T) {
	p0, err := particle.NewParticle2(vecd.Vec2[float64]{X: -5, Y: 1.5}, vecd.Vec2[float64]{X: 0.1, Y: -0.2}, 1, 2)
	require.NoError(t, err)
	p1, err := particle.NewParticle2(vecd.Vec2[float64]{X: 5, Y: -1.5}, vecd.Vec2[float64]{X: -0.1, Y: 0.2}, -1, 3)
	require.NoError(t, err)
	original := []particle.Particle2[float64]{p0, p1}

	var buf bytes.Buffer
	require.NoError(t, teatreeio.WriteParticles2(&buf, original, true))

	roundTripped, err := teatreeio.ReadParticles2[float64](&buf)
	require.NoError(t, err)
	require.Len(t, roundTripped, 2)
	for i := range original {
		require.InDelta(t, original[i].R.X, roundTripped[i].R.X, 1e-4)
		require.InDelta(t, original[i].R.Y, roundTripped[i].R.Y, 1e-4)
		require.InDelta(t, original[i].V.X, roundTripped[i].V.X, 1e-4)
		require.InDelta(t, original[i].V.Y, roundTripped[i].V.Y, 1e-4)
		require.InDelta(t, original[i].Q, roundTripped[i].Q, 1e-3)
		require.InDelta(t, original[i].Q/original[i].QtoM, roundTripped[i].Q/roundTripped[i].QtoM, 1e-3)
	}
}

func TestReadParticles3(t *testing.T) {
	in := strings.NewReader("rx ry rz vx vy vz q m\n1 2 3 0 0 0 1 1\n")
	ps, err := teatreeio.ReadParticles3[float64](in)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	require.Equal(t, 3.0, ps[0].R.Z)
}
