package huygens

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func threeWavelets() []Wavelet {
	return []Wavelet{
		{X0: 0, Y0: 0, T0: 0, Speed: 1, Wavelength: 1, Amplitude: 1},
		{X0: 2, Y0: -1, T0: 0.5, Speed: 2, Wavelength: 0.5, Amplitude: 0.7},
		{X0: -3, Y0: 3, T0: 0, Speed: 1.5, Wavelength: 2, Amplitude: 1.2,
			Phase: 0.4, Attenuate: true},
	}
}

func TestFrameSuperposition(t *testing.T) {
	g := centeredGrid(t)
	wavelets := threeWavelets()

	for n := 1; n <= len(wavelets); n++ {
		sim, err := NewSimulator(g, wavelets[:n])
		if err != nil {
			t.Fatal(err.Error())
		}

		tEval := 3.0
		frame := sim.Frame(tEval, nil)

		sum := make([]float64, g.Cells())
		for i := 0; i < n; i++ {
			for idx, val := range wavelets[i].FieldAt(tEval, g) {
				sum[idx] += val
			}
		}

		for idx := range sum {
			assert.InDelta(
				t, sum[idx], frame[idx], 1e-12,
				"superposition of %d wavelets at cell %d", n, idx,
			)
		}
	}
}

func TestRunDeterminism(t *testing.T) {
	g := centeredGrid(t)
	sim, err := NewSimulator(g, threeWavelets())
	if err != nil {
		t.Fatal(err.Error())
	}

	first := collectFrames(t, sim, 0, 2, 5)
	second := collectFrames(t, sim, 0, 2, 5)

	assert.Equal(t, first, second, "repeated runs")
}

func TestOrderIndependence(t *testing.T) {
	g := centeredGrid(t)
	wavelets := threeWavelets()
	reversed := []Wavelet{wavelets[2], wavelets[1], wavelets[0]}

	sim, err := NewSimulator(g, wavelets)
	if err != nil {
		t.Fatal(err.Error())
	}
	revSim, err := NewSimulator(g, reversed)
	if err != nil {
		t.Fatal(err.Error())
	}

	frame := sim.Frame(3, nil)
	revFrame := revSim.Frame(3, nil)
	for idx := range frame {
		assert.InDelta(
			t, frame[idx], revFrame[idx], 1e-12,
			"wavelet order at cell %d", idx,
		)
	}
}

func TestRunTimeSampling(t *testing.T) {
	g := centeredGrid(t)
	sim, err := NewSimulator(g, threeWavelets())
	if err != nil {
		t.Fatal(err.Error())
	}

	fr, err := sim.Run(0, 1, 5)
	if err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, 5, fr.Len(), "frame count")

	times := []float64{}
	for fr.Next() {
		times = append(times, fr.Time())
	}
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, times, "sample times")

	// A single step samples the start time only.
	fr, err = sim.Run(2, 7, 1)
	if err != nil {
		t.Fatal(err.Error())
	}
	assert.True(t, fr.Next(), "single frame")
	assert.Equal(t, 2.0, fr.Time(), "single frame time")
	assert.False(t, fr.Next(), "sequence end")
}

func TestRunRejectsBadStepping(t *testing.T) {
	g := centeredGrid(t)
	sim, err := NewSimulator(g, threeWavelets())
	if err != nil {
		t.Fatal(err.Error())
	}

	var confErr *ConfigError

	_, err = sim.Run(0, 1, 0)
	assert.True(t, errors.As(err, &confErr), "zero steps")

	_, err = sim.Run(0, 1, -3)
	assert.True(t, errors.As(err, &confErr), "negative steps")

	_, err = sim.Run(1, 0, 10)
	assert.True(t, errors.As(err, &confErr), "reversed time range")
}

func TestNewSimulatorRejectsBadInputs(t *testing.T) {
	g := centeredGrid(t)

	var confErr *ConfigError
	var wErr *WaveletError

	_, err := NewSimulator(nil, threeWavelets())
	assert.True(t, errors.As(err, &confErr), "nil grid")

	_, err = NewSimulator(g, []Wavelet{})
	assert.True(t, errors.As(err, &confErr), "no wavelets")

	degenerate := threeWavelets()
	degenerate[1].Speed = 0
	_, err = NewSimulator(g, degenerate)
	assert.True(t, errors.As(err, &wErr), "degenerate wavelet")
}

func TestFrameParallelChunking(t *testing.T) {
	g := centeredGrid(t)
	sim, err := NewSimulator(g, threeWavelets())
	if err != nil {
		t.Fatal(err.Error())
	}

	defer func(cores int) { NumCores = cores }(NumCores)

	NumCores = 1
	serial := append([]float64{}, sim.Frame(3, nil)...)

	for _, cores := range []int{2, 3, 7, 64, 100000} {
		NumCores = cores
		parallel := sim.Frame(3, nil)
		assert.Equal(t, serial, parallel, "frame with %d workers", cores)
	}
}

// TestPlaneWaveRow checks that a long evenly spaced row of wavelets builds
// an approximately planar wavefront far from the row. The oscillation
// envelope is measured from two frames a quarter period apart, which makes
// the check independent of where the front's phase happens to land.
func TestPlaneWaveRow(t *testing.T) {
	wavelets := make([]Wavelet, 20)
	for i := range wavelets {
		x := -10 + 20*float64(i)/float64(len(wavelets)-1)
		wavelets[i] = Wavelet{
			X0: x, Y0: 0, T0: 0, Speed: 1, Wavelength: 2, Amplitude: 1,
		}
	}

	// A transverse strip far into the Fraunhofer region of the row.
	g, err := NewGrid(-2, 2, 400, 401, 21, 2)
	if err != nil {
		t.Fatal(err.Error())
	}

	sim, err := NewSimulator(g, wavelets)
	if err != nil {
		t.Fatal(err.Error())
	}

	// Period is 2, so these two frames are in quadrature.
	tEval := 500.0
	cosFrame := sim.Frame(tEval, nil)
	sinFrame := sim.Frame(tEval+0.5, nil)

	minEnv, maxEnv := math.Inf(1), math.Inf(-1)
	for ix := 0; ix < g.Nx; ix++ {
		idx := g.Idx(ix, 0)
		env := math.Hypot(cosFrame[idx], sinFrame[idx])
		if env < minEnv {
			minEnv = env
		}
		if env > maxEnv {
			maxEnv = env
		}
	}

	assert.True(t, minEnv > 0, "envelope is non-zero")
	assert.True(
		t, maxEnv/minEnv < 1.1,
		"envelope varies by %g across the transverse line", maxEnv/minEnv,
	)

	// Sanity check that the field still oscillates along the propagation
	// direction: half a wavelength ahead the field is close to inverted.
	center := g.Idx(10, 0)
	ahead := g.Idx(10, 1)
	env := math.Hypot(cosFrame[center], sinFrame[center])
	assert.InDelta(
		t, -cosFrame[center], cosFrame[ahead], 0.15*env,
		"sign flip half a wavelength downstream",
	)
}

func collectFrames(
	t *testing.T, sim *Simulator, start, stop float64, steps int,
) [][]float64 {
	fr, err := sim.Run(start, stop, steps)
	if err != nil {
		t.Fatal(err.Error())
	}

	frames := [][]float64{}
	for fr.Next() {
		frame := make([]float64, len(fr.Vals()))
		copy(frame, fr.Vals())
		frames = append(frames, frame)
	}
	return frames
}
