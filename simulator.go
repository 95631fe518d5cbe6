package huygens

import (
	"fmt"
	"strings"
)

// Simulator owns a grid and a fixed collection of wavelets and produces
// summed field frames for a sequence of time steps. Every frame is a pure
// function of (grid, wavelets, t), so the same configuration always
// reproduces the same frame sequence.
type Simulator struct {
	g        *Grid
	wavelets []Wavelet
}

// NewSimulator creates a Simulator over the given grid and wavelets. Every
// wavelet is validated up front so that a bad parameter fails here rather
// than partway through a run.
func NewSimulator(g *Grid, wavelets []Wavelet) (*Simulator, error) {
	if g == nil {
		return nil, configErrorf("Simulator needs a non-nil Grid.")
	}
	if len(wavelets) == 0 {
		return nil, configErrorf("Simulator needs at least one Wavelet.")
	}
	for i := range wavelets {
		if err := wavelets[i].CheckInit(); err != nil {
			return nil, err
		}
	}

	sim := &Simulator{g: g}
	sim.wavelets = make([]Wavelet, len(wavelets))
	copy(sim.wavelets, wavelets)
	return sim, nil
}

// Grid returns the grid the simulator evaluates on.
func (sim *Simulator) Grid() *Grid { return sim.g }

// Wavelets returns the number of wavelets in the simulation.
func (sim *Simulator) Wavelets() int { return len(sim.wavelets) }

// Frame computes the summed field at time t into buf and returns it. A nil
// buf is allocated; otherwise it must have g.Cells() elements and is zeroed
// first. The cell range is split into disjoint chunks across NumCores
// goroutines, so the accumulation never races and the result does not
// depend on scheduling.
func (sim *Simulator) Frame(t float64, buf []float64) []float64 {
	cells := sim.g.Cells()
	if buf == nil {
		buf = make([]float64, cells)
	} else {
		if len(buf) != cells {
			panic(fmt.Sprintf(
				"Frame buffer has %d cells, grid has %d.", len(buf), cells,
			))
		}
		for i := range buf {
			buf[i] = 0
		}
	}

	workers := NumCores
	if workers < 1 {
		workers = 1
	}
	if workers > cells {
		workers = cells
	}
	chunk := (cells + workers - 1) / workers

	out := make(chan int, workers)
	for id := 0; id < workers-1; id++ {
		go sim.chanEvaluate(id, t, buf, id*chunk, (id+1)*chunk, out)
	}
	id := workers - 1
	sim.chanEvaluate(id, t, buf, id*chunk, cells, out)

	for i := 0; i < workers; i++ {
		<-out
	}

	return buf
}

func (sim *Simulator) chanEvaluate(
	id int, t float64, buf []float64, low, high int, out chan<- int,
) {
	if high > len(buf) {
		high = len(buf)
	}
	for i := range sim.wavelets {
		sim.wavelets[i].Field(t, sim.g, buf, low, high)
	}
	out <- id
}

// Run returns an iterator over steps frames at evenly spaced times covering
// [start, stop] inclusive. With steps == 1 only start is sampled. Run
// carries no state between invocations: calling it again with the same
// arguments reproduces the same sequence.
func (sim *Simulator) Run(start, stop float64, steps int) (*Frames, error) {
	if steps < 1 {
		return nil, configErrorf("Step count %d is non-positive.", steps)
	}
	if stop < start {
		return nil, configErrorf(
			"Time range [%g, %g] is reversed.", start, stop,
		)
	}

	times := make([]float64, steps)
	if steps == 1 {
		times[0] = start
	} else {
		dt := (stop - start) / float64(steps-1)
		for i := range times {
			times[i] = start + float64(i)*dt
		}
		times[steps-1] = stop
	}

	return &Frames{sim: sim, times: times, i: -1}, nil
}

// Frames is a pull-based iterator over the frame sequence of a run. The
// caller may stop consuming at any point; nothing runs in the background.
type Frames struct {
	sim   *Simulator
	times []float64
	i     int
	buf   []float64
}

// Next advances to the next frame, computing it. It returns false once the
// sequence is exhausted.
func (fr *Frames) Next() bool {
	if fr.i+1 >= len(fr.times) {
		return false
	}
	fr.i++
	fr.buf = fr.sim.Frame(fr.times[fr.i], fr.buf)
	return true
}

// Step returns the index of the current frame.
func (fr *Frames) Step() int { return fr.i }

// Time returns the simulation time of the current frame.
func (fr *Frames) Time() float64 { return fr.times[fr.i] }

// Vals returns the current frame. The buffer is reused by the next call to
// Next, so callers that retain frames must copy them out.
func (fr *Frames) Vals() []float64 { return fr.buf }

// Len returns the total number of frames in the sequence.
func (fr *Frames) Len() int { return len(fr.times) }

func (sim *Simulator) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Huygens simulator with %d wavelet(s):", len(sim.wavelets))
	for i := range sim.wavelets {
		fmt.Fprintf(b, "\n%v", &sim.wavelets[i])
	}
	return b.String()
}
