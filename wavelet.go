package huygens

import (
	"fmt"
	"math"
)

// Wavelet is a single point source emitting a circularly expanding
// oscillatory field starting at time T0. It is a value object: none of its
// fields change during a simulation.
//
// The field at distance r from the origin, a time tau = t - T0 after
// emission, is
//
//	A * cos(k*r - w*tau + phi)
//
// with k = 2*pi/Wavelength and w = k*Speed, cut off outside the leading
// front r > Speed*tau. With Attenuate set, the value is divided by sqrt(r)
// to model cylindrical spreading, with r clamped at 1/k so the origin cell
// never divides by zero.
type Wavelet struct {
	// X0, Y0 is the emission origin in grid coordinates.
	X0, Y0 float64
	// T0 is the emission start time. Before it the wavelet contributes
	// nothing anywhere.
	T0 float64
	// Speed is the propagation speed of the front. Must be positive.
	Speed float64
	// Wavelength of the emitted field. Must be positive.
	Wavelength float64
	// Amplitude of the oscillation.
	Amplitude float64
	// Phase offset, in radians.
	Phase float64
	// Attenuate divides the field by sqrt(r) when set.
	Attenuate bool
}

// NewWavelet returns a wavelet with unit amplitude, zero phase offset, and
// no attenuation. The result still needs CheckInit before use; NewSimulator
// does this for every wavelet it is given.
func NewWavelet(x0, y0, t0, speed, wavelength float64) *Wavelet {
	return &Wavelet{
		X0: x0, Y0: y0, T0: t0,
		Speed: speed, Wavelength: wavelength,
		Amplitude: 1.0,
	}
}

// CheckInit returns a *WaveletError if any parameter is degenerate.
func (w *Wavelet) CheckInit() error {
	vals := []float64{
		w.X0, w.Y0, w.T0, w.Speed, w.Wavelength, w.Amplitude, w.Phase,
	}
	names := []string{
		"X0", "Y0", "T0", "Speed", "Wavelength", "Amplitude", "Phase",
	}
	for i, val := range vals {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return waveletErrorf(
				"Wavelet at (%g, %g) has non-finite %s, %g.",
				w.X0, w.Y0, names[i], val,
			)
		}
	}

	if w.Speed <= 0 {
		return waveletErrorf(
			"Wavelet at (%g, %g) has non-positive Speed, %g.",
			w.X0, w.Y0, w.Speed,
		)
	} else if w.Wavelength <= 0 {
		return waveletErrorf(
			"Wavelet at (%g, %g) has non-positive Wavelength, %g.",
			w.X0, w.Y0, w.Wavelength,
		)
	}

	return nil
}

// WaveVector returns k = 2*pi/Wavelength.
func (w *Wavelet) WaveVector() float64 {
	return 2 * math.Pi / w.Wavelength
}

// AngFrequency returns w = k*Speed.
func (w *Wavelet) AngFrequency() float64 {
	return w.WaveVector() * w.Speed
}

// Period returns the oscillation period of the wavelet.
func (w *Wavelet) Period() float64 {
	return w.Wavelength / w.Speed
}

// Field adds the wavelet's contribution at time t into buf over the cell
// index range [low, high). buf must have g.Cells() elements. Field never
// mutates the wavelet or the grid, so concurrent calls on disjoint ranges
// of the same buffer are safe.
func (w *Wavelet) Field(t float64, g *Grid, buf []float64, low, high int) {
	tau := t - w.T0
	if tau < 0 {
		return
	}

	k := w.WaveVector()
	omega := k * w.Speed
	front := w.Speed * tau
	// Oscillation phase is shared by every cell at this time.
	tPhase := w.Phase - omega*tau
	rFloor := 1 / k

	for idx := low; idx < high; idx++ {
		dx := g.Xs[idx] - w.X0
		dy := g.Ys[idx] - w.Y0
		r := math.Sqrt(dx*dx + dy*dy)
		if r > front {
			continue
		}

		val := w.Amplitude * math.Cos(k*r+tPhase)
		if w.Attenuate {
			if r < rFloor {
				r = rFloor
			}
			val /= math.Sqrt(r)
		}
		buf[idx] += val
	}
}

// FieldAt evaluates the wavelet's contribution at time t over the full grid
// and returns it in a fresh buffer.
func (w *Wavelet) FieldAt(t float64, g *Grid) []float64 {
	buf := make([]float64, g.Cells())
	w.Field(t, g, buf, 0, g.Cells())
	return buf
}

func (w *Wavelet) String() string {
	return fmt.Sprintf("Wavelet at (%g, %g)", w.X0, w.Y0)
}
