package io

import (
	"fmt"
	"math"
)

const ExampleSimulationFile = `[Simulation]

#######################
# Required Parameters #
#######################

# Spatial extent of the simulation region.
XMin = -10
XMax = 10
YMin = -10
YMax = 10

# Number of grid points along each axis.
XPixels = 200
YPixels = 200

# Time range covered by the run, inclusive on both ends, and the number of
# evenly spaced frames computed within it.
TimeStart = 0
TimeStop = 0.4
TimeSteps = 60

# Directory which output frame files will be written to.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# If set, an animated GIF of the run is written to this path.
# GIF = path/to/output.gif

# Delay between GIF frames in hundredths of a second. Default is 2.
# GIFDelay = 2

# Symmetric color scale limit for the GIF. Values at or beyond +-ColorLimit
# saturate. If unset, the limit is taken from the largest magnitude in the
# first rendered frame.
# ColorLimit = 20

# Path to a whitespace-separated wavelet table with columns
#     x y t0 speed wavelength amplitude phase
# Rows from the table are added to the [Wavelet] sections below, which is
# the convenient way to set up long source rows (slits, gratings).
# WaveletTable = path/to/wavelets.txt

# A wavelet per section. The single-wavelet setup below reproduces the
# classic expanding-ring scenario.
[Wavelet "center"]
X = 0
Y = 0
T0 = 0
Speed = 20
Wavelength = 4

# Optional per-wavelet parameters:
# Amplitude = 1
# Phase = 0
# Attenuate = false
`

// SimulationWrapper wraps the config file sections so that gcfg can read
// them in one pass.
type SimulationWrapper struct {
	Simulation SimulationConfig
	Wavelet    map[string]*WaveletConfig
}

// SimulationConfig is the [Simulation] section of a config file.
type SimulationConfig struct {
	// Required
	XMin, XMax, YMin, YMax float64
	XPixels, YPixels       int
	TimeStart, TimeStop    float64
	TimeSteps              int
	Output                 string

	// Optional
	GIF          string
	GIFDelay     int
	ColorLimit   float64
	WaveletTable string
}

// WaveletConfig is a [Wavelet "name"] section of a config file.
type WaveletConfig struct {
	// Required
	X, Y       float64
	Speed      float64
	Wavelength float64

	// Optional
	T0        float64
	Amplitude float64
	Phase     float64
	Attenuate bool

	Name string
}

// DefaultSimulationWrapper returns a wrapper with the defaults that gcfg
// cannot express filled in.
func DefaultSimulationWrapper() *SimulationWrapper {
	wrap := &SimulationWrapper{}
	wrap.Simulation.GIFDelay = 2
	return wrap
}

// CheckInit validates the [Simulation] section after gcfg has filled it in.
func (con *SimulationConfig) CheckInit() error {
	if con.XMin >= con.XMax {
		return fmt.Errorf(
			"Simulation x range [%g, %g] is empty.", con.XMin, con.XMax,
		)
	} else if con.YMin >= con.YMax {
		return fmt.Errorf(
			"Simulation y range [%g, %g] is empty.", con.YMin, con.YMax,
		)
	}

	if con.XPixels < 1 {
		return fmt.Errorf("Need a positive 'XPixels' value.")
	} else if con.YPixels < 1 {
		return fmt.Errorf("Need a positive 'YPixels' value.")
	}

	if con.TimeSteps < 1 {
		return fmt.Errorf("Need a positive 'TimeSteps' value.")
	} else if con.TimeStop < con.TimeStart {
		return fmt.Errorf(
			"Time range [%g, %g] is reversed.", con.TimeStart, con.TimeStop,
		)
	}

	if con.Output == "" {
		return fmt.Errorf("Need to specify an 'Output' directory.")
	}

	if con.GIFDelay < 0 {
		return fmt.Errorf("'GIFDelay' must be non-negative.")
	} else if con.ColorLimit < 0 {
		return fmt.Errorf("'ColorLimit' must be non-negative.")
	}

	return nil
}

// CheckInit validates a [Wavelet] section after gcfg has filled it in, and
// fills in defaults for the optional fields.
func (con *WaveletConfig) CheckInit(name string) error {
	vals := []float64{
		con.X, con.Y, con.T0, con.Speed,
		con.Wavelength, con.Amplitude, con.Phase,
	}
	for _, val := range vals {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf(
				"Wavelet '%s' contains a non-finite parameter.", name,
			)
		}
	}

	if con.Speed <= 0 {
		return fmt.Errorf(
			"Need a positive 'Speed' for Wavelet '%s', but got %g.",
			name, con.Speed,
		)
	} else if con.Wavelength <= 0 {
		return fmt.Errorf(
			"Need a positive 'Wavelength' for Wavelet '%s', but got %g.",
			name, con.Wavelength,
		)
	}

	con.Name = name
	if con.Amplitude == 0 {
		con.Amplitude = 1
	}

	return nil
}
