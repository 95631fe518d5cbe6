package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadWaveletTable reads wavelet parameters from a whitespace-separated
// text table with the columns
//
//	x y t0 speed wavelength amplitude phase
//
// and returns one WaveletConfig per row. Lines starting with '#' are
// comments. Tables are the convenient way to specify long rows of sources,
// where one config section per wavelet would get out of hand.
func ReadWaveletTable(file string) ([]WaveletConfig, error) {
	colIdxs := []int{0, 1, 2, 3, 4, 5, 6}
	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, t0s := cols[0], cols[1], cols[2]
	speeds, wavelengths := cols[3], cols[4]
	amps, phases := cols[5], cols[6]

	cons := make([]WaveletConfig, len(xs))
	for i := range cons {
		con := &cons[i]
		con.X, con.Y, con.T0 = xs[i], ys[i], t0s[i]
		con.Speed, con.Wavelength = speeds[i], wavelengths[i]
		con.Amplitude, con.Phase = amps[i], phases[i]

		name := fmt.Sprintf("%s:%d", file, i)
		if err := con.CheckInit(name); err != nil {
			return nil, err
		}
	}

	return cons, nil
}
