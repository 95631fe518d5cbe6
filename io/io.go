package io

import (
	"encoding/binary"
	"fmt"
	"os"
)

// ReadFrameHeader reads only the header of a .hwf frame file.
func ReadFrameHeader(fname string) (*FrameHeader, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hd := &FrameHeader{}
	if err := binary.Read(f, end, hd); err != nil {
		return nil, err
	}
	if hd.Type.FrameType != int64(ScalarField) {
		return nil, fmt.Errorf(
			"%s has unrecognized frame type %d.", fname, hd.Type.FrameType,
		)
	}

	return hd, nil
}

// ReadFrame reads a .hwf frame file, returning its header and the row-major
// field values.
func ReadFrame(fname string) (*FrameHeader, []float64, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	hd := &FrameHeader{}
	if err := binary.Read(f, end, hd); err != nil {
		return nil, nil, err
	}
	if hd.Type.FrameType != int64(ScalarField) {
		return nil, nil, fmt.Errorf(
			"%s has unrecognized frame type %d.", fname, hd.Type.FrameType,
		)
	}

	vals := make([]float64, hd.Loc.Cells())
	if err := binary.Read(f, end, vals); err != nil {
		return nil, nil, err
	}

	return hd, vals, nil
}
