/*package io handles the file surfaces of the simulator: gcfg configuration
files, wavelet catalog tables, and the .hwf binary frame format that
decouples renderers and analysis scripts from the core.
*/
package io

import (
	"encoding/binary"
	"io"

	"unsafe"
)

var end = binary.LittleEndian

// FrameHeader is the fixed-size header at the front of every .hwf file.
type FrameHeader struct {
	Type  TypeInfo
	Field FieldInfo
	Loc   LocationInfo
}

type TypeInfo struct {
	Endianness int64
	HeaderSize int64
	FrameType  int64
}

// FieldInfo locates a frame within its run.
type FieldInfo struct {
	Step, Steps int64
	Time        float64
	Wavelets    int64
}

// LocationInfo describes the spatial grid a frame was sampled on.
type LocationInfo struct {
	XMin, XMax, YMin, YMax float64
	XPixels, YPixels       int64
	XWidth, YWidth         float64
}

type FrameFlag int64

const (
	ScalarField FrameFlag = iota
)

// NewFieldInfo describes frame number step of a run of steps frames,
// sampled at the given time from a simulation of the given wavelet count.
func NewFieldInfo(step, steps int, time float64, wavelets int) FieldInfo {
	return FieldInfo{int64(step), int64(steps), time, int64(wavelets)}
}

// NewLocationInfo describes an nx by ny grid spanning
// [xMin, xMax] x [yMin, yMax] with the given cell widths.
func NewLocationInfo(
	xMin, xMax, yMin, yMax float64, nx, ny int, dx, dy float64,
) LocationInfo {
	return LocationInfo{
		xMin, xMax, yMin, yMax, int64(nx), int64(ny), dx, dy,
	}
}

// Cells returns the number of grid points the location describes.
func (loc *LocationInfo) Cells() int {
	return int(loc.XPixels * loc.YPixels)
}

// WriteFrame writes one field frame to wr. vals is row-major with
// loc.Cells() elements.
func WriteFrame(
	vals []float64, field FieldInfo, loc LocationInfo, wr io.Writer,
) error {
	var endFlag int64
	if end == binary.LittleEndian {
		endFlag = -1
	} else {
		endFlag = 0
	}

	hd := FrameHeader{}
	hd.Type.Endianness = endFlag
	hd.Type.HeaderSize = int64(unsafe.Sizeof(hd))
	hd.Type.FrameType = int64(ScalarField)
	hd.Field = field
	hd.Loc = loc

	if err := binary.Write(wr, end, &hd); err != nil {
		return err
	}
	return binary.Write(wr, end, vals)
}
