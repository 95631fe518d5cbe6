/*package render turns field frames into images and animations. It is a
consumer of the core's frame sequence and owns all visualization state; the
core never imports it.

Fields are mapped through a diverging blue-white-red color scale with a
symmetric limit, so zero field is white, crests saturate to red and troughs
to blue.
*/
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"
)

// paletteSize is the number of color levels in the scale. GIF frames can
// carry at most 256.
const paletteSize = 256

// Palette returns the diverging blue-white-red scale: index 0 is full blue,
// the midpoint is white, and the last index is full red.
func Palette() color.Palette {
	p := make(color.Palette, paletteSize)
	half := float64(paletteSize-1) / 2

	for i := range p {
		// s runs from -1 at full blue to +1 at full red.
		s := (float64(i) - half) / half
		var r, g, b float64
		if s < 0 {
			r, g, b = 1+s, 1+s, 1
		} else {
			r, g, b = 1, 1-s, 1-s
		}
		p[i] = color.RGBA{
			R: uint8(255 * r),
			G: uint8(255 * g),
			B: uint8(255 * b),
			A: 0xff,
		}
	}

	return p
}

// Limit returns the symmetric color limit implied by a frame, the largest
// magnitude it contains. A frame of zeros gets a limit of 1 so that it maps
// to uniform white instead of dividing by zero.
func Limit(vals []float64) float64 {
	max := 0.0
	for _, v := range vals {
		if av := math.Abs(v); av > max {
			max = av
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

// Frame renders a row-major nx by ny field into a paletted image using the
// given symmetric color limit. Values at or beyond +-limit saturate. Rows
// are drawn top to bottom in increasing y, matching the grid layout.
func Frame(vals []float64, nx, ny int, limit float64) (*image.Paletted, error) {
	if nx*ny != len(vals) {
		return nil, fmt.Errorf(
			"Frame is %d x %d, but contains %d values.", nx, ny, len(vals),
		)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("Color limit %g is non-positive.", limit)
	}

	img := image.NewPaletted(image.Rect(0, 0, nx, ny), Palette())
	for idx, v := range vals {
		s := v / limit
		if s < -1 {
			s = -1
		} else if s > 1 {
			s = 1
		}
		level := int(math.Round((s + 1) / 2 * float64(paletteSize-1)))
		img.Pix[idx] = uint8(level)
	}

	return img, nil
}

// WriteGIF encodes a frame sequence as an animated GIF. delay is the time
// between frames in hundredths of a second. The animation loops forever.
func WriteGIF(wr io.Writer, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("No frames to encode.")
	}

	anim := &gif.GIF{
		Image:     frames,
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}

	return gif.EncodeAll(wr, anim)
}
