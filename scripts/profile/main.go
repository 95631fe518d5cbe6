/*profile plots cross sections of a .hwf frame file with pyplot.

	$ profile frame.hwf out_prefix [x0 y0]

It writes <out_prefix>_x.png and <out_prefix>_y.png, the field along the
grid row and column passing closest to (x0, y0), and <out_prefix>_r.png,
the field against radial distance from (x0, y0). The center defaults to
the middle of the grid.
*/
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/huygens/io"
)

func main() {
	if len(os.Args) != 3 && len(os.Args) != 5 {
		log.Fatalf(
			"Required file use: $ %s frame.hwf out_prefix [x0 y0]",
			os.Args[0],
		)
	}

	frameFile, outPrefix := os.Args[1], os.Args[2]

	hd, vals, err := io.ReadFrame(frameFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	loc := &hd.Loc

	x0 := (loc.XMin + loc.XMax) / 2
	y0 := (loc.YMin + loc.YMax) / 2
	if len(os.Args) == 5 {
		if x0, err = strconv.ParseFloat(os.Args[3], 64); err != nil {
			log.Fatal(err.Error())
		}
		if y0, err = strconv.ParseFloat(os.Args[4], 64); err != nil {
			log.Fatal(err.Error())
		}
	}

	nx, ny := int(loc.XPixels), int(loc.YPixels)
	ix := nearestIdx(loc.XMin, loc.XWidth, nx, x0)
	iy := nearestIdx(loc.YMin, loc.YWidth, ny, y0)

	xs, xVals := make([]float64, nx), make([]float64, nx)
	for i := 0; i < nx; i++ {
		xs[i] = loc.XMin + float64(i)*loc.XWidth
		xVals[i] = vals[i+iy*nx]
	}

	ys, yVals := make([]float64, ny), make([]float64, ny)
	for j := 0; j < ny; j++ {
		ys[j] = loc.YMin + float64(j)*loc.YWidth
		yVals[j] = vals[ix+j*nx]
	}

	rs, rVals := make([]float64, len(vals)), make([]float64, len(vals))
	for idx := range vals {
		x := loc.XMin + float64(idx%nx)*loc.XWidth
		y := loc.YMin + float64(idx/nx)*loc.YWidth
		rs[idx] = math.Sqrt((x-x0)*(x-x0) + (y-y0)*(y-y0))
		rVals[idx] = vals[idx]
	}

	title := fmt.Sprintf("t = %.4g", hd.Field.Time)

	plt.Reset()

	plt.Figure()
	plt.Plot(xs, xVals, "b", plt.LW(2))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$E$`, plt.FontSize(16))
	plt.Title(title)
	plt.SaveFig(fmt.Sprintf("%s_x.png", outPrefix))

	plt.Figure()
	plt.Plot(ys, yVals, "b", plt.LW(2))
	plt.XLabel(`$y$`, plt.FontSize(16))
	plt.YLabel(`$E$`, plt.FontSize(16))
	plt.Title(title)
	plt.SaveFig(fmt.Sprintf("%s_y.png", outPrefix))

	plt.Figure()
	plt.Plot(rs, rVals, "ok")
	plt.XLabel(`$r$`, plt.FontSize(16))
	plt.YLabel(`$E$`, plt.FontSize(16))
	plt.Title(title)
	plt.SaveFig(fmt.Sprintf("%s_r.png", outPrefix))

	plt.Execute()
}

// nearestIdx returns the index of the grid line closest to x, clamped into
// the grid.
func nearestIdx(min, width float64, n int, x float64) int {
	if width == 0 {
		return 0
	}
	i := int(math.Round((x - min) / width))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}
