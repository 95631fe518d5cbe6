package huygens

// Grid is the fixed 2D sampling domain shared by every wavelet in a
// simulation. The coordinate slabs are stored as flat row-major slices so
// that frame buffers index the same way, which lets workers reason over a
// 1D cell range.
//
// A Grid is immutable once constructed and safe to share across goroutines.
type Grid struct {
	// Xs and Ys hold the x and y coordinate of every cell, row-major, both
	// of length Nx*Ny.
	Xs, Ys []float64
	Nx, Ny int

	xMin, xMax float64
	yMin, yMax float64
	dx, dy     float64
}

// NewGrid creates a regular mesh of nx by ny points spanning
// [xMin, xMax] x [yMin, yMax], inclusive of both bounds on each axis.
func NewGrid(xMin, xMax, yMin, yMax float64, nx, ny int) (*Grid, error) {
	if xMin >= xMax {
		return nil, configErrorf(
			"Grid x range [%g, %g] is empty.", xMin, xMax,
		)
	} else if yMin >= yMax {
		return nil, configErrorf(
			"Grid y range [%g, %g] is empty.", yMin, yMax,
		)
	}
	if nx < 1 {
		return nil, configErrorf("Grid x cell count %d is non-positive.", nx)
	} else if ny < 1 {
		return nil, configErrorf("Grid y cell count %d is non-positive.", ny)
	}

	g := &Grid{
		Nx: nx, Ny: ny,
		xMin: xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
	}

	// A single-point axis collapses onto its lower bound.
	if nx > 1 {
		g.dx = (xMax - xMin) / float64(nx-1)
	}
	if ny > 1 {
		g.dy = (yMax - yMin) / float64(ny-1)
	}

	g.Xs = make([]float64, nx*ny)
	g.Ys = make([]float64, nx*ny)
	idx := 0
	for j := 0; j < ny; j++ {
		y := yMin + float64(j)*g.dy
		for i := 0; i < nx; i++ {
			g.Xs[idx] = xMin + float64(i)*g.dx
			g.Ys[idx] = y
			idx++
		}
	}

	return g, nil
}

// Cells returns the number of points in the grid.
func (g *Grid) Cells() int { return g.Nx * g.Ny }

// Idx returns the flat index of the cell in column ix of row iy.
func (g *Grid) Idx(ix, iy int) int { return ix + iy*g.Nx }

// Coords returns the column and row of a flat cell index.
func (g *Grid) Coords(idx int) (ix, iy int) {
	return idx % g.Nx, idx / g.Nx
}

// At returns the spatial coordinates of a flat cell index.
func (g *Grid) At(idx int) (x, y float64) {
	return g.Xs[idx], g.Ys[idx]
}

// Dx returns the spacing between neighboring columns.
func (g *Grid) Dx() float64 { return g.dx }

// Dy returns the spacing between neighboring rows.
func (g *Grid) Dy() float64 { return g.dy }

// XRange returns the x extent of the grid.
func (g *Grid) XRange() (min, max float64) { return g.xMin, g.xMax }

// YRange returns the y extent of the grid.
func (g *Grid) YRange() (min, max float64) { return g.yMin, g.yMax }
