/*package huygens simulates wavefront propagation under Huygens' principle in
two dimensions. Point-source wavelets each emit an expanding circular
wavefront starting at a fixed emission time, and a Simulator sums their
analytic contributions over a shared coordinate grid for a sequence of time
steps. Frames come out as plain float64 grids so that renderers and analysis
scripts can consume them without knowing anything about the core.
*/
package huygens

import (
	"runtime"
)

// NumCores is the number of goroutines used to evaluate a single frame. It
// defaults to the number of logical cores and may be lowered by drivers
// before any Simulator is run.
var NumCores = runtime.NumCPU()
