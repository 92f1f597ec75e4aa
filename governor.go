package spiro

import "time"

// maxStride bounds how far the governor may thin the samples.
const maxStride = 16

// DensityGovernor degrades sample density instead of blocking the frame:
// while regeneration exceeds the frame budget the stride doubles, and
// while it takes under a quarter of the budget the stride halves again.
//
// A zero budget disables the governor (stride stays 1).
type DensityGovernor struct {
	budget time.Duration
	stride int
}

// NewDensityGovernor returns a governor for the given per-frame budget.
func NewDensityGovernor(budget time.Duration) *DensityGovernor {
	return &DensityGovernor{budget: budget, stride: 1}
}

// Stride returns the current sample stride (1 = full density).
func (g *DensityGovernor) Stride() int {
	if g == nil || g.stride < 1 {
		return 1
	}
	return g.stride
}

// Observe records the duration of one regeneration and reports whether the
// stride changed, and whether it now samples more densely.
func (g *DensityGovernor) Observe(elapsed time.Duration) (changed, finer bool) {
	if g == nil || g.budget <= 0 {
		return false, false
	}
	switch {
	case elapsed > g.budget && g.stride < maxStride:
		g.stride *= 2
		return true, false
	case elapsed < g.budget/4 && g.stride > 1:
		g.stride /= 2
		return true, true
	}
	return false, false
}
