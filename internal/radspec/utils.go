package radspec

import "math"

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
