package radspec

import (
	"math"
	"sort"
)

// PiecewiseConstant1D samples a step function with n equal-width bins over [min,max)
// by inverting its tabulated CDF. Immutable once built; safe for concurrent readers.
type PiecewiseConstant1D struct {
	f        []Real // |weights|
	cdf      []Real // len(f)+1, cdf[0]=0, nondecreasing
	min, max Real
	integral Real
}

// NewPiecewiseConstant1D builds the distribution of |f| over [min,max).
// f must not be empty. When every weight is zero the CDF becomes the
// uniform ramp i/n and all pdfs are 0.
func NewPiecewiseConstant1D(f []Real, min, max Real) *PiecewiseConstant1D {
	n := len(f)
	if n == 0 {
		panic("radspec: piecewise-constant distribution needs at least one weight")
	}
	fn := make([]Real, n)
	for i, v := range f {
		fn[i] = math.Abs(v)
	}

	// Rectangle-rule running integral.
	cdf := make([]Real, n+1)
	width := (max - min) / Real(n)
	for i := 1; i <= n; i++ {
		cdf[i] = cdf[i-1] + fn[i-1]*width
	}
	integral := cdf[n]
	if integral == 0 {
		DebugLogOnce("1D distribution with all-zero weights, using a uniform CDF ramp")
		for i := 1; i <= n; i++ {
			cdf[i] = Real(i) / Real(n)
		}
	} else {
		for i := 1; i <= n; i++ {
			cdf[i] /= integral
		}
	}

	d := &PiecewiseConstant1D{f: fn, cdf: cdf, min: min, max: max, integral: integral}
	DebugLog("Created 1D distribution: n=%d, domain=[%g, %g), integral=%g", n, min, max, integral)
	return d
}

// Len is the number of bins.
func (d *PiecewiseConstant1D) Len() int { return len(d.f) }

// Integral of |f| over the domain (before normalization).
func (d *PiecewiseConstant1D) Integral() Real { return d.integral }

// Func returns the tabulated weights. Callers must not modify the slice.
func (d *PiecewiseConstant1D) Func() []Real { return d.f }

// Domain returns [min,max).
func (d *PiecewiseConstant1D) Domain() (min, max Real) { return d.min, d.max }

// findInterval returns the last bin whose cdf start is <= u, clamped to [0,n-1].
// Flat (zero-weight) runs are skipped over when u sits exactly on their value.
func (d *PiecewiseConstant1D) findInterval(u Real) int {
	i := sort.Search(len(d.cdf), func(k int) bool { return d.cdf[k] > u }) - 1
	if i < 0 {
		return 0
	}
	if n := len(d.f); i > n-1 {
		return n - 1
	}
	return i
}

// Sample maps u in [0,1) to a value in [min,max). It also returns the density at
// that value and the bin index, so callers can read the exact tabulated weight.
func (d *PiecewiseConstant1D) Sample(u Real) (value, pdf Real, offset int) {
	offset = d.findInterval(u)
	du := u - d.cdf[offset]
	if w := d.cdf[offset+1] - d.cdf[offset]; w > 0 {
		du /= w
	}
	if d.integral > 0 {
		pdf = d.f[offset] / d.integral
	}
	value = lerp(d.min, d.max, (Real(offset)+du)/Real(len(d.f)))
	// du can round to 1 near a cdf edge; keep value inside bin offset so Pdf agrees.
	for b := d.bin(value); b != offset && d.max > d.min; b = d.bin(value) {
		if b > offset {
			value = math.Nextafter(value, math.Inf(-1))
		} else {
			value = math.Nextafter(value, math.Inf(1))
		}
	}
	return value, pdf, offset
}

// bin is the index Pdf reads for value.
func (d *PiecewiseConstant1D) bin(value Real) int {
	t := (value - d.min) / (d.max - d.min)
	return int(math.Floor(t * Real(len(d.f))))
}

// Pdf returns the density at value. value must lie in [min,max); it is not
// range checked and out-of-domain values index past the table.
func (d *PiecewiseConstant1D) Pdf(value Real) Real {
	if d.integral == 0 {
		return 0
	}
	return d.f[d.bin(value)] / d.integral
}
