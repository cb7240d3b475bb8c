package radspec

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// Estimate summarizes per-pixel Monte Carlo estimates.
type Estimate struct {
	Mean, StdDev Real
	Pixels       int
}

func summarize(xs []Real) Estimate {
	if len(xs) == 0 {
		return Estimate{}
	}
	m, s := stat.MeanStdDev(xs, nil)
	return Estimate{Mean: m, StdDev: s, Pixels: len(xs)}
}

// estimator integrates a tabulated 2D function over a resX x resY pixel grid:
// every pixel produces its own estimate from SamplesPerPixel samples.
type estimator struct {
	dist        *PiecewiseConstant2D
	wavelengths *VisibleWavelengths // optional
	resX, resY  int
	workers     int
	importance  bool // sample dist itself instead of its domain uniformly
	bins        int  // >0: histogram sample positions into bins x bins cells
}

type estimateResult struct {
	integral []Real // per pixel, row-major
	span     []Real // per pixel estimate of the wavelength range width
	hist     []Real // bins*bins, row-major from Min.Y up
}

// run fans rows out over workers; each worker owns a clone of proto, so proto
// itself is never drawn from.
func (e *estimator) run(proto Sampler) estimateResult {
	workers := e.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > e.resY {
		workers = imax(e.resY, 1)
	}
	n := e.resX * e.resY
	res := estimateResult{integral: make([]Real, n)}
	if e.wavelengths != nil {
		res.span = make([]Real, n)
	}
	hists := make([][]Real, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		wid := w
		go func() {
			defer wg.Done()
			s := proto.Clone()
			var hist []Real
			if e.bins > 0 {
				hist = make([]Real, e.bins*e.bins)
			}
			for y := wid; y < e.resY; y += workers {
				for x := 0; x < e.resX; x++ {
					i := y*e.resX + x
					v, sp := e.pixel(s, Point2i{x, y}, hist, res.span != nil)
					res.integral[i] = v
					if res.span != nil {
						res.span[i] = sp
					}
				}
			}
			hists[wid] = hist
		}()
	}
	wg.Wait()

	if e.bins > 0 {
		res.hist = make([]Real, e.bins*e.bins)
		for _, h := range hists {
			for i, v := range h {
				res.hist[i] += v
			}
		}
	}
	return res
}

// pixel returns the estimates of one pixel; the second is 0 when spectral is false.
func (e *estimator) pixel(s Sampler, p Point2i, hist []Real, spectral bool) (Real, Real) {
	spp := s.SamplesPerPixel()
	min, max := e.dist.Domain()
	area := (max.X - min.X) * (max.Y - min.Y)
	var sum, span Real
	for i := 0; i < spp; i++ {
		s.StartPixelSample(p, i, 0)
		u := s.Next2D()
		var v Point2f
		if e.importance {
			var pdf Real
			var off Point2i
			v, pdf, off = e.dist.Sample(u)
			if pdf > 0 {
				sum += e.dist.Conditional(off.Y).Func()[off.X] / pdf
			}
		} else {
			v = lerp2(min, max, u)
			sum += e.dist.Eval(v) * area
		}
		if hist != nil {
			t := Point2f{(v.X - min.X) / (max.X - min.X), (v.Y - min.Y) / (max.Y - min.Y)}
			c := t.Mul(Real(e.bins)).Floor()
			if c.X >= 0 && c.X < e.bins && c.Y >= 0 && c.Y < e.bins {
				hist[c.Y*e.bins+c.X]++
			}
		}
		if spectral {
			sw := e.wavelengths.SampleVisible(s.Next1D())
			for _, pdf := range sw.Pdf {
				if pdf > 0 {
					span += 1 / pdf
				}
			}
		}
	}
	if spectral {
		span /= Real(spp * NSpectrumSamples)
	}
	return sum / Real(spp), span
}
