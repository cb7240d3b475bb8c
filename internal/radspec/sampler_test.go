package radspec

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestNewStratifiedSamplerRejectsNonSquare(t *testing.T) {
	for _, n := range []int{-4, 0, 2, 3, 15, 17, 99} {
		s, err := NewStratifiedSampler(n, 1, true)
		if !errors.Is(err, ErrNotPerfectSquare) {
			t.Fatalf("spp=%d: err=%v, want ErrNotPerfectSquare", n, err)
		}
		if s != nil {
			t.Fatalf("spp=%d: sampler returned alongside error", n)
		}
	}
	for _, n := range []int{1, 4, 9, 16, 100} {
		s, err := NewStratifiedSampler(n, 1, true)
		if err != nil {
			t.Fatalf("spp=%d: unexpected error %v", n, err)
		}
		if s.Resolution()*s.Resolution() != n || s.SamplesPerPixel() != n {
			t.Fatalf("spp=%d: resolution %d", n, s.Resolution())
		}
	}
}

func stratumOf2D(p Point2f, res int) int {
	return int(p.X*Real(res)) + res*int(p.Y*Real(res))
}

func TestStratifiedFullCoverage2D(t *testing.T) {
	pixels := []Point2i{{0, 0}, {1, 0}, {17, 42}, {-3, 5}, {1023, 767}}
	for _, spp := range []int{1, 4, 9, 16, 64} {
		for _, jitter := range []bool{false, true} {
			s, err := NewStratifiedSampler(spp, 1234, jitter)
			if err != nil {
				t.Fatal(err)
			}
			res := s.Resolution()
			for _, px := range pixels {
				for _, dim := range []int{0, 3, 10} {
					seen := make([]bool, spp)
					for i := 0; i < spp; i++ {
						s.StartPixelSample(px, i, dim)
						p := s.Next2D()
						if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
							t.Fatalf("sample %+v outside unit square", p)
						}
						st := stratumOf2D(p, res)
						if seen[st] {
							t.Fatalf("spp=%d pixel=%+v dim=%d: stratum %d repeated", spp, px, dim, st)
						}
						seen[st] = true
					}
				}
			}
		}
	}
}

func TestStratifiedFullCoverage1D(t *testing.T) {
	const spp = 25
	s, err := NewStratifiedSampler(spp, 99, true)
	if err != nil {
		t.Fatal(err)
	}
	seen := make([]bool, spp)
	for i := 0; i < spp; i++ {
		s.StartPixelSample(Point2i{5, 6}, i, 2)
		v := s.Next1D()
		st := int(v * spp)
		if st < 0 || st >= spp || seen[st] {
			t.Fatalf("1D stratum %d invalid or repeated", st)
		}
		seen[st] = true
	}
}

func TestStratifiedNoJitterCentres(t *testing.T) {
	s, _ := NewStratifiedSampler(4, 0, false)
	s.StartPixelSample(Point2i{}, 0, 0)
	p := s.Next2D()
	for _, v := range []Real{p.X, p.Y} {
		if v != 0.25 && v != 0.75 {
			t.Fatalf("non-jittered sample %+v is not at a stratum centre", p)
		}
	}
}

func TestStratifiedDimensionCounter(t *testing.T) {
	s, _ := NewStratifiedSampler(16, 7, true)
	s.StartPixelSample(Point2i{2, 3}, 5, 4)
	s.Next1D()
	if s.dimension != 5 {
		t.Fatalf("after Next1D dimension=%d want 5", s.dimension)
	}
	s.Next2D()
	if s.dimension != 7 {
		t.Fatalf("after Next2D dimension=%d want 7", s.dimension)
	}
	s.StartPixelSample(Point2i{2, 3}, 6, 0)
	if s.dimension != 0 || s.sampleIndex != 6 {
		t.Fatalf("StartPixelSample did not reset cursor: %+v", s)
	}
}

func TestStratifiedDecorrelatesPixelsAndDimensions(t *testing.T) {
	const spp = 64
	s, _ := NewStratifiedSampler(spp, 42, false)
	order := func(px Point2i, dim int) []int {
		out := make([]int, spp)
		for i := range out {
			s.StartPixelSample(px, i, dim)
			out[i] = stratumOf2D(s.Next2D(), s.Resolution())
		}
		return out
	}
	equal := func(a, b []int) bool {
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	base := order(Point2i{0, 0}, 0)
	if equal(base, order(Point2i{1, 0}, 0)) {
		t.Fatal("neighbouring pixels share a stratum ordering")
	}
	if equal(base, order(Point2i{0, 0}, 2)) {
		t.Fatal("dimensions share a stratum ordering")
	}
	if !equal(base, order(Point2i{0, 0}, 0)) {
		t.Fatal("ordering is not reproducible")
	}
}

func TestStratifiedDrawBeforeStartPanics(t *testing.T) {
	s, _ := NewStratifiedSampler(4, 0, true)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when drawing before StartPixelSample")
		}
	}()
	s.Next2D()
}

func TestSamplerCloneIsIndependent(t *testing.T) {
	strat, _ := NewStratifiedSampler(16, 3, true)
	for _, s := range []Sampler{NewIndependentSampler(3, 16), strat} {
		s.StartPixelSample(Point2i{4, 4}, 2, 0)
		s.Next2D()
		c := s.Clone()
		for i := 0; i < 5; i++ {
			a, b := s.Next2D(), c.Next2D()
			if a != b {
				t.Fatalf("%T: clone diverged at %d: %+v vs %+v", s, i, a, b)
			}
		}
		// Advancing the clone must not move the original.
		before := s.Clone()
		c.Next1D()
		c.Next1D()
		if s.Next1D() != before.Next1D() {
			t.Fatalf("%T: clone shares state with the original", s)
		}
	}
}

func TestIndependentSamplerPerPixelStreams(t *testing.T) {
	s := NewIndependentSampler(2024, 4)
	draw := func(px Point2i, i int) Point2f {
		s.StartPixelSample(px, i, 0)
		return s.Next2D()
	}
	a := draw(Point2i{10, 20}, 1)
	if b := draw(Point2i{10, 20}, 1); a != b {
		t.Fatalf("not reproducible: %+v vs %+v", a, b)
	}
	if b := draw(Point2i{20, 10}, 1); a == b {
		t.Fatal("transposed pixel produced the same draw")
	}
	if b := draw(Point2i{10, 20}, 2); a == b {
		t.Fatal("next sample index produced the same draw")
	}
	other := NewIndependentSampler(2025, 4)
	other.StartPixelSample(Point2i{10, 20}, 1, 0)
	if b := other.Next2D(); a == b {
		t.Fatal("global seed did not change the pixel stream")
	}
	// Dimension offset d is the same stream advanced by d draws.
	s.StartPixelSample(Point2i{10, 20}, 1, 0)
	s.Next1D()
	want := s.Next1D()
	s.StartPixelSample(Point2i{10, 20}, 1, 1)
	if got := s.Next1D(); got != want {
		t.Fatalf("dimension offset mismatch: %g vs %g", got, want)
	}
}

func TestIndependentSamplerSetSeed(t *testing.T) {
	a := NewIndependentSampler(1, 1)
	b := NewIndependentSampler(5, 1)
	b.SetSeed(1)
	for i := 0; i < 10; i++ {
		if x, y := a.Next1D(), b.Next1D(); x != y {
			t.Fatalf("SetSeed stream mismatch at %d: %g vs %g", i, x, y)
		}
	}
}

func TestNewSamplerFromConfig(t *testing.T) {
	s, err := NewSampler(SamplerCfg{Kind: "Stratified", SamplesPerPixel: 9, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*StratifiedSampler); !ok {
		t.Fatalf("got %T want *StratifiedSampler", s)
	}
	if s, err = NewSampler(SamplerCfg{Kind: "INDEPENDENT", SamplesPerPixel: 3}); err != nil {
		t.Fatal(err)
	} else if _, ok := s.(*IndependentSampler); !ok {
		t.Fatalf("independent kind gave %T", s)
	}
	if s, err = NewSampler(SamplerCfg{SamplesPerPixel: 4}); err != nil {
		t.Fatal(err)
	} else if _, ok := s.(*StratifiedSampler); !ok || DefaultSamplerKind != KindStratified {
		t.Fatalf("default kind gave %T", s)
	}
	if _, err := NewSampler(SamplerCfg{Kind: KindStratified, SamplesPerPixel: 8}); !errors.Is(err, ErrNotPerfectSquare) {
		t.Fatalf("err=%v want ErrNotPerfectSquare", err)
	}
	if _, err := NewSampler(SamplerCfg{Kind: "sobol", SamplesPerPixel: 4}); err == nil {
		t.Fatal("unknown kind accepted")
	}
}

// Per-pixel estimates of ∫∫ xy over the unit square (= 1/4); stratification must cut the spread.
func TestStratifiedReducesVariance(t *testing.T) {
	const spp, pixels = 16, 400
	estimate := func(s Sampler) []float64 {
		out := make([]float64, pixels)
		for p := 0; p < pixels; p++ {
			px := Point2i{p % 20, p / 20}
			sum := 0.0
			for i := 0; i < spp; i++ {
				s.StartPixelSample(px, i, 0)
				u := s.Next2D()
				sum += u.X * u.Y
			}
			out[p] = sum / spp
		}
		return out
	}
	strat, _ := NewStratifiedSampler(spp, 11, true)
	mi, vi := stat.MeanVariance(estimate(NewIndependentSampler(11, spp)), nil)
	ms, vs := stat.MeanVariance(estimate(strat), nil)
	if !near(mi, 0.25, 0.01) || !near(ms, 0.25, 0.01) {
		t.Fatalf("biased estimates: independent=%g stratified=%g", mi, ms)
	}
	if vs >= vi/2 {
		t.Fatalf("stratified variance %g not clearly below independent %g", vs, vi)
	}
}
