package radspec

// IndependentSampler returns raw uniform draws from one PCG32 stream.
type IndependentSampler struct {
	rng  PCG32
	seed uint64
	spp  int
}

// NewIndependentSampler creates a sampler whose stream starts at seed on the default stream.
func NewIndependentSampler(seed uint64, samplesPerPixel int) *IndependentSampler {
	s := &IndependentSampler{
		rng:  NewPCG32(PCG32DefaultStream, seed),
		seed: seed,
		spp:  samplesPerPixel,
	}
	DebugLog("Created independent sampler: seed=%d, spp=%d", seed, samplesPerPixel)
	return s
}

func (s *IndependentSampler) SamplesPerPixel() int { return s.spp }

// StartPixelSample gives every (pixel, sample) its own reproducible stream:
// the global seed and pixel are mixed into a reseed, then the stream is
// advanced past the dimensions of earlier samples.
func (s *IndependentSampler) StartPixelSample(p Point2i, sampleIndex, dimension int) {
	s.rng.Reseed(MixBits(s.seed ^ MixBits(pixelKey(p))))
	s.rng.Advance(int64(sampleIndex)*dimensionStride + int64(dimension))
}

func (s *IndependentSampler) Next1D() Real { return s.rng.Float64() }

func (s *IndependentSampler) Next2D() Point2f {
	x := s.rng.Float64()
	y := s.rng.Float64()
	return Point2f{x, y}
}

// SetSeed changes the global seed and restarts the stream from it.
func (s *IndependentSampler) SetSeed(seed uint64) {
	s.seed = seed
	s.rng.Reseed(seed)
}

func (s *IndependentSampler) Clone() Sampler {
	c := *s
	return &c
}
