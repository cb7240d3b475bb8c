package radspec

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotPerfectSquare is returned when a stratified sampler is asked for a
// sample count that cannot be laid out as a square grid.
var ErrNotPerfectSquare = errors.New("samples per pixel must be a perfect square")

// StratifiedSampler splits [0,1)^2 into res x res strata. Sample i of a pixel
// lands in stratum PermutationElement(i, spp, key), where the key hashes the
// pixel, dimension and seed: the spp samples of one pixel visit every stratum
// once, while each pixel and dimension sees its own ordering.
type StratifiedSampler struct {
	spp    int
	res    int
	seed   uint64
	jitter bool
	rng    PCG32

	started     bool
	pixel       Point2i
	sampleIndex int
	dimension   int
}

// NewStratifiedSampler validates samplesPerPixel and builds the sampler.
// With jitter off each sample sits at its stratum centre.
func NewStratifiedSampler(samplesPerPixel int, seed uint64, jitter bool) (*StratifiedSampler, error) {
	if samplesPerPixel <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNotPerfectSquare, samplesPerPixel)
	}
	res := int(math.Ceil(math.Sqrt(Real(samplesPerPixel))))
	if res*res != samplesPerPixel {
		return nil, fmt.Errorf("%w: got %d", ErrNotPerfectSquare, samplesPerPixel)
	}
	s := &StratifiedSampler{
		spp:    samplesPerPixel,
		res:    res,
		seed:   seed,
		jitter: jitter,
		rng:    NewPCG32(PCG32DefaultStream, seed),
	}
	DebugLog("Created stratified sampler: spp=%d (%dx%d), seed=%d, jitter=%v", samplesPerPixel, res, res, seed, jitter)
	return s, nil
}

func (s *StratifiedSampler) SamplesPerPixel() int { return s.spp }

// Resolution is the number of strata along each axis.
func (s *StratifiedSampler) Resolution() int { return s.res }

func (s *StratifiedSampler) StartPixelSample(p Point2i, sampleIndex, dimension int) {
	s.started = true
	s.pixel = p
	s.sampleIndex = sampleIndex
	s.dimension = dimension
	s.rng.Reseed(Hash(pixelKey(p), s.seed))
	s.rng.Advance(int64(sampleIndex)*dimensionStride + int64(dimension))
}

// stratum picks this sample's stratum for the current dimension.
func (s *StratifiedSampler) stratum() int {
	if !s.started {
		panic("radspec: stratified sampler used before StartPixelSample")
	}
	key := Hash(pixelKey(s.pixel), uint64(s.dimension), s.seed)
	return int(PermutationElement(uint32(s.sampleIndex), uint32(s.spp), uint32(key)))
}

func (s *StratifiedSampler) offset() Real {
	if s.jitter {
		return s.rng.Float64()
	}
	return 0.5
}

func (s *StratifiedSampler) Next1D() Real {
	st := s.stratum()
	s.dimension++
	return (Real(st) + s.offset()) / Real(s.spp)
}

func (s *StratifiedSampler) Next2D() Point2f {
	st := s.stratum()
	s.dimension += 2
	x, y := st%s.res, st/s.res
	dx := s.offset()
	dy := s.offset()
	return Point2f{(Real(x) + dx) / Real(s.res), (Real(y) + dy) / Real(s.res)}
}

func (s *StratifiedSampler) Clone() Sampler {
	c := *s
	return &c
}
