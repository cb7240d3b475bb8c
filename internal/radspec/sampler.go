package radspec

import (
	"fmt"
	"strings"
)

// Sampler produces the uniform numbers an integrator consumes for one pixel sample.
// Instances are stateful and must not be shared between goroutines; use Clone
// to give each worker its own.
type Sampler interface {
	SamplesPerPixel() int
	// StartPixelSample positions the sampler at sample sampleIndex of pixel p,
	// with the dimension counter starting at dimension.
	StartPixelSample(p Point2i, sampleIndex, dimension int)
	Next1D() Real
	Next2D() Point2f
	// Clone returns an independent copy carrying the current state forward.
	Clone() Sampler
}

// SamplerKind selects the Sampler implementation.
type SamplerKind string

const (
	KindIndependent SamplerKind = "independent"
	KindStratified  SamplerKind = "stratified"
)

// DefaultSamplerKind is used when a config names no sampler.
const DefaultSamplerKind = KindStratified

func (k SamplerKind) normalize() SamplerKind {
	if k == "" {
		return DefaultSamplerKind
	}
	return SamplerKind(strings.ToLower(string(k)))
}

// NewSampler builds the configured sampler once, at configuration time.
func NewSampler(cfg SamplerCfg) (Sampler, error) {
	switch cfg.Kind.normalize() {
	case KindIndependent:
		return NewIndependentSampler(cfg.Seed, cfg.SamplesPerPixel), nil
	case KindStratified:
		return NewStratifiedSampler(cfg.SamplesPerPixel, cfg.Seed, !cfg.NoJitter)
	default:
		return nil, fmt.Errorf("unknown sampler kind %q", cfg.Kind)
	}
}
