package radspec

const (
	SamplesPerPixel  = 16 // default, a perfect square so either sampler kind accepts it
	Seed             = 0
	ResX             = 64
	ResY             = 64
	PreviewRes       = 512
	PreviewBins      = 128
	PreviewOut       = "density.png"
	Gamma            = 0.5
	NSpectrumSamples = 4
	LambdaMin        = 360.0 // nm, visible range
	LambdaMax        = 830.0
	// visible-wavelength warp: density ∝ 1/cosh²(VisWaveA*(λ-VisWaveB))
	VisWaveA = 0.0072
	VisWaveB = 538.0
	// sampleIndex stride when advancing a per-pixel stream, leaves room for 65536 dimensions per sample
	dimensionStride = 65536
)
