package radspec

import (
	"errors"
	"math"
)

// VisibleWavelengths importance-samples wavelengths with density
// ∝ 1/cosh²(A(λ-B)) over [Min,Max], which follows the eye's response and keeps
// variance low for visible-range spectra. The normalization is computed once
// by NewVisibleWavelengths; the value is immutable and can be shared freely.
type VisibleWavelengths struct {
	Min, Max Real
	A, B     Real

	invIntegral Real // 1/∫ 1/cosh²(A(λ-B)) dλ over [Min,Max]
	tanhMin     Real // tanh(A(Min-B))
	span        Real // A * integral, the tanh range covered by u in [0,1)
}

// NewVisibleWavelengths prepares the warp for [lambdaMin,lambdaMax] (nm).
func NewVisibleWavelengths(lambdaMin, lambdaMax Real) (*VisibleWavelengths, error) {
	if !(lambdaMin < lambdaMax) || !isFinite(lambdaMin) || !isFinite(lambdaMax) {
		return nil, errors.New("wavelength range must be finite with min < max")
	}
	const a, b = VisWaveA, VisWaveB
	tMin := math.Tanh(a * (lambdaMin - b))
	tMax := math.Tanh(a * (lambdaMax - b))
	// d/dλ tanh(A(λ-B)) = A/cosh²(A(λ-B))
	integral := (tMax - tMin) / a
	w := &VisibleWavelengths{
		Min: lambdaMin, Max: lambdaMax, A: a, B: b,
		invIntegral: 1 / integral,
		tanhMin:     tMin,
		span:        tMax - tMin,
	}
	DebugLog("Created visible wavelength warp: [%g, %g] nm, 1/integral=%g", lambdaMin, lambdaMax, w.invIntegral)
	return w, nil
}

// Sample inverts the CDF analytically: u in [0,1) -> λ in [Min,Max).
func (w *VisibleWavelengths) Sample(u Real) Real {
	lambda := w.B + math.Atanh(w.tanhMin+u*w.span)/w.A
	if lambda < w.Min {
		return w.Min
	}
	if lambda >= w.Max {
		return math.Nextafter(w.Max, w.Min)
	}
	return lambda
}

// Pdf is the density of Sample at lambda, 0 outside [Min,Max].
func (w *VisibleWavelengths) Pdf(lambda Real) Real {
	if lambda < w.Min || lambda > w.Max {
		return 0
	}
	c := math.Cosh(w.A * (lambda - w.B))
	return w.invIntegral / (c * c)
}

// SampledWavelengths carries the wavelengths a spectral path is evaluated at.
type SampledWavelengths struct {
	Lambda [NSpectrumSamples]Real
	Pdf    [NSpectrumSamples]Real
}

// SampleVisible draws NSpectrumSamples wavelengths from one uniform value,
// offsetting it by i/N (wrapped) so the set is stratified over the range.
func (w *VisibleWavelengths) SampleVisible(u Real) SampledWavelengths {
	var s SampledWavelengths
	for i := 0; i < NSpectrumSamples; i++ {
		up := u + Real(i)/NSpectrumSamples
		if up >= 1 {
			up -= 1
		}
		s.Lambda[i] = w.Sample(up)
		s.Pdf[i] = w.Pdf(s.Lambda[i])
	}
	return s
}
