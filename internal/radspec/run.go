package radspec

import (
	"time"
)

// Report is what Run measured.
type Report struct {
	Integral   Real     // exact integral of the tabulated function
	Uniform    Estimate // per-pixel estimates sampling the domain uniformly
	Importance Estimate // per-pixel estimates sampling the distribution itself
	Span       Estimate // per-pixel estimates of the wavelength range width
	Elapsed    time.Duration
}

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	_, err = render(cfg)
	return err
}

// render builds the distribution, sampler and wavelength warp once and runs both estimators.
func render(cfg *Config) (*Report, error) {
	dist, err := cfg.Distribution.Build()
	if err != nil {
		return nil, err
	}
	sampler, err := NewSampler(cfg.Sampler)
	if err != nil {
		return nil, err
	}
	wl, err := cfg.Wavelengths.Build()
	if err != nil {
		return nil, err
	}

	e := &estimator{
		dist:        dist,
		wavelengths: wl,
		resX:        cfg.ResX,
		resY:        cfg.ResY,
		workers:     cfg.Workers,
	}
	start := time.Now()
	uni := e.run(sampler)

	e.importance = true
	e.wavelengths = nil
	if PNG {
		e.bins = cfg.PreviewBins
	}
	imp := e.run(sampler)

	rep := &Report{
		Integral:   dist.Integral(),
		Uniform:    summarize(uni.integral),
		Importance: summarize(imp.integral),
		Span:       summarize(uni.span),
		Elapsed:    time.Since(start),
	}
	log.Info().
		Str("sampler", string(cfg.Sampler.Kind)).
		Int("spp", sampler.SamplesPerPixel()).
		Int("pixels", rep.Uniform.Pixels).
		Float64("integral", rep.Integral).
		Float64("uniform_mean", rep.Uniform.Mean).
		Float64("uniform_stddev", rep.Uniform.StdDev).
		Float64("importance_mean", rep.Importance.Mean).
		Float64("importance_stddev", rep.Importance.StdDev).
		Float64("lambda_span", rep.Span.Mean).
		Dur("elapsed", rep.Elapsed).
		Msg("estimated integral")

	if PNG {
		if err := SaveDensityPNG(imp.hist, e.bins, cfg.PreviewOut, cfg.PreviewRes, cfg.Gamma); err != nil {
			return nil, err
		}
		DebugLog("Saved density preview: %s", cfg.PreviewOut)
	}
	return rep, nil
}
