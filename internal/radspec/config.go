package radspec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type SamplerCfg struct {
	Kind            SamplerKind `json:"kind" yaml:"kind"`
	SamplesPerPixel int         `json:"spp" yaml:"spp"`
	Seed            uint64      `json:"seed" yaml:"seed"`
	NoJitter        bool        `json:"noJitter,omitempty" yaml:"noJitter,omitempty"`
}

// DistributionCfg describes a tabulated 2D weight function (row-major).
type DistributionCfg struct {
	Width   int     `json:"width" yaml:"width"`
	Height  int     `json:"height" yaml:"height"`
	Min     Point2f `json:"min" yaml:"min"`
	Max     Point2f `json:"max" yaml:"max"`
	Weights []Real  `json:"weights" yaml:"weights"`
}

type WavelengthCfg struct {
	Min Real `json:"min,omitempty" yaml:"min,omitempty"`
	Max Real `json:"max,omitempty" yaml:"max,omitempty"`
}

type Config struct {
	ResX         int             `json:"resX" yaml:"resX"`
	ResY         int             `json:"resY" yaml:"resY"`
	Workers      int             `json:"workers,omitempty" yaml:"workers,omitempty"`
	Sampler      SamplerCfg      `json:"sampler" yaml:"sampler"`
	Distribution DistributionCfg `json:"distribution" yaml:"distribution"`
	Wavelengths  WavelengthCfg   `json:"wavelengths,omitempty" yaml:"wavelengths,omitempty"`
	PreviewOut   string          `json:"previewOut,omitempty" yaml:"previewOut,omitempty"`
	PreviewRes   int             `json:"previewRes,omitempty" yaml:"previewRes,omitempty"`
	PreviewBins  int             `json:"previewBins,omitempty" yaml:"previewBins,omitempty"`
	Gamma        Real            `json:"gamma,omitempty" yaml:"gamma,omitempty"`
}

// Build validates the table and constructs the distribution (min/max default to the unit square).
func (c DistributionCfg) Build() (*PiecewiseConstant2D, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("distribution size must be positive, got %dx%d", c.Width, c.Height)
	}
	if len(c.Weights) != c.Width*c.Height {
		return nil, fmt.Errorf("distribution needs %d weights (%dx%d), got %d", c.Width*c.Height, c.Width, c.Height, len(c.Weights))
	}
	for i, w := range c.Weights {
		if !isFinite(w) {
			return nil, fmt.Errorf("distribution weight %d is not finite: %g", i, w)
		}
	}
	min, max := c.Min, c.Max
	if min == (Point2f{}) && max == (Point2f{}) {
		max = Point2f{1, 1}
	}
	if !(min.X < max.X) || !(min.Y < max.Y) {
		return nil, fmt.Errorf("distribution domain is empty: min=%+v max=%+v", min, max)
	}
	return NewPiecewiseConstant2D(c.Weights, c.Width, c.Height, min, max), nil
}

// Build prepares the wavelength warp, defaulting to the visible range.
func (c WavelengthCfg) Build() (*VisibleWavelengths, error) {
	lo, hi := c.Min, c.Max
	if lo == 0 {
		lo = LambdaMin
	}
	if hi == 0 {
		hi = LambdaMax
	}
	return NewVisibleWavelengths(lo, hi)
}

// decodeConfig picks YAML for .yaml/.yml files and JSON otherwise.
func decodeConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := decodeConfig(path, data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.ResX <= 0 {
		cfg.ResX = ResX
	}
	if cfg.ResY <= 0 {
		cfg.ResY = ResY
	}
	if cfg.Sampler.SamplesPerPixel <= 0 {
		cfg.Sampler.SamplesPerPixel = SamplesPerPixel
	}
	cfg.Sampler.Kind = cfg.Sampler.Kind.normalize()
	if cfg.PreviewOut == "" {
		cfg.PreviewOut = PreviewOut
	}
	if cfg.PreviewRes <= 0 {
		cfg.PreviewRes = PreviewRes
	}
	if cfg.PreviewBins <= 0 {
		cfg.PreviewBins = PreviewBins
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = Gamma
	}
	if len(cfg.Distribution.Weights) == 0 {
		return nil, fmt.Errorf("config has no distribution weights")
	}
	DebugLog("Loaded config from %s: res=(%d, %d), sampler=%s, spp=%d, table=%dx%d", path, cfg.ResX, cfg.ResY, cfg.Sampler.Kind, cfg.Sampler.SamplesPerPixel, cfg.Distribution.Width, cfg.Distribution.Height)
	return &cfg, nil
}
