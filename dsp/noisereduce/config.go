package noisereduce

import (
	"fmt"
	"math"
)

const (
	defaultNoiseFrames     = 10
	defaultSpectralFloor   = 0.1
	defaultOverSubtraction = 2.0
	defaultMakeupGain      = 1.5
)

// Config is an immutable record of the four tunable parameters of the
// spectral subtraction engine.
type Config struct {
	NoiseFrames     int
	SpectralFloor   float64
	OverSubtraction float64
	MakeupGain      float64
}

// DefaultConfig returns the engine's built-in default configuration.
func DefaultConfig() Config {
	return Config{
		NoiseFrames:     defaultNoiseFrames,
		SpectralFloor:   defaultSpectralFloor,
		OverSubtraction: defaultOverSubtraction,
		MakeupGain:      defaultMakeupGain,
	}
}

// Option configures a Config built by NewConfig.
type Option func(*Config) error

// WithNoiseFrames sets the number of leading frames used to estimate the
// noise profile (must be >= 1).
func WithNoiseFrames(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: noise frames must be >= 1: %d", ErrConfigInvalid, n)
		}

		c.NoiseFrames = n

		return nil
	}
}

// WithSpectralFloor sets the minimum retained fraction of the original
// magnitude per bin after subtraction (must be in [0, 1]).
func WithSpectralFloor(floor float64) Option {
	return func(c *Config) error {
		if floor < 0 || floor > 1 || math.IsNaN(floor) || math.IsInf(floor, 0) {
			return fmt.Errorf("%w: spectral floor must be in [0, 1]: %f", ErrConfigInvalid, floor)
		}

		c.SpectralFloor = floor

		return nil
	}
}

// WithOverSubtraction sets the multiplier applied to the noise estimate
// before subtraction (must be >= 0).
func WithOverSubtraction(factor float64) Option {
	return func(c *Config) error {
		if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
			return fmt.Errorf("%w: over-subtraction must be >= 0: %f", ErrConfigInvalid, factor)
		}

		c.OverSubtraction = factor

		return nil
	}
}

// WithMakeupGain sets the scalar applied to the reconstructed
// time-domain signal (must be >= 0).
func WithMakeupGain(gain float64) Option {
	return func(c *Config) error {
		if gain < 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
			return fmt.Errorf("%w: makeup gain must be >= 0: %f", ErrConfigInvalid, gain)
		}

		c.MakeupGain = gain

		return nil
	}
}

// NewConfig builds a Config from the engine defaults, applying opts in
// order.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// Validate reports whether every field of cfg satisfies the engine's
// preconditions.
func (cfg Config) Validate() error {
	if cfg.NoiseFrames < 1 {
		return fmt.Errorf("%w: noise frames must be >= 1: %d", ErrConfigInvalid, cfg.NoiseFrames)
	}

	if cfg.SpectralFloor < 0 || cfg.SpectralFloor > 1 ||
		math.IsNaN(cfg.SpectralFloor) || math.IsInf(cfg.SpectralFloor, 0) {
		return fmt.Errorf("%w: spectral floor must be in [0, 1]: %f", ErrConfigInvalid, cfg.SpectralFloor)
	}

	if cfg.OverSubtraction < 0 || math.IsNaN(cfg.OverSubtraction) || math.IsInf(cfg.OverSubtraction, 0) {
		return fmt.Errorf("%w: over-subtraction must be >= 0: %f", ErrConfigInvalid, cfg.OverSubtraction)
	}

	if cfg.MakeupGain < 0 || math.IsNaN(cfg.MakeupGain) || math.IsInf(cfg.MakeupGain, 0) {
		return fmt.Errorf("%w: makeup gain must be >= 0: %f", ErrConfigInvalid, cfg.MakeupGain)
	}

	return nil
}
