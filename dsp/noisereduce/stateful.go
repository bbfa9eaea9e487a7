package noisereduce

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/stft"
	"github.com/cwbudde/algo-dsp/dsp/window"
)

// Engine is a stateful spectral subtraction processor with setters for
// each configuration field. It caches the Hann window table and FFT
// plan across calls to Process. An Engine is not safe for concurrent
// use from multiple goroutines without external locking.
type Engine struct {
	cfg Config

	transform *stft.Transform
	window    []float64
}

// NewEngine creates an Engine with the given configuration.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg}
	if err := e.rebuildState(); err != nil {
		return nil, err
	}

	return e, nil
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetConfig replaces the engine's configuration wholesale.
func (e *Engine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg

	return nil
}

// SetNoiseFrames updates the noise-frame count.
func (e *Engine) SetNoiseFrames(n int) error {
	cfg := e.cfg
	cfg.NoiseFrames = n

	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg

	return nil
}

// SetSpectralFloor updates the spectral floor.
func (e *Engine) SetSpectralFloor(floor float64) error {
	cfg := e.cfg
	cfg.SpectralFloor = floor

	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg

	return nil
}

// SetOverSubtraction updates the over-subtraction factor.
func (e *Engine) SetOverSubtraction(factor float64) error {
	cfg := e.cfg
	cfg.OverSubtraction = factor

	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg

	return nil
}

// SetMakeupGain updates the makeup gain.
func (e *Engine) SetMakeupGain(gain float64) error {
	cfg := e.cfg
	cfg.MakeupGain = gain

	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg

	return nil
}

// ApplyPreset replaces the engine's configuration with the named preset.
func (e *Engine) ApplyPreset(name string) error {
	cfg, err := ApplyPreset(name)
	if err != nil {
		return err
	}

	e.cfg = cfg

	return nil
}

// Process runs the engine over samples using its current configuration.
func (e *Engine) Process(samples []float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	return e.processWith(samples, e.cfg)
}

// ProcessWithConfig runs the engine over samples using cfg, leaving the
// engine's stored configuration untouched.
func (e *Engine) ProcessWithConfig(samples []float64, cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, nil
	}

	return e.processWith(samples, cfg)
}

func (e *Engine) processWith(samples []float64, cfg Config) ([]float64, error) {
	return run(samples, cfg, e.transform, e.window)
}

func (e *Engine) rebuildState() error {
	tr, err := stft.NewTransform(FrameSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransformFailure, err)
	}

	e.transform = tr
	e.window = window.Generate(window.TypeHann, FrameSize)

	return nil
}
