// Package wasmbridge adapts the noise-reduction engine to the shape the
// browser build's js.Func exports expect: a single stateful object with
// setters, built on top of the stateful noisereduce.Engine.
package wasmbridge

import "github.com/cwbudde/algo-dsp/dsp/noisereduce"

// Engine wraps a stateful noisereduce.Engine for the WebAssembly bridge.
type Engine struct {
	inner *noisereduce.Engine
}

// NewEngine creates a bridge engine with the package defaults.
func NewEngine() (*Engine, error) {
	inner, err := noisereduce.NewEngine(noisereduce.DefaultConfig())
	if err != nil {
		return nil, err
	}

	return &Engine{inner: inner}, nil
}

// SetConfig replaces all four configuration fields at once.
func (e *Engine) SetConfig(noiseFrames int, spectralFloor, overSubtraction, makeupGain float64) error {
	return e.inner.SetConfig(noisereduce.Config{
		NoiseFrames:     noiseFrames,
		SpectralFloor:   spectralFloor,
		OverSubtraction: overSubtraction,
		MakeupGain:      makeupGain,
	})
}

// ApplyPreset replaces the engine's configuration with the named preset.
func (e *Engine) ApplyPreset(name string) error {
	return e.inner.ApplyPreset(name)
}

// Process runs the engine over samples using its current configuration.
func (e *Engine) Process(samples []float64) ([]float64, error) {
	return e.inner.Process(samples)
}

// ProcessWithConfig runs the engine over samples using an explicit
// one-shot configuration, leaving the stored configuration untouched.
func (e *Engine) ProcessWithConfig(
	samples []float64, noiseFrames int, spectralFloor, overSubtraction, makeupGain float64,
) ([]float64, error) {
	cfg := noisereduce.Config{
		NoiseFrames:     noiseFrames,
		SpectralFloor:   spectralFloor,
		OverSubtraction: overSubtraction,
		MakeupGain:      makeupGain,
	}

	return e.inner.ProcessWithConfig(samples, cfg)
}
