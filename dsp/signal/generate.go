// Package signal generates the deterministic fixtures the
// noise-reduction scenarios are built from: pure tones, seeded white
// noise, and the composite noise-prefix-then-tone input that mirrors
// how callers record a noise profile before the material starts.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
// Every call derives its random stream from the stored seed, so the
// same generator always produces the same samples.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a signal generator from processor options.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a generator from processor options
// plus generator-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Config returns the generator's processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

func (g *Generator) validateTone(freqHz float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("tone samples must be > 0: %d", samples)
	}

	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("tone sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	if freqHz < 0 || freqHz > g.cfg.SampleRate/2 {
		return fmt.Errorf("tone frequency must be in [0, nyquist]: %f", freqHz)
	}

	return nil
}

// Sine generates a sine tone at freqHz with the given peak amplitude.
// The phase is accumulated and wrapped per sample so long buffers do
// not lose precision to a growing angle argument.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validateTone(freqHz, samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	phase := 0.0

	for i := range out {
		out[i] = amplitude * math.Sin(phase)

		phase += step
		if phase >= 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}

	return out, nil
}

// WhiteNoise generates uniform white noise in [-amplitude, +amplitude]
// from the generator's seed.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))

	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}

	return out, nil
}

// NoisyTone generates a sine tone with white noise mixed in across the
// whole buffer, the shape of a recording with stationary background
// hiss under the material.
func (g *Generator) NoisyTone(freqHz, toneAmp, noiseAmp float64, samples int) ([]float64, error) {
	tone, err := g.Sine(freqHz, toneAmp, samples)
	if err != nil {
		return nil, err
	}

	noise, err := g.WhiteNoise(noiseAmp, samples)
	if err != nil {
		return nil, err
	}

	for i := range tone {
		tone[i] += noise[i]
	}

	return tone, nil
}

// ToneAfterNoise generates noiseSamples of white noise followed by a
// sine tone for the remainder of totalSamples: a noise-only prefix for
// profile estimation, then clean material. noiseSamples must leave
// room for at least one tone sample.
func (g *Generator) ToneAfterNoise(freqHz, toneAmp, noiseAmp float64, noiseSamples, totalSamples int) ([]float64, error) {
	if noiseSamples <= 0 || noiseSamples >= totalSamples {
		return nil, fmt.Errorf("noise prefix must be in (0, total): %d of %d", noiseSamples, totalSamples)
	}

	noise, err := g.WhiteNoise(noiseAmp, noiseSamples)
	if err != nil {
		return nil, err
	}

	tone, err := g.Sine(freqHz, toneAmp, totalSamples-noiseSamples)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, totalSamples)
	out = append(out, noise...)
	out = append(out, tone...)

	return out, nil
}

// Normalize rescales data so its absolute peak equals targetPeak and
// returns a new slice. All-zero input stays all zero.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	out := make([]float64, len(data))

	maxAbs := peak(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}

func peak(data []float64) float64 {
	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}

	return maxAbs
}
