// Package noisereduce implements stationary-noise spectral subtraction:
// short-time Fourier analysis, noise-profile estimation over leading
// frames, per-bin magnitude subtraction with a spectral floor, and
// phase-preserving overlap-add resynthesis.
package noisereduce

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/buffer"
	"github.com/cwbudde/algo-dsp/dsp/stft"
	"github.com/cwbudde/algo-dsp/dsp/window"
)

const (
	// FrameSize is the STFT analysis/synthesis frame length N.
	FrameSize = 1024
	// HopSize is the STFT hop H, giving 75% overlap at FrameSize.
	HopSize = FrameSize / 4
)

// scratch recycles the frame-sized analysis and synthesis buffers
// across Process calls.
var scratch = buffer.NewPool()

// Process runs the spectral subtraction engine over samples with the
// given configuration. An empty input returns an empty output with no
// error. The output length always equals the input length.
func Process(samples []float64, cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, nil
	}

	tr, err := stft.NewTransform(FrameSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransformFailure, err)
	}

	return run(samples, cfg, tr, window.Generate(window.TypeHann, FrameSize))
}

// run is the shared analysis-subtract-resynthesis pipeline behind both
// the stateless façade and the stateful Engine: framing, windowed
// forward transform, noise-profile estimation over the leading frames,
// per-bin subtraction, inverse transform, and overlap-add with makeup
// gain. The caller supplies a validated config, a transform, and a
// window table sized to FrameSize.
func run(samples []float64, cfg Config, tr *stft.Transform, win []float64) ([]float64, error) {
	framer := stft.NewFramer(samples, FrameSize, HopSize)
	m := framer.Count()

	spectra := make([][]complex128, m)

	frameBuf := scratch.Get(FrameSize)
	defer scratch.Put(frameBuf)

	for i := 0; i < m; i++ {
		framer.Frame(i, frameBuf.Samples())

		if err := window.ApplyCoefficientsInPlace(frameBuf.Samples(), win); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransformFailure, err)
		}

		spectrum := make([]complex128, tr.Bins())
		if err := tr.Forward(spectrum, frameBuf.Samples()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransformFailure, err)
		}

		spectra[i] = spectrum
	}

	noise := estimateNoise(spectra, cfg.NoiseFrames, tr.Bins())

	ola := stft.NewOverlapAdd(m, FrameSize, HopSize)

	synthBuf := scratch.Get(FrameSize)
	defer scratch.Put(synthBuf)

	for i := 0; i < m; i++ {
		subtractFrame(spectra[i], noise, cfg.OverSubtraction, cfg.SpectralFloor)

		if err := tr.Inverse(synthBuf.Samples(), spectra[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransformFailure, err)
		}

		if err := window.ApplyCoefficientsInPlace(synthBuf.Samples(), win); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransformFailure, err)
		}

		ola.Add(i, synthBuf.Samples())
	}

	return ola.Result(len(samples), cfg.MakeupGain), nil
}
