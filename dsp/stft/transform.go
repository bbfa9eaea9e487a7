package stft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Transform wraps a full-length complex FFT plan and restricts the
// bins surfaced to callers to the non-redundant half-spectrum 0..N/2.
// For real input the upper half is the conjugate mirror of the lower,
// so it is reconstructed on demand rather than stored.
type Transform struct {
	plan      *algofft.Plan[complex128]
	frameSize int
	bins      int

	timeScratch []complex128
}

// NewTransform builds a Transform for the given power-of-two frame
// size. The FFT plan is created once and reused for every frame.
func NewTransform(frameSize int) (*Transform, error) {
	plan, err := algofft.NewPlan64(frameSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}

	return &Transform{
		plan:        plan,
		frameSize:   frameSize,
		bins:        frameSize/2 + 1,
		timeScratch: make([]complex128, frameSize),
	}, nil
}

// FrameSize returns the configured frame size N.
func (t *Transform) FrameSize() int { return t.frameSize }

// Bins returns B = N/2 + 1, the number of non-redundant spectral bins.
func (t *Transform) Bins() int { return t.bins }

// Forward computes the real-to-complex DFT of a windowed, real-valued
// frame and writes the B non-redundant bins into dst. frame must have
// length N; dst must have length B.
func (t *Transform) Forward(dst []complex128, frame []float64) error {
	for i, x := range frame {
		t.timeScratch[i] = complex(x, 0)
	}

	err := t.plan.Forward(t.timeScratch, t.timeScratch)
	if err != nil {
		return fmt.Errorf("stft: forward FFT failed: %w", err)
	}

	copy(dst, t.timeScratch[:t.bins])

	return nil
}

// Inverse reconstructs N real time-domain samples from the B
// non-redundant bins in spectrum, rebuilding the conjugate-symmetric
// upper half before calling the underlying inverse FFT. spectrum must
// have length B; dst must have length N.
func (t *Transform) Inverse(dst []float64, spectrum []complex128) error {
	half := t.frameSize / 2

	copy(t.timeScratch[:t.bins], spectrum)

	t.timeScratch[0] = complex(real(t.timeScratch[0]), 0)
	t.timeScratch[half] = complex(real(t.timeScratch[half]), 0)

	for k := 1; k < half; k++ {
		v := t.timeScratch[k]
		t.timeScratch[t.frameSize-k] = complex(real(v), -imag(v))
	}

	err := t.plan.Inverse(t.timeScratch, t.timeScratch)
	if err != nil {
		return fmt.Errorf("stft: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(t.timeScratch[i])
	}

	return nil
}
