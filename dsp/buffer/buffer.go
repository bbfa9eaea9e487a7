package buffer

import "github.com/cwbudde/algo-dsp/dsp/core"

// Buffer wraps a float64 slice with reuse-friendly length management.
// Processing functions accept raw []float64; Samples bridges the two.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length. Negative
// lengths yield an empty buffer.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}

	return &Buffer{samples: make([]float64, length)}
}

// FromSlice wraps s without copying; the Buffer and the slice share
// the same backing array.
func FromSlice(s []float64) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 { return b.samples }

// Len returns the current number of samples.
func (b *Buffer) Len() int { return len(b.samples) }

// Cap returns the capacity of the backing array.
func (b *Buffer) Cap() int { return cap(b.samples) }

// Resize sets the length to n, reusing the backing array when its
// capacity allows. Elements beyond the previous length are zeroed so
// stale data from earlier use never leaks through.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}

	oldLen := len(b.samples)
	b.samples = core.EnsureLen(b.samples, n)

	if n > oldLen {
		core.Zero(b.samples[oldLen:])
	}
}

// Zero sets every sample to 0.
func (b *Buffer) Zero() {
	core.Zero(b.samples)
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	core.CopyInto(s, b.samples)

	return &Buffer{samples: s}
}
