// Package stft implements the short-time Fourier analysis/synthesis
// primitives shared by the noise-reduction engine: framing, the
// bin-restricted forward/inverse transform, and overlap-add synthesis.
package stft

// Framer slices a sample buffer into fixed-size, hop-spaced frames,
// tail-padding with zeros past the end of the buffer. It holds no state
// of its own beyond the source slice and geometry; frame m always
// starts at sample m*hop, so any frame can be re-read at any time.
type Framer struct {
	samples   []float64
	frameSize int
	hop       int
	count     int
}

// NewFramer builds a Framer over samples with the given frame size and
// hop. frameSize and hop must both be > 0.
func NewFramer(samples []float64, frameSize, hop int) Framer {
	return Framer{
		samples:   samples,
		frameSize: frameSize,
		hop:       hop,
		count:     FrameCount(len(samples), frameSize, hop),
	}
}

// FrameCount returns the number of frames covering a buffer of length l
// with the given frame size and hop: 0 when l == 0, otherwise at least 1,
// enough frames that the last one's start plus frameSize reaches or
// exceeds l.
func FrameCount(l, frameSize, hop int) int {
	if l == 0 {
		return 0
	}

	if l <= frameSize {
		return 1
	}

	return 1 + (l-frameSize+hop-1)/hop
}

// Count returns the number of frames produced by this Framer.
func (f Framer) Count() int { return f.count }

// OutputLength returns the length of an overlap-add buffer spanning all
// frames: (count-1)*hop + frameSize, or 0 when count == 0.
func (f Framer) OutputLength() int {
	if f.count == 0 {
		return 0
	}

	return (f.count-1)*f.hop + f.frameSize
}

// Frame writes frame index m into dst, which must have length
// frameSize. Samples past the end of the source buffer read as 0.
func (f Framer) Frame(m int, dst []float64) {
	pos := m * f.hop

	for i := range dst {
		idx := pos + i
		if idx < len(f.samples) {
			dst[i] = f.samples[idx]
		} else {
			dst[i] = 0
		}
	}
}
