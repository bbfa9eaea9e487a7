// Package wavio decodes PCM WAV files to mono samples and encodes mono
// 16-bit PCM WAV files for the noise-reduction CLI.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

const (
	negativeScale = 0x8000
	positiveScale = 0x7fff
)

// ErrInvalidWAV indicates the input stream is not a valid WAV file.
var ErrInvalidWAV = errors.New("wavio: invalid WAV file")

// Decode reads a full PCM WAV stream and downmixes it to a mono
// float64 sample sequence in [-1, +1], reporting the sample rate from
// the file's format header.
func Decode(r io.Reader) (samples []float64, sampleRate int, err error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, 0, ErrInvalidWAV
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: could not read PCM buffer: %w", err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	fullScale := float64(int(1) << (bitDepth - 1))

	frameCount := len(buf.Data) / channels
	samples = make([]float64, frameCount)

	for i := 0; i < frameCount; i++ {
		var sum float64

		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}

		samples[i] = sum / float64(channels) / fullScale
	}

	return samples, buf.Format.SampleRate, nil
}

// Encode writes samples as 16-bit mono PCM WAV at sampleRate, hard
// clipping any value outside [-1, +1] and scaling negative/positive
// peaks by 0x8000/0x7FFF respectively.
func Encode(w io.WriteSeeker, samples []float64, sampleRate int) error {
	encoder := wav.NewEncoder(w, sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:   make([]int, len(samples)),
	}

	for i, s := range samples {
		buf.Data[i] = quantize16(s)
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("wavio: could not write PCM buffer: %w", err)
	}

	return encoder.Close()
}

func quantize16(s float64) int {
	if math.IsNaN(s) {
		return 0
	}

	s = core.Clamp(s, -1, 1)

	if s < 0 {
		return int(s * negativeScale)
	}

	return int(s * positiveScale)
}
