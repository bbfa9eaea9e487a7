package noisereduce

import "math"

// estimateNoise averages per-bin magnitudes over the leading
// min(noiseFrames, len(spectra)) frames. Returns an all-zero profile of
// length bins when spectra is empty.
func estimateNoise(spectra [][]complex128, noiseFrames, bins int) []float64 {
	profile := make([]float64, bins)

	n := noiseFrames
	if n > len(spectra) {
		n = len(spectra)
	}

	if n == 0 {
		return profile
	}

	for _, spectrum := range spectra[:n] {
		for k := 0; k < bins; k++ {
			profile[k] += magnitude(spectrum[k])
		}
	}

	inv := 1.0 / float64(n)
	for k := range profile {
		profile[k] *= inv
	}

	return profile
}

func magnitude(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
