package noisereduce

import "math"

// subtractFrame applies magnitude spectral subtraction to spectrum in
// place, using noise as the per-bin noise estimate. The phase of every
// bin is taken directly from the noisy input; only the magnitude is
// altered.
func subtractFrame(spectrum []complex128, noise []float64, overSubtraction, spectralFloor float64) {
	for k, c := range spectrum {
		mag := magnitude(c)
		phase := math.Atan2(imag(c), real(c))

		sub := mag - overSubtraction*noise[k]
		floor := spectralFloor * mag

		magPrime := math.Max(sub, floor)

		spectrum[k] = complex(magPrime*math.Cos(phase), magPrime*math.Sin(phase))
	}
}
