package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(core.WithSampleRate(400))

	x, err := g.Sine(100, 0.5, 4)
	if err != nil {
		panic(err)
	}

	for i, v := range x {
		if math.Abs(v) < 1e-12 {
			x[i] = 0
		}
	}

	fmt.Printf("%.1f %.1f %.1f %.1f\n", x[0], x[1], x[2], x[3])

	// Output:
	// 0.0 0.5 0.0 -0.5
}

func ExampleNormalize() {
	x, err := signal.Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f %.2f %.2f\n", x[0], x[1], x[2])

	// Output:
	// -0.40 0.20 0.80
}
