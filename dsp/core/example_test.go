package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(44100))

	fmt.Printf("sampleRate=%.0f\n", cfg.SampleRate)

	// Output:
	// sampleRate=44100
}

func ExampleClamp() {
	fmt.Println(core.Clamp(1.7, -1, 1), core.Clamp(-0.25, -1, 1))

	// Output:
	// 1 -0.25
}
