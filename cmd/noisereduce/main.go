// Command noisereduce applies stationary-noise spectral subtraction to a
// WAV file.
//
// Usage:
//
//	noisereduce [flags] <input.wav> <output.wav>
//
// Examples:
//
//	noisereduce in.wav out.wav
//	noisereduce -preset heavy in.wav out.wav
//	noisereduce -noise-frames 20 -spectral-floor 0.05 -over-subtraction 3 -makeup-gain 1.8 in.wav out.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-dsp/dsp/noisereduce"
	"github.com/cwbudde/algo-dsp/internal/wavio"
)

func main() {
	noiseFrames := flag.Int("noise-frames", 0, "leading frames used to estimate the noise profile (0 = default)")
	spectralFloor := flag.Float64("spectral-floor", -1, "minimum retained magnitude fraction per bin (-1 = default)")
	overSubtraction := flag.Float64("over-subtraction", -1, "multiplier applied to the noise estimate (-1 = default)")
	makeupGain := flag.Float64("makeup-gain", -1, "scalar applied to the reconstructed signal (-1 = default)")
	preset := flag.String("preset", "", "named preset: light, medium, heavy, extreme (overridden by explicit flags)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: noisereduce [flags] <input.wav> <output.wav>\n\n")
		fmt.Fprintf(os.Stderr, "Applies stationary-noise spectral subtraction to a mono-downmixed WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  noisereduce in.wav out.wav\n")
		fmt.Fprintf(os.Stderr, "  noisereduce -preset heavy in.wav out.wav\n")
	}

	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := resolveConfig(*preset, *noiseFrames, *spectralFloor, *overSubtraction, *makeupGain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(args[0], args[1], cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveConfig(preset string, noiseFrames int, spectralFloor, overSubtraction, makeupGain float64) (noisereduce.Config, error) {
	cfg := noisereduce.DefaultConfig()

	if preset != "" {
		var err error

		cfg, err = noisereduce.ApplyPreset(preset)
		if err != nil {
			return noisereduce.Config{}, err
		}
	}

	if noiseFrames > 0 {
		cfg.NoiseFrames = noiseFrames
	}

	if spectralFloor >= 0 {
		cfg.SpectralFloor = spectralFloor
	}

	if overSubtraction >= 0 {
		cfg.OverSubtraction = overSubtraction
	}

	if makeupGain >= 0 {
		cfg.MakeupGain = makeupGain
	}

	return cfg, nil
}

func run(inputPath, outputPath string, cfg noisereduce.Config) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("could not open input file: %w", err)
	}
	defer in.Close()

	samples, sampleRate, err := wavio.Decode(in)
	if err != nil {
		return fmt.Errorf("could not decode input file: %w", err)
	}

	out, err := noisereduce.Process(samples, cfg)
	if err != nil {
		if errors.Is(err, noisereduce.ErrConfigInvalid) {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		return fmt.Errorf("noise reduction failed: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer outFile.Close()

	if err := wavio.Encode(outFile, out, sampleRate); err != nil {
		return fmt.Errorf("could not encode output file: %w", err)
	}

	return nil
}
