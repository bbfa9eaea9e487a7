package noisereduce

import "fmt"

// Preset identifies one of the fixed noise-reduction aggressiveness levels.
type Preset int

const (
	PresetLight Preset = iota
	PresetMedium
	PresetHeavy
	PresetExtreme

	presetCount // sentinel
)

var presetNames = [presetCount]string{"light", "medium", "heavy", "extreme"}

// String returns the name of the preset.
func (p Preset) String() string {
	if p >= 0 && p < presetCount {
		return presetNames[p]
	}

	return fmt.Sprintf("Preset(%d)", int(p))
}

var presetConfigs = [presetCount]Config{
	PresetLight:   {NoiseFrames: 10, SpectralFloor: 0.25, OverSubtraction: 1.0, MakeupGain: 1.2},
	PresetMedium:  {NoiseFrames: 10, SpectralFloor: 0.10, OverSubtraction: 2.0, MakeupGain: 1.5},
	PresetHeavy:   {NoiseFrames: 10, SpectralFloor: 0.05, OverSubtraction: 3.0, MakeupGain: 1.8},
	PresetExtreme: {NoiseFrames: 10, SpectralFloor: 0.02, OverSubtraction: 4.0, MakeupGain: 2.0},
}

var presetsByName = map[string]Preset{
	"light":   PresetLight,
	"medium":  PresetMedium,
	"heavy":   PresetHeavy,
	"extreme": PresetExtreme,
}

// ApplyPreset returns the fixed configuration for the named preset. name
// must be one of "light", "medium", "heavy", "extreme".
func ApplyPreset(name string) (Config, error) {
	p, ok := presetsByName[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return presetConfigs[p], nil
}
