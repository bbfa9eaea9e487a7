package noisereduce

import "errors"

// Sentinel errors returned by the engine. Wrapped with fmt.Errorf("%w: ...")
// at the point of failure so callers can match via errors.Is while still
// getting a specific message.
var (
	// ErrConfigInvalid reports a configuration field outside its valid range.
	ErrConfigInvalid = errors.New("noisereduce: invalid configuration")

	// ErrUnknownPreset reports a preset name outside the fixed set.
	ErrUnknownPreset = errors.New("noisereduce: unknown preset")

	// ErrTransformFailure reports an unrecoverable failure in the underlying
	// FFT plan.
	ErrTransformFailure = errors.New("noisereduce: transform failure")
)
