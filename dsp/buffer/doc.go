// Package buffer provides a reusable float64 buffer type and a pool
// built on it. The noise-reduction engine runs the same frame-sized
// scratch through every analysis and synthesis step; Buffer and Pool
// keep those allocations out of the per-frame loop.
package buffer
