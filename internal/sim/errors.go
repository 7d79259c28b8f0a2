package sim

import "errors"

var (
	// ErrInvalidFaultSignal is returned when a fault is set on a signal
	// ID outside the circuit's range.
	ErrInvalidFaultSignal = errors.New("sim: fault location not in circuit")
	// ErrInvalidFaultValue is returned when a fault value other than D
	// or D' is requested.
	ErrInvalidFaultValue = errors.New("sim: fault value must be D or D'")
	// ErrNotPrimaryInput is returned when set_and_imply targets a
	// signal that is not a primary input.
	ErrNotPrimaryInput = errors.New("sim: set_and_imply target is not a primary input")
)
