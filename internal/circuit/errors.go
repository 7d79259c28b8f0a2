package circuit

import "errors"

var (
	// ErrUnknownGateKind is returned when a netlist names a gate kind
	// this package does not implement.
	ErrUnknownGateKind = errors.New("circuit: unknown gate kind")
	// ErrArityOverflow is returned when a gate declares more fan-in
	// lines than MaxArity, or a signal feeds more than MaxArity gates.
	ErrArityOverflow = errors.New("circuit: gate fan-in exceeds maximum arity")
	// ErrArityTooLow is returned when a gate declares fewer fan-in
	// lines than its kind requires.
	ErrArityTooLow = errors.New("circuit: gate fan-in below minimum arity")
	// ErrUndefinedSignal is returned when a gate or OUTPUT references a
	// signal name that is never driven by a primary input or a gate.
	ErrUndefinedSignal = errors.New("circuit: undefined signal")
	// ErrDuplicateDriver is returned when two gates claim the same
	// output signal.
	ErrDuplicateDriver = errors.New("circuit: signal driven by more than one gate")
	// ErrEmptyCircuit is returned when a netlist has no gates.
	ErrEmptyCircuit = errors.New("circuit: no gates in netlist")
)
