// Package ioformat holds the external collaborators spec.md explicitly
// scopes out of the core: the BENCH-style netlist parser, the
// test-vector file parser, and the result writer (§6). None of these
// touch the five-valued algebra or the search; they only produce or
// consume the plain data structures internal/circuit and
// internal/atpgdriver already define.
package ioformat

import "errors"

var (
	// ErrMalformedLine is returned for a non-blank, non-comment line that
	// matches none of the three recognized netlist forms.
	ErrMalformedLine = errors.New("ioformat: malformed line")
	// ErrUnknownDirective is returned for a vector-file line that is not
	// VECTORS, INPUTS, or a "label: bits" entry.
	ErrUnknownDirective = errors.New("ioformat: unknown directive")
	// ErrVectorCountMismatch is returned when the file's VECTORS count
	// does not match the number of vector lines actually present.
	ErrVectorCountMismatch = errors.New("ioformat: vector count mismatch")
	// ErrInputWidthMismatch is returned when an INPUTS line's name count
	// does not equal the circuit's primary input count.
	ErrInputWidthMismatch = errors.New("ioformat: INPUTS line width does not match primary input count")
	// ErrUnknownInputName is returned when an INPUTS line names a signal
	// that is not a declared primary input of the circuit.
	ErrUnknownInputName = errors.New("ioformat: INPUTS line names an undeclared primary input")
	// ErrBadBit is returned when a vector line's bit string contains a
	// character other than '0' or '1'.
	ErrBadBit = errors.New("ioformat: vector bit is not 0 or 1")
	// ErrBitWidthMismatch is returned when a vector line's bit string
	// length does not equal the declared INPUTS width.
	ErrBitWidthMismatch = errors.New("ioformat: vector bit string width mismatch")
	// ErrMissingInputsDirective is returned when a vector line appears
	// before an INPUTS directive has established the PI ordering.
	ErrMissingInputsDirective = errors.New("ioformat: vector line before INPUTS directive")
)
