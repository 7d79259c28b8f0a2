package faultsim

import "errors"

// ErrInputGateEncountered is returned if the gate traversal order ever
// names a gate of kind circuit.INPUT. internal/circuit.Build never
// emits one (primary inputs are signals, not gates), so seeing this
// means the Order came from somewhere else.
var ErrInputGateEncountered = errors.New("faultsim: INPUT gate encountered outside the PI prefix")

// ErrVectorWidth is returned when an input vector's bit count does not
// match the circuit's primary input count.
var ErrVectorWidth = errors.New("faultsim: vector width does not match primary input count")
