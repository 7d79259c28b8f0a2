package circuit

// RawGate is one gate statement as read off a netlist, before stem/
// branch expansion. Output/Inputs are signal names, not IDs; the
// parser (internal/ioformat) resolves gate-kind keywords before
// constructing this, so Build only ever sees a valid GateKind or the
// zero value INPUT (which Build rejects as a gate kind).
type RawGate struct {
	Output string
	Kind   GateKind
	Inputs []string
}

// Source is a fully lexed, not-yet-built netlist: primary inputs and
// outputs in source order, and gates in source order. Build is total
// over any Source that passes its own validation — it never panics on
// malformed input, only returns an error.
type Source struct {
	Name    string
	PIOrder []string
	POOrder []string
	Gates   []RawGate
}

// Circuit is the frozen, stem/branch-expanded gate graph: every
// Signal.ID indexes directly into Signals, every Gate.ID indexes
// directly into Gates, and after expansion every signal feeds only
// gates dedicated to a single real consumer apiece (a stem's multiple
// consumers become distinct BUF-driven branch signals). Circuit never
// changes after Build returns, so it can be shared read-only across
// concurrent PODEM search branches; per-branch mutable state lives in
// internal/sim.Sim.
type Circuit struct {
	Name    string
	Signals []Signal
	Gates   []Gate

	// PI, PO, and S list signal IDs in source/creation order. S
	// includes every signal, including synthesized branches.
	PI []int
	PO []int
	S  []int

	nameToID map[string]int
}

// NameToID looks up a signal by name, returning (-1, false) if unknown.
func (c *Circuit) NameToID(name string) (int, bool) {
	id, ok := c.nameToID[name]
	if !ok {
		return -1, false
	}
	return id, true
}

// Signal returns the Signal for id. It panics on an out-of-range id,
// since every id handed out by this package is always a valid index.
func (c *Circuit) Signal(id int) *Signal { return &c.Signals[id] }

// Gate returns the Gate for id, with the same validity guarantee as Signal.
func (c *Circuit) Gate(id int) *Gate { return &c.Gates[id] }

// NumSignals reports the total signal count, PI and PO included.
func (c *Circuit) NumSignals() int { return len(c.Signals) }

// NumGates reports the total gate count, synthesized branch BUFs included.
func (c *Circuit) NumGates() int { return len(c.Gates) }

func (c *Circuit) addSignal(name string, isPI bool) *Signal {
	id := len(c.Signals)
	c.Signals = append(c.Signals, Signal{ID: id, Name: name, IsPI: isPI, Driver: -1})
	c.nameToID[name] = id
	c.S = append(c.S, id)
	return &c.Signals[id]
}

func (c *Circuit) addGate(name string, kind GateKind, inputs []int, output int) *Gate {
	id := len(c.Gates)
	c.Gates = append(c.Gates, Gate{ID: id, Name: name, Kind: kind, Inputs: inputs, Output: output})
	return &c.Gates[id]
}
