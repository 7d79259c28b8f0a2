package circuit

import "fmt"

// Build constructs a Circuit from a lexed Source: it resolves every
// signal reference, validates gate arity, and expands every stem
// (a signal consumed by more than one gate) into one BUF-driven branch
// per consuming gate, so every branch feeds exactly one gate and the
// stem itself feeds only its branch BUFs. Build is deterministic: the same Source always yields the
// same signal/gate IDs and the same synthesized branch names.
func Build(src Source) (*Circuit, error) {
	if len(src.Gates) == 0 {
		return nil, ErrEmptyCircuit
	}

	c := &Circuit{Name: src.Name, nameToID: make(map[string]int)}
	used := make(map[string]bool)

	for _, name := range src.PIOrder {
		if used[name] {
			continue
		}
		c.addSignal(name, true)
		used[name] = true
	}

	// First pass: every gate's declared output becomes a signal (or is
	// rejected as a re-driven one); inputs not yet seen are provisional
	// signals that must later turn out to be a PI or some gate's output.
	for _, rg := range src.Gates {
		if rg.Kind == INPUT {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGateKind, rg.Output)
		}
		if len(rg.Inputs) > MaxArity {
			return nil, fmt.Errorf("%w: gate %q has %d inputs", ErrArityOverflow, rg.Output, len(rg.Inputs))
		}
		if len(rg.Inputs) < rg.Kind.MinArity() {
			return nil, fmt.Errorf("%w: gate %q (%s) has %d inputs, needs at least %d",
				ErrArityTooLow, rg.Output, rg.Kind, len(rg.Inputs), rg.Kind.MinArity())
		}
		if _, exists := c.nameToID[rg.Output]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDriver, rg.Output)
		}
		c.addSignal(rg.Output, false)
		for _, in := range rg.Inputs {
			if _, exists := c.nameToID[in]; !exists {
				c.addSignal(in, false)
			}
		}
	}

	for _, rg := range src.Gates {
		used[rg.Output] = true
		for _, in := range rg.Inputs {
			used[in] = true
		}
	}

	for _, rg := range src.Gates {
		outID := c.nameToID[rg.Output]
		inIDs := make([]int, len(rg.Inputs))
		for i, in := range rg.Inputs {
			inIDs[i] = c.nameToID[in]
		}
		g := c.addGate(rg.Output, rg.Kind, inIDs, outID)
		c.Signals[outID].Driver = g.ID
	}

	// Every signal that is neither a PI nor a gate output is undefined.
	for _, s := range c.Signals {
		if s.Driver == -1 && !s.IsPI {
			return nil, fmt.Errorf("%w: %q", ErrUndefinedSignal, s.Name)
		}
	}

	for _, name := range src.POOrder {
		id, ok := c.nameToID[name]
		if !ok {
			return nil, fmt.Errorf("%w: OUTPUT %q", ErrUndefinedSignal, name)
		}
		c.Signals[id].IsPO = true
		c.PO = append(c.PO, id)
	}
	for _, name := range src.PIOrder {
		c.PI = append(c.PI, c.nameToID[name])
	}

	// Record, per stem signal, the ordered list of (gate, input
	// position) pairs that consume it, in gate-declaration order. A
	// signal with exactly one consumer needs no expansion.
	type consumerRef struct {
		gateID   int
		position int
	}
	consumers := make(map[int][]consumerRef)
	for _, g := range c.Gates {
		for pos, in := range g.Inputs {
			consumers[in] = append(consumers[in], consumerRef{g.ID, pos})
		}
	}

	// Iterate stems in signal-creation order (not map order) so
	// synthesized branch names are assigned deterministically.
	for _, sigID := range c.S {
		refs := consumers[sigID]
		if len(refs) <= 1 {
			if len(refs) == 1 {
				c.Signals[sigID].Consumers = []int{refs[0].gateID}
			}
			continue
		}
		stemName := c.Signals[sigID].Name
		if len(refs) > MaxArity {
			return nil, fmt.Errorf("%w: signal %q feeds %d gates", ErrArityOverflow, stemName, len(refs))
		}
		for _, ref := range refs {
			consumerName := c.Gates[ref.gateID].Name
			k := 0
			var branchName string
			for {
				branchName = fmt.Sprintf("%s_BRANCH%d_%s", stemName, k, consumerName)
				if !used[branchName] {
					break
				}
				k++
			}
			used[branchName] = true

			// Every append below can reallocate c.Signals/c.Gates, so the
			// graph is wired up by re-indexing afterward rather than
			// through pointers taken before the appends.
			branchID := c.addSignal(branchName, false).ID
			bufGateID := c.addGate(branchName, BUF, []int{sigID}, branchID).ID

			c.Signals[branchID].IsBranch = true
			c.Signals[branchID].Driver = bufGateID
			c.Signals[branchID].Consumers = []int{ref.gateID}
			c.Signals[sigID].Consumers = append(c.Signals[sigID].Consumers, bufGateID)
			c.Gates[ref.gateID].Inputs[ref.position] = branchID
		}
	}

	return c, nil
}
