package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
)

// VectorSet is a parsed test-vector file (§6 "Test-vector input"):
// each entry's bit at position i is the value for the primary input
// named InputOrder[i].
type VectorSet struct {
	InputOrder []string
	Labels     []string
	Bits       [][]int // Bits[v][i] is the bit for InputOrder[i] in vector v
}

// ParseVectorFile opens path and parses it against c's primary inputs.
func ParseVectorFile(path string, c *circuit.Circuit) (VectorSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return VectorSet{}, fmt.Errorf("ioformat: open vector file: %w", err)
	}
	defer f.Close()
	return ParseVectors(f, c)
}

// ParseVectors reads a test-vector file from r. It enforces §6's
// directives: VECTORS declares the expected count, INPUTS fixes the
// per-row bit ordering (every name must be one of c's declared
// primary inputs, and the count must equal |PI|), and each
// "label: bits" line supplies one row. Exactly the declared VECTORS
// count of rows must appear.
func ParseVectors(r io.Reader, c *circuit.Circuit) (VectorSet, error) {
	var set VectorSet
	declaredCount := -1
	piSet := make(map[string]bool, len(c.PI))
	for _, id := range c.PI {
		piSet[c.Signal(id).Name] = true
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "$") {
			continue
		}

		if rest, ok := cutPrefixFold(raw, "VECTORS"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return VectorSet{}, fmt.Errorf("ioformat: line %d: %w: VECTORS %q", lineNo, ErrMalformedLine, rest)
			}
			declaredCount = n
			continue
		}

		if rest, ok := cutPrefixFold(raw, "INPUTS"); ok {
			names := strings.Fields(rest)
			if len(names) != len(c.PI) {
				return VectorSet{}, fmt.Errorf("ioformat: line %d: %w: got %d, want %d", lineNo, ErrInputWidthMismatch, len(names), len(c.PI))
			}
			for _, name := range names {
				if !piSet[name] {
					return VectorSet{}, fmt.Errorf("ioformat: line %d: %w: %q", lineNo, ErrUnknownInputName, name)
				}
			}
			set.InputOrder = names
			continue
		}

		label, bits, ok := splitVectorLine(raw)
		if !ok {
			return VectorSet{}, fmt.Errorf("ioformat: line %d: %w: %q", lineNo, ErrUnknownDirective, raw)
		}
		if set.InputOrder == nil {
			return VectorSet{}, fmt.Errorf("ioformat: line %d: %w", lineNo, ErrMissingInputsDirective)
		}
		if len(bits) != len(set.InputOrder) {
			return VectorSet{}, fmt.Errorf("ioformat: line %d: %w: got %d bits, want %d", lineNo, ErrBitWidthMismatch, len(bits), len(set.InputOrder))
		}
		row := make([]int, len(bits))
		for i, ch := range bits {
			switch ch {
			case '0':
				row[i] = 0
			case '1':
				row[i] = 1
			default:
				return VectorSet{}, fmt.Errorf("ioformat: line %d: %w: %q", lineNo, ErrBadBit, string(ch))
			}
		}
		set.Labels = append(set.Labels, label)
		set.Bits = append(set.Bits, row)
	}
	if err := scanner.Err(); err != nil {
		return VectorSet{}, fmt.Errorf("ioformat: reading vector file: %w", err)
	}

	if declaredCount >= 0 && declaredCount != len(set.Bits) {
		return VectorSet{}, fmt.Errorf("ioformat: %w: declared %d, found %d", ErrVectorCountMismatch, declaredCount, len(set.Bits))
	}
	return set, nil
}

// Reorder returns set's bit rows permuted from InputOrder into c's own
// PI order, the layout internal/faultsim.Run requires.
func (set VectorSet) Reorder(c *circuit.Circuit) [][]int {
	pos := make(map[string]int, len(set.InputOrder))
	for i, name := range set.InputOrder {
		pos[name] = i
	}
	out := make([][]int, len(set.Bits))
	for v, row := range set.Bits {
		reordered := make([]int, len(c.PI))
		for i, piID := range c.PI {
			reordered[i] = row[pos[c.Signal(piID).Name]]
		}
		out[v] = reordered
	}
	return out
}

// splitVectorLine parses a "label: bits" row. The label is everything
// before the first colon; bits is the trimmed remainder.
func splitVectorLine(line string) (label string, bits string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// cutPrefixFold reports whether line starts with keyword
// case-insensitively, returning the remainder after the keyword.
func cutPrefixFold(line, keyword string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.EqualFold(fields[0], keyword) {
		return "", false
	}
	return strings.TrimPrefix(line[len(fields[0]):], ""), true
}
