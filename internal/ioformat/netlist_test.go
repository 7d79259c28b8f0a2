package ioformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
)

const reconvergentNetlist = `
# AND and OR reconverging at an XOR that drives a single PO
$ comment lines using either marker are ignored

INPUT(A)
INPUT(B)
INPUT(C)
OUTPUT(Z)

x = AND(A, B)
y = OR(A, C)
Z = XOR(x, y)
`

func TestParseNetlistBasic(t *testing.T) {
	src, err := ParseNetlist(strings.NewReader(reconvergentNetlist))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, src.PIOrder)
	require.Equal(t, []string{"Z"}, src.POOrder)
	require.Len(t, src.Gates, 3)

	c, err := circuit.Build(src)
	require.NoError(t, err)
	require.Len(t, c.PI, 3)
	// A feeds both x and y, so Build must have synthesized two branches.
	foundBranch := false
	for _, sig := range c.Signals {
		if sig.IsBranch {
			foundBranch = true
		}
	}
	require.True(t, foundBranch)
}

func TestParseNetlistEqualsAndParensAreWhitespace(t *testing.T) {
	a, err := ParseNetlist(strings.NewReader("INPUT(A)\nINPUT(B)\nOUTPUT(Z)\nZ = AND(A, B)\n"))
	require.NoError(t, err)
	b, err := ParseNetlist(strings.NewReader("INPUT A\nINPUT B\nOUTPUT Z\nZ AND A B\n"))
	require.NoError(t, err)
	require.Equal(t, a.Gates, b.Gates)
}

func TestParseNetlistCaseInsensitiveKeywords(t *testing.T) {
	src, err := ParseNetlist(strings.NewReader("input(a)\noutput(z)\nz = nand(a, a)\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, src.PIOrder)
	require.Equal(t, circuit.NAND, src.Gates[0].Kind)
}

func TestParseNetlistUnknownGateKind(t *testing.T) {
	_, err := ParseNetlist(strings.NewReader("INPUT(A)\nOUTPUT(Z)\nZ = MAJ3(A, A, A)\n"))
	require.ErrorIs(t, err, circuit.ErrUnknownGateKind)
}

func TestParseNetlistMalformedLine(t *testing.T) {
	_, err := ParseNetlist(strings.NewReader("notvalid\n"))
	require.ErrorIs(t, err, ErrMalformedLine)
}

func TestParseGateKindAliases(t *testing.T) {
	kind, ok := ParseGateKind("inv")
	require.True(t, ok)
	require.Equal(t, circuit.NOT, kind)

	_, ok = ParseGateKind("maj")
	require.False(t, ok)
}
