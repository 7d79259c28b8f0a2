// Package dalgebra implements Roth's five-valued D-calculus: truth
// tables for AND/OR/XOR/NOT over {0,1,X,D,D'} and the derived
// NAND/NOR/XNOR/BUF forms used by the implication engine and PODEM.
package dalgebra

// Value is a signal value in the five-valued algebra. The encoding
// matches the spec: 0=Zero, 1=One, D=2, Dnot=3, X=4.
type Value uint8

const (
	Zero Value = iota
	One
	D
	Dnot
	X
)

// String renders a Value the way circuit dumps and log lines expect.
func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	case D:
		return "D"
	case Dnot:
		return "D'"
	case X:
		return "X"
	default:
		return "?"
	}
}

// IsFaulty reports whether v carries a fault effect (D or D').
func (v Value) IsFaulty() bool {
	return v == D || v == Dnot
}

// IsBinary reports whether v is a determined two-valued signal (0 or 1).
func (v Value) IsBinary() bool {
	return v == Zero || v == One
}

// GoodValue projects v onto the fault-free machine's value: D->1, D'->0,
// everything else unchanged.
func (v Value) GoodValue() Value {
	switch v {
	case D:
		return One
	case Dnot:
		return Zero
	default:
		return v
	}
}

// FaultyValue projects v onto the faulty machine's value: D->0, D'->1,
// everything else unchanged.
func (v Value) FaultyValue() Value {
	switch v {
	case D:
		return Zero
	case Dnot:
		return One
	default:
		return v
	}
}

// Not returns the five-valued complement: NOT(D)=D', NOT(D')=D, NOT(X)=X.
func Not(v Value) Value {
	return notTable[v]
}

var notTable = [5]Value{
	Zero: One,
	One:  Zero,
	D:    Dnot,
	Dnot: D,
	X:    X,
}

// and2Table and or2Table and xor2Table are the full 5x5 binary truth
// tables from spec.md section 8. Row/column order is Zero,One,D,Dnot,X.
var and2Table = [5][5]Value{
	{Zero, Zero, Zero, Zero, Zero},
	{Zero, One, D, Dnot, X},
	{Zero, D, D, Zero, X},
	{Zero, Dnot, Zero, Dnot, X},
	{Zero, X, X, X, X},
}

var or2Table = [5][5]Value{
	{Zero, One, D, Dnot, X},
	{One, One, One, One, One},
	{D, One, D, One, X},
	{Dnot, One, One, Dnot, X},
	{X, One, X, X, X},
}

var xor2Table = [5][5]Value{
	{Zero, One, D, Dnot, X},
	{One, Zero, Dnot, D, X},
	{D, Dnot, Zero, One, X},
	{Dnot, D, One, Zero, X},
	{X, X, X, X, X},
}

// And2 folds two values through the AND table.
func And2(a, b Value) Value { return and2Table[a][b] }

// Or2 folds two values through the OR table.
func Or2(a, b Value) Value { return or2Table[a][b] }

// Xor2 folds two values through the XOR table.
func Xor2(a, b Value) Value { return xor2Table[a][b] }

// Nand2, Nor2, Xnor2 are the complemented derived forms.
func Nand2(a, b Value) Value { return Not(And2(a, b)) }
func Nor2(a, b Value) Value  { return Not(Or2(a, b)) }
func Xnor2(a, b Value) Value { return Not(Xor2(a, b)) }

// And folds an n-ary AND left to right over at least one input.
func And(vs ...Value) Value { return fold(And2, vs) }

// Or folds an n-ary OR left to right over at least one input.
func Or(vs ...Value) Value { return fold(Or2, vs) }

// Xor folds an n-ary XOR left to right over at least one input.
func Xor(vs ...Value) Value { return fold(Xor2, vs) }

// Nand, Nor, Xnor apply NOT to the corresponding n-ary fold.
func Nand(vs ...Value) Value { return Not(And(vs...)) }
func Nor(vs ...Value) Value  { return Not(Or(vs...)) }
func Xnor(vs ...Value) Value { return Not(Xor(vs...)) }

func fold(op func(a, b Value) Value, vs []Value) Value {
	if len(vs) == 0 {
		return X
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = op(acc, v)
	}
	return acc
}
