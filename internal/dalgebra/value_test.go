package dalgebra

import "testing"

func TestNot(t *testing.T) {
	cases := []struct {
		in, want Value
	}{
		{Zero, One},
		{One, Zero},
		{D, Dnot},
		{Dnot, D},
		{X, X},
	}
	for _, c := range cases {
		if got := Not(c.in); got != c.want {
			t.Errorf("Not(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAnd2Table(t *testing.T) {
	cases := []struct {
		a, b, want Value
	}{
		{Zero, X, Zero},
		{One, One, One},
		{One, D, D},
		{D, D, D},
		{D, Dnot, Zero},
		{One, Dnot, Dnot},
		{D, X, X},
	}
	for _, c := range cases {
		if got := And2(c.a, c.b); got != c.want {
			t.Errorf("And2(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestOr2Table(t *testing.T) {
	cases := []struct {
		a, b, want Value
	}{
		{Zero, D, D},
		{One, D, One},
		{D, D, D},
		{D, Dnot, One},
		{X, Zero, X},
	}
	for _, c := range cases {
		if got := Or2(c.a, c.b); got != c.want {
			t.Errorf("Or2(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestXor2Table(t *testing.T) {
	cases := []struct {
		a, b, want Value
	}{
		{Zero, One, One},
		{D, D, Zero},
		{D, Dnot, One},
		{D, One, Dnot},
		{X, X, X},
	}
	for _, c := range cases {
		if got := Xor2(c.a, c.b); got != c.want {
			t.Errorf("Xor2(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNary(t *testing.T) {
	if got := And(One, One, D); got != D {
		t.Errorf("And(1,1,D) = %v, want D", got)
	}
	if got := Or(Zero, Zero, Dnot); got != Dnot {
		t.Errorf("Or(0,0,D') = %v, want D'", got)
	}
	if got := Nand(One, One); got != Zero {
		t.Errorf("Nand(1,1) = %v, want 0", got)
	}
	if got := Xnor(Zero, Zero); got != One {
		t.Errorf("Xnor(0,0) = %v, want 1", got)
	}
}

func TestProjections(t *testing.T) {
	if D.GoodValue() != One || D.FaultyValue() != Zero {
		t.Errorf("D projections wrong: good=%v faulty=%v", D.GoodValue(), D.FaultyValue())
	}
	if Dnot.GoodValue() != Zero || Dnot.FaultyValue() != One {
		t.Errorf("D' projections wrong: good=%v faulty=%v", Dnot.GoodValue(), Dnot.FaultyValue())
	}
	if !D.IsFaulty() || !Dnot.IsFaulty() || Zero.IsFaulty() || X.IsFaulty() {
		t.Errorf("IsFaulty wrong for one of D, D', 0, X")
	}
	if !Zero.IsBinary() || !One.IsBinary() || D.IsBinary() || X.IsBinary() {
		t.Errorf("IsBinary wrong for one of 0, 1, D, X")
	}
}
