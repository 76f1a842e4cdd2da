package dfa

import (
	"testing"

	"github.com/treerex/treerex/nfa"
)

func compileLiteral(s string) *DFA {
	b := nfa.NewBuilder()
	frag := b.Literal(nfa.Symbols(s))
	return Determinize(b.Build(frag))
}

func runString(d *DFA, s string) bool {
	return d.Run(nfa.Symbols(s))
}

func TestDeterminizeLiteral(t *testing.T) {
	d := compileLiteral("hello")
	if !runString(d, "hello") {
		t.Error("expected exact literal to match")
	}
	if runString(d, "hell") || runString(d, "helloo") || runString(d, "") {
		t.Error("literal DFA must reject any non-exact string")
	}
}

func TestDeterminizeStarAcceptsEmptyAndRepeats(t *testing.T) {
	b := nfa.NewBuilder()
	star := b.Star(b.Literal(nfa.Symbols("ab")))
	d := Determinize(b.Build(star))

	for _, tt := range []struct {
		q    string
		want bool
	}{
		{"", true},
		{"ab", true},
		{"abab", true},
		{"ababab", true},
		{"a", false},
		{"aba", false},
		{"abc", false},
	} {
		if got := runString(d, tt.q); got != tt.want {
			t.Errorf("star(ab) on %q = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestDeterminizeOrCommutative(t *testing.T) {
	b1 := nfa.NewBuilder()
	or1 := b1.Or(b1.Literal(nfa.Symbols("hello")), b1.Literal(nfa.Symbols("world")))
	d1 := Determinize(b1.Build(or1))

	b2 := nfa.NewBuilder()
	or2 := b2.Or(b2.Literal(nfa.Symbols("world")), b2.Literal(nfa.Symbols("hello")))
	d2 := Determinize(b2.Build(or2))

	for _, q := range []string{"hello", "world", "goodbye", ""} {
		if runString(d1, q) != runString(d2, q) {
			t.Errorf("or(A,B) and or(B,A) disagree on %q", q)
		}
	}
}

func TestDeterminizeIdempotent(t *testing.T) {
	build := func() *DFA {
		b := nfa.NewBuilder()
		frag := b.Cat(b.Literal(nfa.Symbols("0")), b.Plus(b.Literal(nfa.Symbols("1"))), b.Literal(nfa.Symbols("0")))
		return Determinize(b.Build(frag))
	}
	d1, d2 := build(), build()
	for _, q := range []string{"01111111111111111110", "01", "00", "010"} {
		if runString(d1, q) != runString(d2, q) {
			t.Errorf("two compiles of the same expression disagree on %q", q)
		}
	}
}

func TestDFAMissingTransitionFails(t *testing.T) {
	d := compileLiteral("a")
	if d.Run([]nfa.Symbol{"z"}) {
		t.Error("a symbol outside the DFA's alphabet must fail, not panic or match")
	}
}
