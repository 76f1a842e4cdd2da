// Package dfa implements the determinizer (subset construction) and the
// matcher that drives a compiled automaton.
package dfa

import "github.com/treerex/treerex/nfa"

// DFA is a deterministic automaton: states are the dense range
// [0, len(Table)), Start is one of them, Accepts names the accepting ones,
// and Table[s][sym] is the unique next state for sym out of s — absent
// means failure. A DFA is immutable once Determinize returns it and is safe
// to share across concurrent Run calls.
type DFA struct {
	Start   int
	Accepts map[int]struct{}
	Table   []map[nfa.Symbol]int
}

// Accepting reports whether state s is an accepting state.
func (d *DFA) Accepting(s int) bool {
	_, ok := d.Accepts[s]
	return ok
}

// Run drives the DFA over query and reports whether the whole of query is
// consumed ending in an accepting state. A symbol with no table entry is
// failure, not an error: Run never returns an error, since matching itself
// cannot fail once a DFA exists.
func (d *DFA) Run(query []nfa.Symbol) bool {
	s := d.Start
	for _, sym := range query {
		next, ok := d.Table[s][sym]
		if !ok {
			return false
		}
		s = next
	}
	return d.Accepting(s)
}
