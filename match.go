package treerex

import (
	"github.com/treerex/treerex/expr"
	"github.com/treerex/treerex/nfa"
)

// Matches reports whether query is accepted by d's automaton: the whole of
// query must be consumed ending in an accepting state. There is no partial
// or substring matching.
func (d *DFA) Matches(query string) bool {
	if d.accel != nil {
		return d.accel.Contains(query)
	}
	return d.compiled.Run(nfa.Symbols(query))
}

// Matches compiles e and matches query against it in a single step. It
// never exposes the intermediate DFA: the compiled automaton is discarded
// as soon as Matches returns.
func Matches(e expr.Node, query string) (bool, error) {
	d, err := Compile(e)
	if err != nil {
		return false, err
	}
	return d.Matches(query), nil
}
