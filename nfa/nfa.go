// Package nfa implements Thompson-construction nondeterministic finite
// automata over an opaque alphabet.
//
// An NFA here is a start state, an accept state, and a transition relation
// (state, label) -> set-of-states, where label is either an alphabet
// Symbol or epsilon. States are minted by a Builder from a per-compile
// counter and are cheap, comparable uint32 values.
package nfa

import "math"

// Symbol is an opaque alphabet token. Symbols splits a Go string into one
// Symbol per rune.
type Symbol string

// StateID identifies an NFA state. Values are unique within a single
// Builder's lifetime.
type StateID uint32

// InvalidState is never produced by Builder and marks the absence of a state.
const InvalidState StateID = math.MaxUint32

// Label distinguishes an epsilon transition from a symbol transition. It is
// a small comparable struct, usable directly as a map key.
type Label struct {
	Epsilon bool
	Sym     Symbol
}

// EpsilonLabel is the distinguished epsilon label.
func EpsilonLabel() Label { return Label{Epsilon: true} }

// SymbolLabel wraps sym as a non-epsilon label.
func SymbolLabel(sym Symbol) Label { return Label{Sym: sym} }

// NFA is an immutable, built automaton: start state, accept state, and the
// union of every transition added while building it. NFAs are transient —
// they exist only to be handed to Determinize and may be discarded once a
// DFA is produced.
type NFA struct {
	Start     StateID
	Accept    StateID
	Trans     map[StateID]map[Label][]StateID
	numStates StateID
}

// NumStates returns the number of states minted while building n.
func (n *NFA) NumStates() int { return int(n.numStates) }

// StateCount returns the number of states minted while building n, as a
// StateID rather than an int — useful for comparing against a limit that
// is itself naturally expressed in the StateID space.
func (n *NFA) StateCount() StateID { return n.numStates }

// EpsilonTargets returns the states reachable from s by one epsilon edge.
// The returned slice must not be mutated by the caller.
func (n *NFA) EpsilonTargets(s StateID) []StateID {
	return n.Trans[s][EpsilonLabel()]
}

// SymbolTargets returns the states reachable from s by one sym edge.
// The returned slice must not be mutated by the caller.
func (n *NFA) SymbolTargets(s StateID, sym Symbol) []StateID {
	return n.Trans[s][SymbolLabel(sym)]
}

// Alphabet returns the distinct non-epsilon symbols labeling some edge of n,
// in no particular order: only symbols that actually appear, not an
// a-priori universe.
func (n *NFA) Alphabet() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, byLabel := range n.Trans {
		for lab := range byLabel {
			if !lab.Epsilon {
				seen[lab.Sym] = struct{}{}
			}
		}
	}
	out := make([]Symbol, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	return out
}

// EpsilonClosure returns the set of states reachable from any state in
// start by zero or more epsilon transitions, including the members of
// start themselves.
func (n *NFA) EpsilonClosure(start []StateID) *StateSet {
	set := NewStateSet(n.numStates)
	work := append([]StateID(nil), start...)
	for _, s := range start {
		set.Insert(s)
	}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, t := range n.EpsilonTargets(s) {
			if !set.Contains(t) {
				set.Insert(t)
				work = append(work, t)
			}
		}
	}
	return set
}

// Move returns, for every state in set, the states reachable by one sym
// transition — without epsilon-closing the result. Epsilon-closing the
// result, if needed, is the caller's job; see EpsilonClosure.
func (n *NFA) Move(set *StateSet, sym Symbol) []StateID {
	var out []StateID
	set.Iter(func(s StateID) {
		out = append(out, n.SymbolTargets(s, sym)...)
	})
	return out
}
