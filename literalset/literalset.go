// Package literalset accelerates whole-string membership tests against a
// fixed set of literal alternatives — the common case of an alternation of
// singleton literals standing in for a character class, or a set of
// recognized keywords. It is a fast path layered alongside the DFA, not a
// replacement for it: Set.Contains must agree with the DFA produced by
// compiling Or(Literal(lits)...) on every query. The root package's tests
// check that agreement; literalset_test.go checks Contains against fixed
// expected answers.
//
// github.com/coregx/ahocorasick gives an O(n) answer to "does any literal
// occur anywhere in this string at all", used here only to fast-reject; a
// positive signal still falls through to an exact lookup, so correctness
// never depends on exactly which of several overlapping literals the
// automaton happens to report.
package literalset

import "github.com/coregx/ahocorasick"

// Set tests whether a query string exactly equals one of a fixed set of
// literal alternatives.
type Set struct {
	automaton *ahocorasick.Automaton
	members   map[string]struct{}
}

// New builds a Set over literals. literals must be non-empty; each entry is
// assumed already validated as non-empty by the caller (front-end lowering
// rejects empty literals before this is ever built).
func New(literals []string) (*Set, error) {
	builder := ahocorasick.NewBuilder()
	members := make(map[string]struct{}, len(literals))
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
		members[lit] = struct{}{}
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Set{automaton: automaton, members: members}, nil
}

// Contains reports whether query exactly equals one of the set's literals.
func (s *Set) Contains(query string) bool {
	// Fast reject: if none of the literals occur anywhere in query, query
	// certainly doesn't equal one of them either.
	if s.automaton.Find([]byte(query), 0) == nil {
		return false
	}
	_, ok := s.members[query]
	return ok
}
