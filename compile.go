package treerex

import (
	"github.com/treerex/treerex/dfa"
	"github.com/treerex/treerex/expr"
	"github.com/treerex/treerex/internal/conv"
	"github.com/treerex/treerex/literalset"
	"github.com/treerex/treerex/nfa"
)

// DFA is a compiled expression, ready to match queries. It wraps the
// determinized automaton and, when the compiled expression was a plain
// alternation of literals, a literalset accelerator that answers Matches
// without walking the automaton's table at all.
type DFA struct {
	compiled *dfa.DFA
	accel    *literalset.Set
}

// Compile lowers e through Thompson construction into an NFA and
// determinizes it into a DFA. It fails with *ParseError if e contains a
// node front-end lowering doesn't recognize, *EmptyLiteralError if e
// contains an empty string literal, *ConfigError if an Option produces an
// invalid Config, or *LimitError if e exceeds the configured safety
// limits.
func Compile(e expr.Node, opts ...Option) (*DFA, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := nfa.NewBuilder()
	lw := &lowerer{b: b, cfg: cfg}
	frag, err := lw.lower(e, 0, "")
	if err != nil {
		return nil, err
	}

	built := b.Build(frag)
	// cfg.MaxNFAStates is a user-supplied int; compare in the StateID space
	// it actually bounds rather than risk the comparison itself overflowing
	// on a pathologically large built.NumStates().
	limit := nfa.StateID(conv.IntToUint32(cfg.MaxNFAStates))
	if built.StateCount() > limit {
		return nil, &LimitError{Limit: "MaxNFAStates", Value: built.NumStates(), Max: cfg.MaxNFAStates}
	}

	d := &DFA{compiled: dfa.Determinize(built)}
	if lits, ok := literalAlternatives(e); ok {
		if accel, err := literalset.New(lits); err == nil {
			d.accel = accel
		}
	}
	return d, nil
}

// MustCompile is Compile but panics instead of returning an error, for
// expressions known valid at init time.
func MustCompile(e expr.Node, opts ...Option) *DFA {
	d, err := Compile(e, opts...)
	if err != nil {
		panic("treerex: MustCompile: " + err.Error())
	}
	return d
}
