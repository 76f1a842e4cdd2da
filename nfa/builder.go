package nfa

// Fragment is a sub-NFA under construction: exactly one entry state and one
// exit state, with no edges yet connecting it to anything else. Every
// combinator below preserves this Thompson invariant, which is what lets
// combinators glue fragments together by epsilon edges alone, without ever
// rewriting a state already allocated.
type Fragment struct {
	Start  StateID
	Accept StateID
}

// Builder constructs a single NFA by Thompson composition. A Builder is not
// safe for concurrent use: its state-id counter is scoped to one build, so
// one Builder belongs to one goroutine's compile call.
type Builder struct {
	trans map[StateID]map[Label][]StateID
	next  StateID
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{trans: make(map[StateID]map[Label][]StateID)}
}

func (b *Builder) newState() StateID {
	id := b.next
	b.next++
	return id
}

func (b *Builder) addEdge(from StateID, lab Label, to StateID) {
	byLabel := b.trans[from]
	if byLabel == nil {
		byLabel = make(map[Label][]StateID)
		b.trans[from] = byLabel
	}
	byLabel[lab] = append(byLabel[lab], to)
}

// Symbol builds the one-edge fragment start--sym-->accept.
func (b *Builder) Symbol(sym Symbol) *Fragment {
	start, accept := b.newState(), b.newState()
	b.addEdge(start, SymbolLabel(sym), accept)
	return &Fragment{Start: start, Accept: accept}
}

// Symbols splits s into one Symbol per rune.
func Symbols(s string) []Symbol {
	runes := []rune(s)
	syms := make([]Symbol, len(runes))
	for i, r := range runes {
		syms[i] = Symbol(string(r))
	}
	return syms
}

// Literal builds a fragment matching exactly the symbol sequence syms: a
// single-edge fragment for a one-symbol literal, or a left-fold Cat of
// one-symbol fragments for a longer one. syms must be non-empty — rejecting
// the empty literal is the front-end's job (EmptyLiteralError), not the
// builder's, so Literal panics on an empty slice rather than silently
// building a useless fragment.
func (b *Builder) Literal(syms []Symbol) *Fragment {
	if len(syms) == 0 {
		panic("nfa: Literal requires at least one symbol")
	}
	frag := b.Symbol(syms[0])
	for _, sym := range syms[1:] {
		frag = b.catTwo(frag, b.Symbol(sym))
	}
	return frag
}

func (b *Builder) catTwo(a, c *Fragment) *Fragment {
	start, accept := b.newState(), b.newState()
	b.addEdge(start, EpsilonLabel(), a.Start)
	b.addEdge(a.Accept, EpsilonLabel(), c.Start)
	b.addEdge(c.Accept, EpsilonLabel(), accept)
	return &Fragment{Start: start, Accept: accept}
}

// Cat builds cat(A, B, ...): start •-> A •-> B •-> ... •-> accept. A single
// fragment is returned unchanged.
func (b *Builder) Cat(frags ...*Fragment) *Fragment {
	if len(frags) == 0 {
		panic("nfa: Cat requires at least one fragment")
	}
	out := frags[0]
	for _, f := range frags[1:] {
		out = b.catTwo(out, f)
	}
	return out
}

// Or builds or(A, B, ...): a fresh start epsilon-branches into every child's
// start, and every child's accept epsilon-joins a fresh accept. A single
// child is returned unchanged.
func (b *Builder) Or(frags ...*Fragment) *Fragment {
	if len(frags) == 0 {
		panic("nfa: Or requires at least one fragment")
	}
	if len(frags) == 1 {
		return frags[0]
	}
	start, accept := b.newState(), b.newState()
	for _, f := range frags {
		b.addEdge(start, EpsilonLabel(), f.Start)
		b.addEdge(f.Accept, EpsilonLabel(), accept)
	}
	return &Fragment{Start: start, Accept: accept}
}

// Opt builds opt(A): start •-> accept (skip) and start •-> A •-> accept
// (take it once).
func (b *Builder) Opt(f *Fragment) *Fragment {
	start, accept := b.newState(), b.newState()
	b.addEdge(start, EpsilonLabel(), accept)
	b.addEdge(start, EpsilonLabel(), f.Start)
	b.addEdge(f.Accept, EpsilonLabel(), accept)
	return &Fragment{Start: start, Accept: accept}
}

// Star builds star(A): start •-> accept (zero reps) and start •-> A, with
// A's accept looping back to start so any further rep is another exit-or-
// continue choice.
func (b *Builder) Star(f *Fragment) *Fragment {
	start, accept := b.newState(), b.newState()
	b.addEdge(start, EpsilonLabel(), accept)
	b.addEdge(start, EpsilonLabel(), f.Start)
	b.addEdge(f.Accept, EpsilonLabel(), start)
	return &Fragment{Start: start, Accept: accept}
}

// Plus builds plus(A): start •-> A •-> accept, with A's accept also looping
// back to A's start so the fragment accepts one-or-more reps, never zero —
// there is no direct start-to-accept edge.
func (b *Builder) Plus(f *Fragment) *Fragment {
	start, accept := b.newState(), b.newState()
	b.addEdge(start, EpsilonLabel(), f.Start)
	b.addEdge(f.Accept, EpsilonLabel(), accept)
	b.addEdge(f.Accept, EpsilonLabel(), f.Start)
	return &Fragment{Start: start, Accept: accept}
}

// Build finalizes the NFA rooted at frag. The Builder must not be reused
// afterward: subsequent combinator calls would mint states that this NFA's
// numStates snapshot doesn't know about.
func (b *Builder) Build(frag *Fragment) *NFA {
	return &NFA{
		Start:     frag.Start,
		Accept:    frag.Accept,
		Trans:     b.trans,
		numStates: b.next,
	}
}
