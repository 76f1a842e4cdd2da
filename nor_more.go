package treerex

import "github.com/treerex/treerex/expr"

// maxNOrMoreK bounds the k NOrMore will build for. Without a bound, a
// validly non-negative k near the int maximum makes k+1 overflow to a
// negative slice length and panic, and a large-but-not-overflowing k
// (e.g. 1<<40) allocates a slice of that many nodes and exhausts memory
// before Compile's own safety limits ever get a chance to run.
const maxNOrMoreK = 1 << 20

// NOrMore builds an expression matching k or more repetitions of e: star(e)
// when k is 0, otherwise k literal copies of e concatenated with star(e).
// It fails with *PreconditionError if k is negative, or *LimitError if k
// exceeds maxNOrMoreK.
func NOrMore(k int, e expr.Node) (expr.Node, error) {
	if k < 0 {
		return nil, &PreconditionError{Op: "NOrMore", Message: "k must be >= 0"}
	}
	if k > maxNOrMoreK {
		return nil, &LimitError{Limit: "NOrMore k", Value: k, Max: maxNOrMoreK}
	}
	if k == 0 {
		return expr.Star(e), nil
	}
	children := make([]expr.Node, k+1)
	for i := 0; i < k; i++ {
		children[i] = e
	}
	children[k] = expr.Star(e)
	return expr.Cat(children...), nil
}
