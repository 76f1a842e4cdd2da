package treerex

import (
	"github.com/treerex/treerex/expr"
	"github.com/treerex/treerex/nfa"
)

// lowerer performs the front-end lowering of an expression tree into NFA
// fragments within a single Builder, enforcing the recursion-depth limit
// of cfg along the way.
type lowerer struct {
	b   *nfa.Builder
	cfg Config
}

// lower converts n into an NFA fragment. ctx names the nearest enclosing
// operator (e.g. "cat", "or"), or "" at the root, and is threaded into
// EmptyLiteralError so its message can name the operator that produced the
// empty literal.
func (lw *lowerer) lower(n expr.Node, depth int, ctx string) (*nfa.Fragment, error) {
	if depth > lw.cfg.MaxRecursionDepth {
		return nil, &LimitError{Limit: "MaxRecursionDepth", Value: depth, Max: lw.cfg.MaxRecursionDepth}
	}
	switch v := n.(type) {
	case expr.Literal:
		syms := nfa.Symbols(string(v))
		if len(syms) == 0 {
			return nil, &EmptyLiteralError{Context: ctx}
		}
		return lw.b.Literal(syms), nil
	case expr.IntLiteral:
		// Decimal() of any int always yields at least one digit, so this
		// can never produce an empty literal.
		return lw.b.Literal(nfa.Symbols(v.Decimal())), nil
	case expr.Op:
		return lw.lowerOp(v, depth)
	default:
		return nil, &ParseError{Node: n}
	}
}

func (lw *lowerer) lowerOp(op expr.Op, depth int) (*nfa.Fragment, error) {
	switch op.Tag {
	case expr.TagCat:
		frags, err := lw.lowerChildren(op, depth)
		if err != nil {
			return nil, err
		}
		return lw.b.Cat(frags...), nil
	case expr.TagOr:
		frags, err := lw.lowerChildren(op, depth)
		if err != nil {
			return nil, err
		}
		return lw.b.Or(frags...), nil
	case expr.TagStar, expr.TagPlus, expr.TagOpt:
		if len(op.Children) == 0 {
			return nil, &ParseError{Node: op}
		}
		// Only the first child is meaningful for these unary combinators;
		// any extras are ignored, matching expr.Op's documented behavior.
		frag, err := lw.lower(op.Children[0], depth+1, op.Tag.String())
		if err != nil {
			return nil, err
		}
		switch op.Tag {
		case expr.TagStar:
			return lw.b.Star(frag), nil
		case expr.TagPlus:
			return lw.b.Plus(frag), nil
		default:
			return lw.b.Opt(frag), nil
		}
	default:
		return nil, &ParseError{Node: op}
	}
}

func (lw *lowerer) lowerChildren(op expr.Op, depth int) ([]*nfa.Fragment, error) {
	if len(op.Children) == 0 {
		return nil, &ParseError{Node: op}
	}
	frags := make([]*nfa.Fragment, len(op.Children))
	for i, c := range op.Children {
		f, err := lw.lower(c, depth+1, op.Tag.String())
		if err != nil {
			return nil, err
		}
		frags[i] = f
	}
	return frags, nil
}
