package treerex

import "github.com/treerex/treerex/expr"

// literalAlternatives reports the literal strings of e when e is itself an
// Or node whose children are all non-empty literals (string or integer):
// the shape literalset.New can accelerate. It reports ok=false for
// anything else, including an Or with a non-literal child or no children.
func literalAlternatives(e expr.Node) (lits []string, ok bool) {
	op, isOp := e.(expr.Op)
	if !isOp || op.Tag != expr.TagOr || len(op.Children) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(op.Children))
	for _, c := range op.Children {
		switch v := c.(type) {
		case expr.Literal:
			if v == "" {
				return nil, false
			}
			out = append(out, string(v))
		case expr.IntLiteral:
			out = append(out, v.Decimal())
		default:
			return nil, false
		}
	}
	return out, true
}
