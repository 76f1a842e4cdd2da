// Package expr defines the expression tree the engine compiles.
//
// Expressions are immutable values built by composition: a literal is a
// leaf, and cat/or/star/plus/opt combine already-built expressions into
// larger ones. Nothing in this package touches an NFA, a DFA, or a string
// syntax — it is pure data, the "surface" the front-end lowering in the
// root package consumes.
package expr

import "strconv"

// Node is an expression tree node. The concrete types are Literal,
// IntLiteral, and Op; front-end lowering switches on these three and
// reports a ParseError for anything else. Because Node's only method is
// unexported, a type outside this package satisfies Node only by embedding
// one of this package's types; such a type is an unrecognized node to the
// front-end.
type Node interface {
	// node is unexported so that accidental structural matches (e.g. a
	// bare string, or an outside type that merely declares a node method)
	// don't satisfy Node.
	node()
}

// Literal is a non-empty string of alphabet symbols. An empty Literal is
// rejected by the front-end with EmptyLiteralError; build it with String.
type Literal string

func (Literal) node() {}

// String wraps s as a Literal leaf.
func String(s string) Literal { return Literal(s) }

// IntLiteral is an integer leaf, interpreted by the front-end as the
// decimal representation of i.
type IntLiteral int

func (IntLiteral) node() {}

// Int wraps i as an IntLiteral leaf.
func Int(i int) IntLiteral { return IntLiteral(i) }

// Decimal returns the literal string this integer leaf lowers to.
func (i IntLiteral) Decimal() string { return strconv.Itoa(int(i)) }

// Tag identifies an Op's combinator.
type Tag int

const (
	// TagCat concatenates its children in order; one or more children.
	TagCat Tag = iota
	// TagOr matches any one of its children; one or more children.
	TagOr
	// TagStar matches zero or more repetitions of its single child.
	TagStar
	// TagPlus matches one or more repetitions of its single child.
	TagPlus
	// TagOpt matches its single child zero or one times.
	TagOpt
)

// String names the tag for diagnostics.
func (t Tag) String() string {
	switch t {
	case TagCat:
		return "cat"
	case TagOr:
		return "or"
	case TagStar:
		return "star"
	case TagPlus:
		return "plus"
	case TagOpt:
		return "opt"
	default:
		return "tag(" + strconv.Itoa(int(t)) + ")"
	}
}

// Op is an operator node: a tag plus an ordered list of children.
//
// cat and or accept one or more children (a single child degenerates to
// that child unchanged); star, plus, and opt accept exactly one. If extra
// children are passed to Star, Plus, or Opt, only the first is used —
// callers should not rely on additional children having any effect.
type Op struct {
	Tag      Tag
	Children []Node
}

func (Op) node() {}

// Cat builds a concatenation of one or more expressions, left to right.
func Cat(children ...Node) Op { return Op{Tag: TagCat, Children: children} }

// Or builds an alternation of one or more expressions.
func Or(children ...Node) Op { return Op{Tag: TagOr, Children: children} }

// Star builds zero-or-more repetition of child.
func Star(child Node) Op { return Op{Tag: TagStar, Children: []Node{child}} }

// Plus builds one-or-more repetition of child.
func Plus(child Node) Op { return Op{Tag: TagPlus, Children: []Node{child}} }

// Opt builds zero-or-one repetition of child.
func Opt(child Node) Op { return Op{Tag: TagOpt, Children: []Node{child}} }
