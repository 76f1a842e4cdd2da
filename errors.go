package treerex

import (
	"fmt"

	"github.com/treerex/treerex/expr"
)

// ErrorKind classifies the errors Compile and NOrMore can return; each
// error type reports its kind from a Kind method. Each type's Is method
// matches any error of the same type, so errors.Is(err, &ParseError{})
// tests the category without a type switch.
type ErrorKind uint8

const (
	KindParse ErrorKind = iota
	KindEmptyLiteral
	KindPrecondition
	KindLimit
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindEmptyLiteral:
		return "empty literal"
	case KindPrecondition:
		return "precondition"
	case KindLimit:
		return "limit"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ParseError reports an expression leaf or operator node that front-end
// lowering does not recognize: something other than a Literal, an
// IntLiteral, or a well-formed Op.
type ParseError struct {
	Node expr.Node
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("treerex: unrecognized expression node %#v", e.Node)
}

func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// Kind reports e's ErrorKind.
func (e *ParseError) Kind() ErrorKind { return KindParse }

// EmptyLiteralError reports a zero-length string literal. Its language is
// ambiguous between "matches nothing" and "matches only the empty word",
// so front-end lowering rejects it outright rather than picking one —
// callers wanting optionality should wrap a non-empty literal in Opt
// instead.
type EmptyLiteralError struct {
	// Context names the ancestor operator under which the empty literal
	// occurred, when known; best-effort, may be empty.
	Context string
}

func (e *EmptyLiteralError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("treerex: empty literal under %s", e.Context)
	}
	return "treerex: empty literal"
}

func (e *EmptyLiteralError) Is(target error) bool {
	_, ok := target.(*EmptyLiteralError)
	return ok
}

func (e *EmptyLiteralError) Kind() ErrorKind { return KindEmptyLiteral }

// PreconditionError reports a violated precondition on an operation's
// arguments, such as NOrMore's requirement that k be non-negative.
type PreconditionError struct {
	Op      string
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("treerex: %s: %s", e.Op, e.Message)
}

func (e *PreconditionError) Is(target error) bool {
	_, ok := target.(*PreconditionError)
	return ok
}

func (e *PreconditionError) Kind() ErrorKind { return KindPrecondition }

// LimitError reports that compiling an expression exceeded one of the
// ambient safety limits carried in a Config — a guard against a
// pathologically deep or wide expression tree (for instance one built by
// NOrMore with an enormous k, or by composing Star within Star many times
// over), not against any specific expression shape.
type LimitError struct {
	Limit string
	Value int
	Max   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("treerex: %s exceeded: %d > %d", e.Limit, e.Value, e.Max)
}

func (e *LimitError) Is(target error) bool {
	_, ok := target.(*LimitError)
	return ok
}

func (e *LimitError) Kind() ErrorKind { return KindLimit }

// ConfigError reports an invalid Config field, caught by Config.Validate
// before a Compile call ever touches the expression tree.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("treerex: config: %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

func (e *ConfigError) Kind() ErrorKind { return KindConfig }
