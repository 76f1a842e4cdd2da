// Package treerex compiles a composed expression tree into a deterministic
// finite automaton and matches whole strings against it.
//
// Expressions are built by composition rather than parsed from text: a
// literal is a leaf, and Cat/Or/Star/Plus/Opt combine already-built
// expressions into larger ones (package expr). Compile lowers such a tree
// through a Thompson-construction NFA (package nfa) into a DFA (package
// dfa) via subset construction; Matches drives that DFA to a whole-string
// verdict. There is no capture-group support, no anchors, and no partial
// or leftmost-longest matching — acceptance is whole-string only.
//
// Basic usage:
//
//	url := expr.Cat(
//		expr.Or(expr.String("http"), expr.String("https")),
//		expr.String("://"),
//		expr.Plus(expr.Or(expr.String("a"), expr.String("b"))), // toy host alphabet
//	)
//	re, err := treerex.Compile(url)
//	if err != nil {
//		log.Fatal(err)
//	}
//	re.Matches("http://ab") // true
//
// Or, for a one-shot check that never exposes the intermediate DFA:
//
//	ok, err := treerex.Matches(expr.Star(expr.String("ab")), "ababab")
package treerex
