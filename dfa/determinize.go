package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/treerex/treerex/nfa"
)

// subsetKey canonicalizes a StateSet into a string usable as a map key, so
// two subsets with the same members compare equal regardless of insertion
// order — the standard sorted-ids-to-string technique for canonicalizing
// NFA-state subsets during subset construction.
func subsetKey(set *nfa.StateSet) string {
	ids := append([]nfa.StateID(nil), set.Values()...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}

// Determinize runs subset construction over n and returns the resulting
// DFA. It always succeeds: determinization cannot fail on a well-formed
// NFA, which is all Determinize ever receives (front-end lowering is the
// only place compilation can fail).
func Determinize(n *nfa.NFA) *DFA {
	alphabet := n.Alphabet()

	subsetByID := []*nfa.StateSet{}
	idByKey := map[string]int{}

	s0 := n.EpsilonClosure([]nfa.StateID{n.Start})
	k0 := subsetKey(s0)
	idByKey[k0] = 0
	subsetByID = append(subsetByID, s0)

	// transitionKeys[id][sym] holds the *subset key* of the target, so we
	// can resolve it to a dense id only once every subset has one.
	transitionKeys := []map[nfa.Symbol]string{{}}

	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		cur := subsetByID[id]

		for _, sym := range alphabet {
			moved := n.Move(cur, sym)
			if len(moved) == 0 {
				continue // no symbol edge out of this subset: omit the transition
			}
			closure := n.EpsilonClosure(moved)
			key := subsetKey(closure)

			targetID, known := idByKey[key]
			if !known {
				targetID = len(subsetByID)
				idByKey[key] = targetID
				subsetByID = append(subsetByID, closure)
				transitionKeys = append(transitionKeys, map[nfa.Symbol]string{})
				queue = append(queue, targetID)
			}
			transitionKeys[id][sym] = key
		}
	}

	table := make([]map[nfa.Symbol]int, len(subsetByID))
	accepts := make(map[int]struct{})
	for id, set := range subsetByID {
		if n.ContainsAccept(set) {
			accepts[id] = struct{}{}
		}
		row := make(map[nfa.Symbol]int, len(transitionKeys[id]))
		for sym, key := range transitionKeys[id] {
			row[sym] = idByKey[key]
		}
		table[id] = row
	}

	return &DFA{Start: 0, Accepts: accepts, Table: table}
}
