package nfa

import "github.com/treerex/treerex/internal/sparse"

// StateSet is a set of StateID values with O(1) insert, membership testing,
// and iteration cost proportional to its size. It wraps
// internal/sparse.SparseSet, which already solves exactly this problem for
// a dense, bounded-capacity id space: NFA states are dense uint32s minted
// by one Builder, so the capacity is known up front.
type StateSet struct {
	set *sparse.SparseSet
}

// NewStateSet creates an empty StateSet over the state space [0, capacity).
func NewStateSet(capacity StateID) *StateSet {
	return &StateSet{set: sparse.NewSparseSet(uint32(capacity))}
}

// Insert adds s to the set. A no-op if s is already present.
func (set *StateSet) Insert(s StateID) { set.set.Insert(uint32(s)) }

// Contains reports whether s is a member of the set.
func (set *StateSet) Contains(s StateID) bool { return set.set.Contains(uint32(s)) }

// Len returns the number of members.
func (set *StateSet) Len() int { return set.set.Size() }

// Values returns the members in unspecified order. The returned slice must
// not be retained past the next mutation of set.
func (set *StateSet) Values() []StateID {
	raw := set.set.Values()
	out := make([]StateID, len(raw))
	for i, v := range raw {
		out[i] = StateID(v)
	}
	return out
}

// Iter calls f once for each member, in unspecified order.
func (set *StateSet) Iter(f func(StateID)) {
	set.set.Iter(func(v uint32) { f(StateID(v)) })
}

// ContainsAccept reports whether set contains the NFA's accept state: a
// DFA state built from set is accepting exactly when this is true.
func (n *NFA) ContainsAccept(set *StateSet) bool {
	return set.Contains(n.Accept)
}
