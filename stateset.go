package fsa

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// StateSet is a sorted set of state numbers. It is used for initial-state and
// accepting-state sets as well as for the transient state classes of the
// algorithms in this module (reachability, partition refinement).
//
// The zero value is not usable; create StateSets with NewStateSet.
type StateSet struct {
	states *treeset.Set
}

// NewStateSet creates a set containing the given states.
func NewStateSet(states ...int) *StateSet {
	s := &StateSet{states: treeset.NewWithIntComparator()}
	for _, st := range states {
		s.states.Add(st)
	}
	return s
}

// Add includes a state in the set. Returns the set to allow chaining.
func (s *StateSet) Add(state int) *StateSet {
	s.states.Add(state)
	return s
}

// Contains checks set membership.
func (s *StateSet) Contains(state int) bool {
	return s.states.Contains(state)
}

// Size returns the number of states in the set.
func (s *StateSet) Size() int {
	return s.states.Size()
}

// Empty is true for a set without members.
func (s *StateSet) Empty() bool {
	return s.states.Empty()
}

// Values returns the member states in ascending order.
func (s *StateSet) Values() []int {
	vals := s.states.Values()
	states := make([]int, len(vals))
	for i, v := range vals {
		states[i] = v.(int)
	}
	return states
}

// First returns the smallest member state, or -1 for an empty set.
func (s *StateSet) First() int {
	if s.states.Empty() {
		return -1
	}
	return s.states.Values()[0].(int)
}

// Copy returns an independent copy of the set.
func (s *StateSet) Copy() *StateSet {
	return NewStateSet(s.Values()...)
}

// Equals compares two sets member-wise.
func (s *StateSet) Equals(other *StateSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, st := range s.Values() {
		if !other.Contains(st) {
			return false
		}
	}
	return true
}

// Offset returns a new set with every member shifted by d. Automata
// constructions renumber sub-machine states this way.
func (s *StateSet) Offset(d int) *StateSet {
	shifted := NewStateSet()
	for _, st := range s.Values() {
		shifted.Add(st + d)
	}
	return shifted
}

// Union returns a new set holding the members of both sets.
func (s *StateSet) Union(other *StateSet) *StateSet {
	u := s.Copy()
	for _, st := range other.Values() {
		u.Add(st)
	}
	return u
}

func (s *StateSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, st := range s.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%d", st))
	}
	b.WriteString("}")
	return b.String()
}
