package fsa

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidAutomaton flags an automaton which violates the data model,
// e.g. one which refers to states outside of [0 … StateCount).
// Clients constructing automata by hand should check with Automaton.Validate.
var ErrInvalidAutomaton = errors.New("invalid automaton")

// --- Automata --------------------------------------------------------------

// Edge is a single labeled transition to a target state. Edges are stored at
// their source state, so the source is implicit.
type Edge struct {
	To    int  // target state
	Label rune // alphabet symbol consumed by this transition
}

// Automaton is a finite-state machine over states numbered 0 … StateCount-1.
// Edges[i] holds the transitions leaving state i, in insertion order.
// Several edges with the same label leaving one state make the automaton
// nondeterministic; deterministic automata are handled by package dfa.
//
// Initial is a set of states. Nondeterministic machines may start in several
// states at once; deterministic ones are restricted to a singleton set.
//
// Automata are passed around as values: the transformations in this module
// never mutate their input but construct a fresh automaton.
type Automaton struct {
	StateCount int
	Edges      [][]Edge
	Initial    *StateSet
	Accepting  *StateSet
}

// NewAutomaton creates an automaton with n states and no transitions.
func NewAutomaton(n int) *Automaton {
	return &Automaton{
		StateCount: n,
		Edges:      make([][]Edge, n),
		Initial:    NewStateSet(),
		Accepting:  NewStateSet(),
	}
}

// AddEdge adds a transition from state `from` to state `to`, labeled with an
// alphabet symbol. Duplicate edges are not collapsed.
func (a *Automaton) AddEdge(from, to int, label rune) {
	a.Edges[from] = append(a.Edges[from], Edge{To: to, Label: label})
}

// Validate checks the automaton against the data model: edge lists for every
// state, and every referenced state within [0 … StateCount). Violations are
// reported as ErrInvalidAutomaton.
func (a *Automaton) Validate() error {
	if a.StateCount < 0 {
		return fmt.Errorf("negative state count %d: %w", a.StateCount, ErrInvalidAutomaton)
	}
	if len(a.Edges) != a.StateCount {
		return fmt.Errorf("%d edge lists for %d states: %w", len(a.Edges), a.StateCount,
			ErrInvalidAutomaton)
	}
	for s, edges := range a.Edges {
		for _, e := range edges {
			if e.To < 0 || e.To >= a.StateCount {
				return fmt.Errorf("edge %d-%s->%d out of range: %w", s, string(e.Label), e.To,
					ErrInvalidAutomaton)
			}
		}
	}
	for _, s := range a.Initial.Values() {
		if s < 0 || s >= a.StateCount {
			return fmt.Errorf("initial state %d out of range: %w", s, ErrInvalidAutomaton)
		}
	}
	for _, s := range a.Accepting.Values() {
		if s < 0 || s >= a.StateCount {
			return fmt.Errorf("accepting state %d out of range: %w", s, ErrInvalidAutomaton)
		}
	}
	return nil
}

// Alphabet returns the symbols occuring on edges of the automaton, sorted
// and without duplicates. The alphabet of an automaton is implicit: it is
// whatever its transitions mention.
func (a *Automaton) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, edges := range a.Edges {
		for _, e := range edges {
			seen[e.Label] = struct{}{}
		}
	}
	alpha := make([]rune, 0, len(seen))
	for r := range seen {
		alpha = append(alpha, r)
	}
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })
	return alpha
}

func (a *Automaton) String() string {
	return fmt.Sprintf("(automaton |%d| initial=%v accepting=%v)", a.StateCount,
		a.Initial, a.Accepting)
}

// Dump is a debugging helper, logging all transitions of the automaton.
func (a *Automaton) Dump() {
	tracer().Debugf("--- automaton with %d states ---------", a.StateCount)
	for s, edges := range a.Edges {
		var b bytes.Buffer
		for _, e := range edges {
			b.WriteString(fmt.Sprintf(" -%s-> %d", string(e.Label), e.To))
		}
		tracer().Debugf("state %03d |%s", s, b.String())
	}
	tracer().Debugf("initial   = %v", a.Initial)
	tracer().Debugf("accepting = %v", a.Accepting)
	tracer().Debugf("--------------------------------------")
}
