package dfa

import (
	"fmt"

	"github.com/npillmayer/fsa"
	"github.com/npillmayer/fsa/dfa/sparse"
)

// DFA is a deterministic finite-state machine over an explicit alphabet.
// Construct one with New (from raw parts, as supplied by a client) or with
// FromAutomaton. DFAs are immutable; Prune and Minimize return new ones.
type DFA struct {
	alphabet []rune
	symindex map[rune]int // symbol → ordinal in alphabet
	auto     *fsa.Automaton
	table    *sparse.Table // transition index: state × symbol ordinal
}

// New creates a DFA from its parts: an alphabet, a state count, an adjacency
// structure (edges[i] lists the transitions leaving state i), the initial
// state and the accepting states. The parts are validated against the DFA
// contract; violations — out-of-range states, edge labels outside the
// alphabet, more than one edge per state and symbol — are reported as
// fsa.ErrInvalidAutomaton.
func New(alphabet []rune, n int, edges [][]fsa.Edge, initial int, accepting []int) (*DFA, error) {
	auto := fsa.NewAutomaton(n)
	for s := 0; s < n && s < len(edges); s++ {
		auto.Edges[s] = append(auto.Edges[s], edges[s]...)
	}
	auto.Initial.Add(initial)
	for _, s := range accepting {
		auto.Accepting.Add(s)
	}
	return FromAutomaton(alphabet, auto)
}

// FromAutomaton wraps an existing automaton as a DFA, checking the DFA
// contract: a singleton initial-state set and a deterministic transition
// relation over the given alphabet.
func FromAutomaton(alphabet []rune, auto *fsa.Automaton) (*DFA, error) {
	if err := auto.Validate(); err != nil {
		return nil, err
	}
	if auto.Initial.Size() != 1 {
		return nil, fmt.Errorf("%d initial states, DFA needs exactly one: %w",
			auto.Initial.Size(), fsa.ErrInvalidAutomaton)
	}
	d := &DFA{
		alphabet: append([]rune{}, alphabet...),
		symindex: make(map[rune]int, len(alphabet)),
		auto:     auto,
	}
	for i, sym := range d.alphabet {
		d.symindex[sym] = i
	}
	d.table = sparse.NewTable(auto.StateCount, len(d.alphabet))
	for s := 0; s < auto.StateCount; s++ {
		for _, e := range auto.Edges[s] {
			ord, ok := d.symindex[e.Label]
			if !ok {
				return nil, fmt.Errorf("edge label %q outside of alphabet: %w",
					string(e.Label), fsa.ErrInvalidAutomaton)
			}
			if d.table.Target(s, ord) != sparse.NoTransition {
				return nil, fmt.Errorf("two edges for state %d and symbol %q: %w",
					s, string(e.Label), fsa.ErrInvalidAutomaton)
			}
			d.table.Link(s, ord, int32(e.To))
		}
	}
	return d, nil
}

// wrap is the internal constructor for automata produced by the passes of
// this package. Their invariants hold by construction, so no validation or
// duplicate checking happens here.
func wrap(alphabet []rune, auto *fsa.Automaton) *DFA {
	d := &DFA{
		alphabet: alphabet,
		symindex: make(map[rune]int, len(alphabet)),
		auto:     auto,
	}
	for i, sym := range alphabet {
		d.symindex[sym] = i
	}
	d.table = sparse.NewTable(auto.StateCount, len(alphabet))
	for s := 0; s < auto.StateCount; s++ {
		for _, e := range auto.Edges[s] {
			d.table.Link(s, d.symindex[e.Label], int32(e.To))
		}
	}
	return d
}

// Alphabet returns the alphabet the DFA was constructed over.
func (d *DFA) Alphabet() []rune {
	return append([]rune{}, d.alphabet...)
}

// Automaton returns the underlying automaton value.
func (d *DFA) Automaton() *fsa.Automaton {
	return d.auto
}

// StateCount returns the number of states.
func (d *DFA) StateCount() int {
	return d.auto.StateCount
}

// InitialState returns the single initial state.
func (d *DFA) InitialState() int {
	return d.auto.Initial.First()
}

// IsAccepting checks whether a state is accepting.
func (d *DFA) IsAccepting(state int) bool {
	return d.auto.Accepting.Contains(state)
}

// Delta is the transition function. The second return value reports whether
// a transition exists; a missing transition is a valid non-transitioning
// outcome.
func (d *DFA) Delta(state int, symbol rune) (int, bool) {
	ord, ok := d.symindex[symbol]
	if !ok {
		return 0, false
	}
	target := d.table.Target(state, ord)
	if target == sparse.NoTransition {
		return 0, false
	}
	return int(target), true
}

// Accepts steps the machine over a word, starting in the initial state.
// The word is accepted if the machine survives all symbols and halts in an
// accepting state.
func (d *DFA) Accepts(word string) bool {
	state := d.InitialState()
	for _, symbol := range word {
		target, ok := d.Delta(state, symbol)
		if !ok {
			return false
		}
		state = target
	}
	return d.IsAccepting(state)
}

func (d *DFA) String() string {
	return fmt.Sprintf("(dfa |%d| over %q)", d.auto.StateCount, string(d.alphabet))
}
