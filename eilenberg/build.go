package eilenberg

import (
	"fmt"

	"github.com/npillmayer/fsa"
	"github.com/npillmayer/fsa/regex"
)

// FromExpr builds a nondeterministic automaton accepting exactly the words
// of the language denoted by a regular expression. The construction recurses
// over the shape of the expression; see the package documentation for the
// rules applied at each operator.
func FromExpr(e regex.Expr) (*fsa.Automaton, error) {
	switch node := e.(type) {
	case regex.Atom:
		m := fsa.NewAutomaton(2)
		m.AddEdge(0, 1, node.Symbol)
		m.Initial.Add(0)
		m.Accepting.Add(1)
		return m, nil
	case regex.Star:
		return star(node)
	case regex.Concat:
		return concat(node)
	case regex.Union:
		return union(node)
	default:
		return nil, fmt.Errorf("expression node %T: %w", e, regex.ErrUnknownOperator)
	}
}

// star builds the machine for e* from the machine M for e. State count,
// initial set and accepting set stay unchanged; for every edge of M running
// into an accepting state, a parallel edge into each initial state is added,
// closing the iteration loop.
func star(node regex.Star) (*fsa.Automaton, error) {
	m, err := FromExpr(node.Inner)
	if err != nil {
		return nil, err
	}
	initials := m.Initial.Values()
	for s := 0; s < m.StateCount; s++ {
		for _, e := range m.Edges[s] { // snapshot: loop edges added below are not revisited
			if m.Accepting.Contains(e.To) {
				for _, init := range initials {
					m.AddEdge(s, init, e.Label)
				}
			}
		}
	}
	return m, nil
}

// concat builds the machine for e1.e2 by splicing the machine B for e2 onto
// the accepting states of the machine A for e1. B's initial states are not
// represented in the result; every B-edge touching one of them is rerouted
// through A's accepting states instead, so the result has
// |A| + |B| - |B.initial| states.
func concat(node regex.Concat) (*fsa.Automaton, error) {
	first, err := FromExpr(node.First)
	if err != nil {
		return nil, err
	}
	second, err := FromExpr(node.Second)
	if err != nil {
		return nil, err
	}
	// renumber the non-initial states of the second machine, continuing
	// after the states of the first
	remap := make(map[int]int)
	next := first.StateCount
	for s := 0; s < second.StateCount; s++ {
		if !second.Initial.Contains(s) {
			remap[s] = next
			next++
		}
	}
	m := fsa.NewAutomaton(next)
	for s := 0; s < first.StateCount; s++ {
		m.Edges[s] = append(m.Edges[s], first.Edges[s]...)
	}
	accepting := first.Accepting.Values()
	for s := 0; s < second.StateCount; s++ {
		for _, e := range second.Edges[s] {
			switch {
			case second.Initial.Contains(s) && !second.Initial.Contains(e.To):
				for _, a := range accepting {
					m.AddEdge(a, remap[e.To], e.Label)
				}
			case second.Initial.Contains(s) && second.Initial.Contains(e.To):
				for _, a := range accepting {
					m.AddEdge(a, a, e.Label)
				}
			case !second.Initial.Contains(s) && second.Initial.Contains(e.To):
				for _, a := range accepting {
					m.AddEdge(remap[s], a, e.Label)
				}
			default:
				m.AddEdge(remap[s], remap[e.To], e.Label)
			}
		}
	}
	m.Initial = first.Initial.Copy()
	for _, s := range second.Accepting.Values() {
		if second.Initial.Contains(s) {
			// an accepting initial state of B is represented by the
			// accepting states of A
			for _, a := range accepting {
				m.Accepting.Add(a)
			}
		} else {
			m.Accepting.Add(remap[s])
		}
	}
	return m, nil
}

// union builds the machine for e1|e2 as the disjoint sum of both machines,
// with the states of the second machine offset behind those of the first.
func union(node regex.Union) (*fsa.Automaton, error) {
	first, err := FromExpr(node.First)
	if err != nil {
		return nil, err
	}
	second, err := FromExpr(node.Second)
	if err != nil {
		return nil, err
	}
	offset := first.StateCount
	m := fsa.NewAutomaton(offset + second.StateCount)
	for s := 0; s < first.StateCount; s++ {
		m.Edges[s] = append(m.Edges[s], first.Edges[s]...)
	}
	for s := 0; s < second.StateCount; s++ {
		for _, e := range second.Edges[s] {
			m.AddEdge(s+offset, e.To+offset, e.Label)
		}
	}
	m.Initial = first.Initial.Union(second.Initial.Offset(offset))
	m.Accepting = first.Accepting.Union(second.Accepting.Offset(offset))
	return m, nil
}
