package dfa

import (
	"github.com/npillmayer/fsa"
)

// Canonical renumbers the states of the DFA into a stable order:
// breadth-first from the initial state, with the edges of every state
// visited in alphabet order. Two DFAs are isomorphic iff their canonical
// forms are equal state by state, which is how minimized machines — whose
// numbering is a split-history artifact — should be compared. States not
// reachable from the initial state keep their relative order behind the
// reachable ones.
func (d *DFA) Canonical() *DFA {
	n := d.auto.StateCount
	renumber := make([]int, n)
	for i := range renumber {
		renumber[i] = -1
	}
	next := 0
	queue := []int{d.InitialState()}
	renumber[d.InitialState()] = next
	next++
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		for _, sym := range d.alphabet {
			target, ok := d.Delta(state, sym)
			if ok && renumber[target] == -1 {
				renumber[target] = next
				next++
				queue = append(queue, target)
			}
		}
	}
	for s := 0; s < n; s++ {
		if renumber[s] == -1 {
			renumber[s] = next
			next++
		}
	}
	canonical := fsa.NewAutomaton(n)
	for s := 0; s < n; s++ {
		for _, sym := range d.alphabet {
			if target, ok := d.Delta(s, sym); ok {
				canonical.AddEdge(renumber[s], renumber[target], sym)
			}
		}
	}
	canonical.Initial.Add(renumber[d.InitialState()])
	for _, s := range d.auto.Accepting.Values() {
		canonical.Accepting.Add(renumber[s])
	}
	return wrap(d.alphabet, canonical)
}
