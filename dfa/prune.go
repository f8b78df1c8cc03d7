package dfa

import (
	"github.com/npillmayer/fsa"
)

// Prune returns a DFA with all states unreachable from the initial state
// removed. The surviving states are renumbered contiguously, in ascending
// order of their original numbers (not in discovery order), so pruning a
// machine without unreachable states is a renaming-free identity.
func (d *DFA) Prune() *DFA {
	n := d.auto.StateCount
	reachable := make([]bool, n)
	queue := []int{d.InitialState()}
	reachable[d.InitialState()] = true
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		for _, e := range d.auto.Edges[state] {
			if !reachable[e.To] {
				reachable[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	// renumber the reachable states, keeping their relative order
	renumber := make(map[int]int, n)
	next := 0
	for s := 0; s < n; s++ {
		if reachable[s] {
			renumber[s] = next
			next++
		}
	}
	tracer().Debugf("pruning removes %d of %d states", n-next, n)
	pruned := fsa.NewAutomaton(next)
	for s := 0; s < n; s++ {
		if !reachable[s] {
			continue
		}
		for _, e := range d.auto.Edges[s] {
			if reachable[e.To] {
				pruned.AddEdge(renumber[s], renumber[e.To], e.Label)
			}
		}
	}
	pruned.Initial.Add(renumber[d.InitialState()])
	for _, s := range d.auto.Accepting.Values() {
		if reachable[s] {
			pruned.Accepting.Add(renumber[s])
		}
	}
	return wrap(d.alphabet, pruned)
}
