package dfa

import (
	"github.com/npillmayer/fsa"
)

// A refinement task asks whether transitioning on symbol into the candidate
// class distinguishes states. The candidate is a snapshot: it stays as it
// was enqueued, even if the partition has split it since. Re-testing a class
// which is already stable with respect to a task is a no-op.
type task struct {
	candidate *fsa.StateSet
	symbol    rune
}

// Minimize merges the Myhill–Nerode equivalent states of the DFA and
// returns the resulting machine. The input must have been pruned first;
// see the package documentation.
//
// The partition of the states starts out as {accepting, non-accepting} and
// is refined by a worklist of (class, symbol) tasks until it stabilizes.
// States with no transition on the task's symbol count as not reaching the
// candidate class. Each class of the final partition becomes one state of
// the minimized machine, numbered by its position in the partition; this
// numbering is an artifact of the split history, so minimized machines are
// compared up to isomorphism (see Canonical).
func (d *DFA) Minimize() *DFA {
	n := d.auto.StateCount
	accepting := d.auto.Accepting.Copy()
	rest := fsa.NewStateSet()
	for s := 0; s < n; s++ {
		if !accepting.Contains(s) {
			rest.Add(s)
		}
	}
	partition := []*fsa.StateSet{accepting, rest}
	queue := make([]task, 0, 2*len(d.alphabet))
	for _, sym := range d.alphabet {
		queue = append(queue, task{accepting, sym}, task{rest, sym})
	}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		refined := make([]*fsa.StateSet, 0, len(partition))
		for _, class := range partition {
			inside, outside := d.split(class, t)
			if inside.Empty() || outside.Empty() {
				refined = append(refined, class) // stable under this task
				continue
			}
			tracer().Debugf("task (%v,%q) splits %v into %v / %v", t.candidate,
				string(t.symbol), class, inside, outside)
			refined = append(refined, inside, outside)
			for _, sym := range d.alphabet {
				queue = append(queue, task{inside, sym}, task{outside, sym})
			}
		}
		partition = refined
	}
	return d.rebuild(partition)
}

// split partitions a class into the states which transition on the task's
// symbol into the candidate class, and the rest.
func (d *DFA) split(class *fsa.StateSet, t task) (inside, outside *fsa.StateSet) {
	inside = fsa.NewStateSet()
	outside = fsa.NewStateSet()
	for _, s := range class.Values() {
		target, ok := d.Delta(s, t.symbol)
		if ok && t.candidate.Contains(target) {
			inside.Add(s)
		} else {
			outside.Add(s)
		}
	}
	return
}

// rebuild collapses every partition class into a single state. Transitions
// are lifted class-wise, with duplicates dropped; by construction classes
// never mix accepting and non-accepting states, so the accepting classes
// are exactly those with an accepting member.
func (d *DFA) rebuild(partition []*fsa.StateSet) *DFA {
	classOf := make([]int, d.auto.StateCount)
	for i, class := range partition {
		for _, s := range class.Values() {
			classOf[s] = i
		}
	}
	minimized := fsa.NewAutomaton(len(partition))
	for s := 0; s < d.auto.StateCount; s++ {
		for _, e := range d.auto.Edges[s] {
			addEdgeOnce(minimized, classOf[s], classOf[e.To], e.Label)
		}
	}
	minimized.Initial.Add(classOf[d.InitialState()])
	for _, s := range d.auto.Accepting.Values() {
		minimized.Accepting.Add(classOf[s])
	}
	tracer().Debugf("minimized %d states to %d classes", d.auto.StateCount, len(partition))
	return wrap(d.alphabet, minimized)
}

func addEdgeOnce(a *fsa.Automaton, from, to int, label rune) {
	for _, e := range a.Edges[from] {
		if e.To == to && e.Label == label {
			return
		}
	}
	a.AddEdge(from, to, label)
}
