package eilenberg

import (
	"unicode/utf8"

	"github.com/npillmayer/fsa"
)

// A task is one branch of the nondeterministic exploration: a current state
// together with the input still to be consumed.
type task struct {
	state int
	rest  string
}

// Accepts decides whether the automaton accepts the input word. Exploration
// is breadth-first: a FIFO worklist is seeded with every initial state, and
// each popped task either succeeds (input exhausted in an accepting state)
// or fans out along all edges matching the next input symbol. Branches that
// can neither succeed nor step are simply dropped.
func Accepts(m *fsa.Automaton, input string) bool {
	queue := make([]task, 0, m.Initial.Size())
	for _, s := range m.Initial.Values() {
		queue = append(queue, task{state: s, rest: input})
	}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if t.rest == "" {
			if m.Accepting.Contains(t.state) {
				tracer().Debugf("%q accepted in state %d", input, t.state)
				return true
			}
			continue
		}
		head, size := utf8.DecodeRuneInString(t.rest)
		for _, e := range m.Edges[t.state] {
			if e.Label == head {
				queue = append(queue, task{state: e.To, rest: t.rest[size:]})
			}
		}
	}
	return false
}
