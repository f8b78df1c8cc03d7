/*
Package dfa handles deterministic finite-state machines.

A DFA wraps an automaton whose initial-state set is a singleton and which
carries at most one outgoing edge per symbol and state, together with an
explicit alphabet. The transition function is indexed in a sparse table, so
stepping is a lookup instead of an edge-list scan. A missing transition is
a regular outcome ("the machine dies"), never an error.

Two simplification passes are provided, both producing a new DFA and
leaving their input untouched:

■ Prune removes the states unreachable from the initial state and renumbers
the remainder, keeping the original state order.

■ Minimize merges Myhill–Nerode equivalent states by partition refinement:
starting from the split into accepting and non-accepting states, classes
are refined until no input symbol distinguishes two states of a class.
Minimize expects pruned input — unreachable states would end up inside the
equivalence classes and distort the result.

The state numbering of a minimized machine is an artifact of the order in
which classes were split. Minimized machines should therefore be compared
up to renaming of states; Canonical produces a stable numbering for that
purpose.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsa.dfa'.
func tracer() tracing.Trace {
	return tracing.Select("fsa.dfa")
}
