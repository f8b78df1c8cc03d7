/*
Package eilenberg constructs nondeterministic automata from regular
expressions and decides word acceptance.

The construction follows Eilenberg's recipe rather than the more common
Thompson one: machines carry no ε-transitions, but may start out in several
initial states at once. Sub-machines are combined structurally —

■ an atom becomes a fresh two-state machine,

■ iteration loops every edge into an accepting state back to the initial
states,

■ concatenation splices the second machine onto the accepting states of the
first, dropping the second machine's initial states,

■ union is the disjoint sum of both machines.

One consequence of the ε-free iteration rule is worth knowing: the machine
for e* accepts the empty word only if the machine for e already does. This
mirrors the historic behavior of the construction and is kept on purpose;
callers needing ε-acceptance must arrange for an accepting initial state
themselves.

Acceptance is decided by a breadth-first worklist over (state, remaining
input) pairs. The remaining input strictly shrinks along every explored
path, so the search always terminates.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eilenberg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsa.eilenberg'.
func tracer() tracing.Trace {
	return tracing.Select("fsa.eilenberg")
}
