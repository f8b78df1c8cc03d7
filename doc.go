/*
Package fsa is a toolbox for finite-state automata.

FSA strives to be a small and dependable toolkit for working with
finite-state machines. It covers the classic circle of automata
algorithms: regular expressions are parsed into syntax trees, trees are
translated into nondeterministic automata, automata decide word
acceptance, and deterministic automata are brought into canonical form.
Package structure is as follows:

■ regex: Package regex implements parsing and printing of regular
expressions, together with a structured interchange form for regex
syntax trees.

■ eilenberg: Package eilenberg translates regular expressions into
nondeterministic automata and decides word acceptance.

■ dfa: Package dfa simplifies deterministic automata, by eliminating
unreachable states and by merging Myhill–Nerode equivalent ones.

The base package contains the automaton data model which is used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fsa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsa'.
func tracer() tracing.Trace {
	return tracing.Select("fsa")
}
