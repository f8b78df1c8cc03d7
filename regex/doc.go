/*
Package regex implements parsing and printing of regular expressions.

Expressions are restricted to the operators of the Kleene algebra: union
('|'), concatenation ('.') and iteration ('*'), plus parentheses for
grouping. Every other non-space character is a literal alphabet symbol.
Concatenation is written explicitly; there is no implicit juxtaposition.

Parsing happens in two classic passes: a shunting-yard scan rewrites the
infix input into reverse Polish (postfix) form, and a single-pass stack
evaluation of the postfix form yields the syntax tree.

    expr, err := regex.Parse("(a|b)*.c")

Besides the textual infix form, syntax trees may be interchanged in a
structured JSON form, see Decode and Encode.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsa.regex'.
func tracer() tracing.Trace {
	return tracing.Select("fsa.regex")
}
