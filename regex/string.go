package regex

import "strings"

// The serializer renders a syntax tree back into infix form, inserting
// parentheses only where a re-parse would otherwise bind differently:
// a starred sub-expression is parenthesized unless it is a single atom, and
// a union below a concatenation is parenthesized. Associativity grouping is
// not reconstructed; the output re-parses to the same language, with
// precedence intact.

func (a Atom) String() string {
	return string(a.Symbol)
}

func (s Star) String() string {
	if _, isAtom := s.Inner.(Atom); isAtom {
		return s.Inner.String() + "*"
	}
	return "(" + s.Inner.String() + ")*"
}

func (c Concat) String() string {
	return parenthesizeUnion(c.First) + "." + parenthesizeUnion(c.Second)
}

func (u Union) String() string {
	// union is the lowest precedence, operands never need parentheses
	return u.First.String() + "|" + u.Second.String()
}

func parenthesizeUnion(e Expr) string {
	var b strings.Builder
	if _, isUnion := e.(Union); isUnion {
		b.WriteString("(")
		b.WriteString(e.String())
		b.WriteString(")")
	} else {
		b.WriteString(e.String())
	}
	return b.String()
}
