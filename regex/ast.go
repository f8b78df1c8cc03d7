package regex

// Expr is a node of a regular expression syntax tree. It is a closed sum over
// the four variants Atom, Star, Concat and Union. Trees are immutable once
// built; clients and the packages of this module only ever read them.
type Expr interface {
	// String renders the expression in its minimal-parenthesization infix
	// form; see the package serializer.
	String() string
	variant() // closed: only the types below implement Expr
}

// Atom is a single alphabet symbol.
type Atom struct {
	Symbol rune
}

// Star is the Kleene iteration of an expression.
type Star struct {
	Inner Expr
}

// Concat is the concatenation of two expressions, in order.
type Concat struct {
	First  Expr
	Second Expr
}

// Union is the alternation of two expressions.
type Union struct {
	First  Expr
	Second Expr
}

func (Atom) variant()   {}
func (Star) variant()   {}
func (Concat) variant() {}
func (Union) variant()  {}
