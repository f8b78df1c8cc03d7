package regex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// ErrMalformedExpression flags syntactically broken input, e.g. an unmatched
// closing parenthesis or an operator without its operands.
var ErrMalformedExpression = errors.New("malformed expression")

// Operator priorities for the shunting-yard pass. Higher number = lower
// precedence. Parentheses act as a priority barrier on the stack: no binary
// operator may pop across them.
var priority = map[rune]int{
	'*': 1,
	'.': 2,
	'|': 3,
	'(': 4,
	')': 4,
}

// InfixToPostfix rewrites an infix regular expression into reverse Polish
// form, using an operator stack. The postfix '*' and all literal symbols are
// emitted immediately; binary operators are stacked and emitted by priority.
// Spaces in the input are skipped.
func InfixToPostfix(expr string) (string, error) {
	var postfix strings.Builder
	stack := arraystack.New()
	for _, ch := range expr {
		switch ch {
		case '(':
			stack.Push(ch)
		case ')':
			for {
				top, ok := stack.Pop()
				if !ok {
					return "", fmt.Errorf("unmatched ')' in %q: %w", expr, ErrMalformedExpression)
				}
				if top.(rune) == '(' {
					break
				}
				postfix.WriteRune(top.(rune))
			}
		case '.', '|':
			// pop operators of higher or equal precedence, i.e. both
			// operators are left-associative
			for {
				top, ok := stack.Peek()
				if !ok || priority[top.(rune)] > priority[ch] {
					break
				}
				stack.Pop()
				postfix.WriteRune(top.(rune))
			}
			stack.Push(ch)
		case ' ':
			// skipped
		default:
			// '*' and literal symbols are operands of the postfix form
			postfix.WriteRune(ch)
		}
	}
	for {
		top, ok := stack.Pop()
		if !ok {
			break
		}
		postfix.WriteRune(top.(rune))
	}
	tracer().Debugf("postfix(%q) = %q", expr, postfix.String())
	return postfix.String(), nil
}

// PostfixToExpr evaluates a postfix regular expression into a syntax tree,
// with a single pass over an operand stack. '*' wraps the topmost operand,
// '.' and '|' combine the two topmost operands (the most-recently pushed one
// becomes the second operand), every other symbol pushes an Atom.
func PostfixToExpr(postfix string) (Expr, error) {
	stack := arraystack.New()
	pop := func() (Expr, error) {
		v, ok := stack.Pop()
		if !ok {
			return nil, fmt.Errorf("missing operand in %q: %w", postfix, ErrMalformedExpression)
		}
		return v.(Expr), nil
	}
	for _, ch := range postfix {
		switch ch {
		case '*':
			inner, err := pop()
			if err != nil {
				return nil, err
			}
			stack.Push(Star{Inner: inner})
		case '.', '|':
			second, err := pop()
			if err != nil {
				return nil, err
			}
			first, err := pop()
			if err != nil {
				return nil, err
			}
			if ch == '.' {
				stack.Push(Concat{First: first, Second: second})
			} else {
				stack.Push(Union{First: first, Second: second})
			}
		default:
			stack.Push(Atom{Symbol: ch})
		}
	}
	return pop()
}

// Parse reads a regular expression in infix form and returns its syntax
// tree. It is the composition of InfixToPostfix and PostfixToExpr.
func Parse(expr string) (Expr, error) {
	postfix, err := InfixToPostfix(expr)
	if err != nil {
		return nil, err
	}
	return PostfixToExpr(postfix)
}
