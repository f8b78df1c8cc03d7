package regex

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Syntax trees have a structured interchange form in JSON:
//
//    {"key": "atm", "val": "a"}
//    {"key": "*",   "val": <expr>}
//    {"key": ".",   "val": {"fst": <expr>, "snd": <expr>}}
//    {"key": "|",   "val": {"fst": <expr>, "snd": <expr>}}
//
// Encode and Decode translate between this form and Expr trees.

// ErrUnknownOperator flags an operator tag which is not part of the
// expression language. It can only arise from externally produced input;
// trees built through the Expr type are unknown-operator-free by
// construction.
var ErrUnknownOperator = errors.New("unknown operator")

type jsonNode struct {
	Key string          `json:"key"`
	Val json.RawMessage `json:"val"`
}

type jsonPair struct {
	Fst json.RawMessage `json:"fst"`
	Snd json.RawMessage `json:"snd"`
}

// Decode reads an expression from its JSON interchange form.
func Decode(data []byte) (Expr, error) {
	var node jsonNode
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	switch node.Key {
	case "atm":
		var symbol string
		if err := json.Unmarshal(node.Val, &symbol); err != nil {
			return nil, err
		}
		runes := []rune(symbol)
		if len(runes) != 1 {
			return nil, fmt.Errorf("atom %q is not a single symbol: %w", symbol,
				ErrMalformedExpression)
		}
		return Atom{Symbol: runes[0]}, nil
	case "*":
		inner, err := Decode(node.Val)
		if err != nil {
			return nil, err
		}
		return Star{Inner: inner}, nil
	case ".", "|":
		var pair jsonPair
		if err := json.Unmarshal(node.Val, &pair); err != nil {
			return nil, err
		}
		first, err := Decode(pair.Fst)
		if err != nil {
			return nil, err
		}
		second, err := Decode(pair.Snd)
		if err != nil {
			return nil, err
		}
		if node.Key == "." {
			return Concat{First: first, Second: second}, nil
		}
		return Union{First: first, Second: second}, nil
	default:
		return nil, fmt.Errorf("operator tag %q: %w", node.Key, ErrUnknownOperator)
	}
}

// Encode renders an expression in its JSON interchange form.
func Encode(e Expr) ([]byte, error) {
	return json.Marshal(e)
}

// MarshalJSON implements the interchange form for atoms.
func (a Atom) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"key": "atm", "val": string(a.Symbol)})
}

// MarshalJSON implements the interchange form for iterations.
func (s Star) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{"key": "*", "val": s.Inner})
}

// MarshalJSON implements the interchange form for concatenations.
func (c Concat) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"key": ".",
		"val": map[string]interface{}{"fst": c.First, "snd": c.Second},
	})
}

// MarshalJSON implements the interchange form for unions.
func (u Union) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"key": "|",
		"val": map[string]interface{}{"fst": u.First, "snd": u.Second},
	})
}
