/*
Package sparse implements a simple type for sparse transition tables.
It is used by package dfa to index the transition function of a
deterministic automaton: rows are states, columns are (ordinals of)
alphabet symbols, and cell values are target states. Deterministic
machines store at most one target per cell, and most cells of hand-made
machines are empty, which makes a sparse encoding a natural fit.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import "fmt"

// NoTransition is the null value of transition tables: the target recorded
// for every (state, symbol) cell no transition has been linked for.
// A missing transition is an ordinary outcome, not an error.
const NoTransition int32 = -1

// Table is a sparse states × symbols matrix of target states. Construct with
//
//     T := sparse.NewTable(10, 3)   // 10 states over a 3-symbol alphabet
//
// Now
//
//     T.Link(2, 0, 7)               // δ(state 2, symbol #0) = state 7
//     v := T.Target(2, 0)           // returns 7
//     v = T.Target(9, 2)            // returns NoTransition
//
// Cells cannot be deleted, but may be overwritten by linking again.
type Table struct {
	cells    []triplet
	statecnt int
	symcnt   int
}

// Triplet cells to store
type triplet struct {
	state, symbol int
	target        int32
}

// NewTable creates an empty transition table for the given number of states
// and alphabet symbols.
func NewTable(states, symbols int) *Table {
	return &Table{
		cells:    []triplet{},
		statecnt: states,
		symcnt:   symbols,
	}
}

// StateCount returns the row count of the table.
func (t *Table) StateCount() int {
	return t.statecnt
}

// SymbolCount returns the column count of the table.
func (t *Table) SymbolCount() int {
	return t.symcnt
}

// TransitionCount returns the number of transitions linked into the table.
func (t *Table) TransitionCount() int {
	return len(t.cells)
}

// Target returns the state reached from a state on a symbol ordinal, or
// NoTransition for an empty cell.
func (t *Table) Target(state, symbol int) int32 {
	for _, c := range t.cells {
		if !c.storedLeftOf(state, symbol) { // have skipped all lesser cells
			if c.storedAt(state, symbol) {
				return c.target
			}
			break
		}
	}
	return NoTransition
}

// Link records a transition from a state on a symbol ordinal. An existing
// cell is overwritten. Returns the table to allow chaining.
func (t *Table) Link(state, symbol int, target int32) *Table {
	at := 0 // will be position of new cell
	for k, c := range t.cells {
		if !c.storedLeftOf(state, symbol) { // have skipped all lesser cells
			if c.storedAt(state, symbol) { // cell already set
				t.cells[k].target = target
				return t
			}
			break // no old cell present
		}
		at++
	}
	cnew := triplet{state: state, symbol: symbol, target: target}
	// the following 3 lines have to work for at being the right edge or not
	t.cells = append(t.cells, cnew)    // make room
	copy(t.cells[at+1:], t.cells[at:]) // copy remainder cells one index to right
	t.cells[at] = cnew                 // if not append-case: insert new triplet
	return t
}

func (c *triplet) storedLeftOf(state, symbol int) bool {
	return c.state < state || c.state == state && c.symbol < symbol
}

func (c *triplet) storedAt(state, symbol int) bool {
	return c.state == state && c.symbol == symbol
}

func (c triplet) String() string {
	return fmt.Sprintf("(%d,#%d)->%d", c.state, c.symbol, c.target)
}
