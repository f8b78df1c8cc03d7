package dfa

import (
	"testing"

	"github.com/npillmayer/fsa"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPrune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	d := exampleDFA(t)
	pruned := d.Prune()
	pruned.Automaton().Dump()
	// state 2 is unreachable from 0; the rest renumbers to 0,1,2,3
	if pruned.StateCount() != 4 {
		t.Fatalf("expected 4 states after pruning, got %d", pruned.StateCount())
	}
	if pruned.InitialState() != 0 {
		t.Errorf("expected initial state to remain 0, got %d", pruned.InitialState())
	}
	// original state 4 renumbers to 3 and stays the only accepting state
	if !pruned.Automaton().Accepting.Equals(fsa.NewStateSet(3)) {
		t.Errorf("expected accepting {3}, got %v", pruned.Automaton().Accepting)
	}
	expected := []struct {
		from, to int
		label    rune
	}{
		{0, 1, 'a'}, {0, 2, 'b'}, {1, 3, 'c'}, {2, 3, 'c'},
	}
	for _, e := range expected {
		if target, ok := pruned.Delta(e.from, e.label); !ok || target != e.to {
			t.Errorf("expected δ(%d,%s) = %d, got %d/%v", e.from, string(e.label), e.to,
				target, ok)
		}
	}
}

func TestPruneKeepsLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	d := exampleDFA(t)
	pruned := d.Prune()
	for _, word := range wordCorpus() {
		if d.Accepts(word) != pruned.Accepts(word) {
			t.Errorf("pruning changed acceptance of %q", word)
		}
	}
}

func TestPruneWithoutUnreachableStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	d, err := New([]rune("ab"), 2,
		[][]fsa.Edge{
			{{To: 1, Label: 'a'}},
			{{To: 0, Label: 'b'}},
		},
		0, []int{1})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	pruned := d.Prune()
	if pruned.StateCount() != 2 {
		t.Errorf("expected pruning to keep both states, got %d", pruned.StateCount())
	}
	if target, ok := pruned.Delta(1, 'b'); !ok || target != 0 {
		t.Errorf("expected δ(1,b) = 0 to survive unchanged")
	}
}

// every word over {a,b,c} up to length 3, plus some longer ones
func wordCorpus() []string {
	alphabet := "abc"
	words := []string{"", "acca", "bcb", "abcabc", "ccba"}
	var extend func(prefix string, depth int)
	extend = func(prefix string, depth int) {
		if depth == 0 {
			return
		}
		for _, r := range alphabet {
			w := prefix + string(r)
			words = append(words, w)
			extend(w, depth-1)
		}
	}
	extend("", 3)
	return words
}
