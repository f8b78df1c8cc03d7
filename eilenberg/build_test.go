package eilenberg

import (
	"testing"

	"github.com/npillmayer/fsa"
	"github.com/npillmayer/fsa/regex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAtomMachine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.eilenberg")
	defer teardown()
	//
	m, err := FromExpr(regex.Atom{Symbol: 'a'})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if m.StateCount != 2 {
		t.Errorf("expected 2 states, got %d", m.StateCount)
	}
	if len(m.Edges[0]) != 1 || m.Edges[0][0] != (fsa.Edge{To: 1, Label: 'a'}) {
		t.Errorf("expected single edge 0-a->1, got %v", m.Edges[0])
	}
	if !m.Initial.Equals(fsa.NewStateSet(0)) || !m.Accepting.Equals(fsa.NewStateSet(1)) {
		t.Errorf("expected initial {0} and accepting {1}, got %v / %v", m.Initial, m.Accepting)
	}
}

func TestStarMachine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.eilenberg")
	defer teardown()
	//
	m, err := FromExpr(regex.Star{Inner: regex.Atom{Symbol: 'a'}})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	// state count and both state sets stay those of the inner machine;
	// the edge into the accepting state is looped back to the initial state
	if m.StateCount != 2 {
		t.Errorf("expected 2 states, got %d", m.StateCount)
	}
	if len(m.Edges[0]) != 2 {
		t.Errorf("expected edges 0-a->1 and 0-a->0, got %v", m.Edges[0])
	}
	for _, word := range []string{"a", "aa", "aaaa"} {
		if !Accepts(m, word) {
			t.Errorf("expected a* to accept %q", word)
		}
	}
}

// The iteration rule adds no ε-moves, so e* accepts the empty word only if
// e's machine already does. This quirk of the construction is intentional.
func TestStarDoesNotAcceptEmptyWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.eilenberg")
	defer teardown()
	//
	m, err := FromExpr(regex.Star{Inner: regex.Atom{Symbol: 'e'}})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if Accepts(m, "") {
		t.Errorf("e* must not accept the empty word under this construction")
	}
}

func TestConcatMachine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.eilenberg")
	defer teardown()
	//
	m, err := FromExpr(regex.Concat{
		First:  regex.Atom{Symbol: 'a'},
		Second: regex.Atom{Symbol: 'b'},
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	m.Dump()
	// |A| + |B| - |B.initial| = 2 + 2 - 1
	if m.StateCount != 3 {
		t.Errorf("expected 3 states, got %d", m.StateCount)
	}
	if !m.Initial.Equals(fsa.NewStateSet(0)) || !m.Accepting.Equals(fsa.NewStateSet(2)) {
		t.Errorf("expected initial {0} and accepting {2}, got %v / %v", m.Initial, m.Accepting)
	}
	if !Accepts(m, "ab") || Accepts(m, "a") || Accepts(m, "b") || Accepts(m, "abb") {
		t.Errorf("machine for a.b accepts the wrong language")
	}
}

func TestUnionMachine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.eilenberg")
	defer teardown()
	//
	m, err := FromExpr(regex.Union{
		First:  regex.Atom{Symbol: 'a'},
		Second: regex.Atom{Symbol: 'b'},
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if m.StateCount != 4 {
		t.Errorf("expected disjoint sum with 4 states, got %d", m.StateCount)
	}
	if !m.Initial.Equals(fsa.NewStateSet(0, 2)) {
		t.Errorf("expected initial {0 2}, got %v", m.Initial)
	}
	if !m.Accepting.Equals(fsa.NewStateSet(1, 3)) {
		t.Errorf("expected accepting {1 3}, got %v", m.Accepting)
	}
	if !Accepts(m, "a") || !Accepts(m, "b") || Accepts(m, "ab") || Accepts(m, "") {
		t.Errorf("machine for a|b accepts the wrong language")
	}
}

func TestMachineValidates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.eilenberg")
	defer teardown()
	//
	e, err := regex.Parse("((a|b*)*.((d*.e)|c)).(b|a)*")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	m, err := FromExpr(e)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err = m.Validate(); err != nil {
		t.Errorf("constructed machine does not validate: %v", err)
	}
	t.Logf("machine has %d states over alphabet %q", m.StateCount, string(m.Alphabet()))
}
