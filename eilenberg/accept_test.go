package eilenberg

import (
	"testing"

	"github.com/npillmayer/fsa/regex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// The historic word corpus for ((a|b*)*.((d*.e)|c)).(b|a)*. Note that the
// empty word and "ac" are rejected: the trailing (b|a)* insists on at least
// one symbol, a consequence of the ε-free iteration rule.
func TestAcceptCorpus(t *testing.T) {
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
	corpus := []struct {
		word     string
		accepted bool
	}{
		{"ac", false},
		{"", false},
		{"abbddeaaab", true},
		{"aca", true},
		{"bdea", true},
		{"bbcbb", true},
		{"bbbda", false},
		{"bbabbda", false},
		{"abab", false},
		{"addeca", false},
	}
	for _, c := range corpus {
		got := Accepts(m, c.word)
		t.Logf("accepts(%q) = %v", c.word, got)
		if got != c.accepted {
			t.Errorf("expected accepts(%q) = %v, got %v", c.word, c.accepted, got)
		}
	}
}

func TestAcceptUnknownSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.eilenberg")
	defer teardown()
	//
	m, err := FromExpr(regex.Star{Inner: regex.Atom{Symbol: 'a'}})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if Accepts(m, "ax") {
		t.Errorf("a symbol outside the alphabet must kill every branch")
	}
}
