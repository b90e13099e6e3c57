package cyk

import (
	"testing"

	"github.com/npillmayer/chartparse/cfg"
	"github.com/npillmayer/chartparse/derivation"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Terminal IDs.
const (
	FOO = 1
	BAR = 2
)

// Non-terminal IDs.
const (
	NT  = 1
	NT2 = 2
)

type A = derivation.Application
type Trace = derivation.Trace

func checkTraces(t *testing.T, have []Trace, want ...Trace) {
	t.Helper()
	if len(have) != len(want) {
		t.Fatalf("expected %d derivations, have %d: %v", len(want), len(have), have)
	}
	for i := range want {
		if !have[i].Equal(want[i]) {
			t.Errorf("derivation #%d: expected %v, have %v", i, want[i], have[i])
		}
	}
}

// NT → BAR
// NT → FOO NT
func TestParse1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cyk")
	defer teardown()
	//
	b := cfg.NewBuilder()
	b.LHS(NT).T(BAR).End()
	b.LHS(NT).T(FOO).N(NT).End()
	parses, err := Parse([]int{FOO, FOO, BAR}, b.Rules(), []int{NT}, []int{NT},
		derivation.PopulateTrace, derivation.Identity[Trace], Verbose(true))
	if err != nil {
		t.Fatal(err)
	}
	checkTraces(t, parses, Trace{A{Begin: 0, End: 3, Rule: 1}, A{Begin: 1, End: 3, Rule: 1}, A{Begin: 2, End: 3, Rule: 0}})
}

// NT → BAR
// NT → NT FOO NT
// NT → NT FOO BAR
func ambiguousRules() []*cfg.Rule {
	b := cfg.NewBuilder()
	b.LHS(NT).T(BAR).End()
	b.LHS(NT).N(NT).T(FOO).N(NT).End()
	b.LHS(NT).N(NT).T(FOO).T(BAR).End()
	return b.Rules()
}

func TestParse2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cyk")
	defer teardown()
	//
	parses, err := Parse([]int{BAR, FOO, BAR}, ambiguousRules(), []int{NT}, []int{NT},
		derivation.PopulateTrace, derivation.Identity[Trace], Verbose(true))
	if err != nil {
		t.Fatal(err)
	}
	checkTraces(t, parses,
		Trace{A{Begin: 0, End: 3, Rule: 2}, A{Begin: 0, End: 1, Rule: 0}},
		Trace{A{Begin: 0, End: 3, Rule: 1}, A{Begin: 0, End: 1, Rule: 0}, A{Begin: 2, End: 3, Rule: 0}},
	)
}

// NT → FOO NT
func TestParse3(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cyk")
	defer teardown()
	//
	b := cfg.NewBuilder()
	b.LHS(NT).T(FOO).N(NT).End()
	input := []cfg.Symbol{cfg.T(FOO), cfg.T(FOO), cfg.N(NT)}
	parses, err := ParseSymbols(input, b.Rules(), []int{NT}, []int{NT},
		derivation.PopulateTrace, derivation.Identity[Trace], derivation.AnchorTrace, Verbose(true))
	if err != nil {
		t.Fatal(err)
	}
	checkTraces(t, parses, Trace{A{Begin: 0, End: 3, Rule: 0}, A{Begin: 1, End: 3, Rule: 0}})
}

func TestParse4(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cyk")
	defer teardown()
	//
	input := []cfg.Symbol{cfg.N(NT), cfg.T(FOO), cfg.T(BAR)}
	parses, err := ParseSymbols(input, ambiguousRules(), []int{NT}, []int{NT},
		derivation.PopulateTrace, nil, nil, Verbose(true))
	if err != nil {
		t.Fatal(err)
	}
	checkTraces(t, parses,
		Trace{A{Begin: 0, End: 3, Rule: 2}},
		Trace{A{Begin: 0, End: 3, Rule: 1}, A{Begin: 2, End: 3, Rule: 0}},
	)
}

// NT  → BAR
// NT2 → FOO NT
func TestParse5(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cyk")
	defer teardown()
	//
	b := cfg.NewBuilder()
	b.LHS(NT).T(BAR).End()
	b.LHS(NT2).T(FOO).N(NT).End()
	parses, err := Parse([]int{FOO, BAR}, b.Rules(), []int{NT, NT2}, []int{NT, NT2},
		derivation.PopulateTrace, derivation.Identity[Trace], Verbose(true))
	if err != nil {
		t.Fatal(err)
	}
	checkTraces(t, parses, Trace{A{Begin: 0, End: 2, Rule: 1}, A{Begin: 1, End: 2, Rule: 0}})
}

// NT  → NT2 BAR
// NT2 → NT BAR
func TestParse6(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cyk")
	defer teardown()
	//
	b := cfg.NewBuilder()
	b.LHS(NT).N(NT2).T(BAR).End()
	b.LHS(NT2).N(NT).T(BAR).End()
	input := []cfg.Symbol{cfg.N(NT), cfg.T(BAR)}
	parses, err := ParseSymbols(input, b.Rules(), []int{NT, NT2}, []int{NT, NT2},
		derivation.PopulateTrace, derivation.Identity[Trace], derivation.AnchorTrace, Verbose(true))
	if err != nil {
		t.Fatal(err)
	}
	checkTraces(t, parses, Trace{A{Begin: 0, End: 2, Rule: 1}})
}
