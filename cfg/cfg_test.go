package cfg

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const (
	nt  = 1
	nt2 = 2
	foo = 1
	bar = 2
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cfg")
	defer teardown()
	//
	b := NewBuilder()
	r0 := b.LHS(nt).T(bar).End()        // [0]: NT  → BAR
	r1 := b.LHS(nt).T(foo).N(nt).End()  // [1]: NT  → FOO NT
	r2 := b.LHS(nt2).N(nt).T(bar).End() // [2]: NT2 → NT BAR
	if r0.Index() != 0 || r1.Index() != 1 || r2.Index() != 2 {
		t.Errorf("expected rules to be numbered 0…2, are %d, %d, %d", r0.Index(), r1.Index(), r2.Index())
	}
	if r0.LHS() != nt || r2.LHS() != nt2 {
		t.Errorf("expected LHS of rules 0 and 2 to be NT and NT2, are %d and %d", r0.LHS(), r2.LHS())
	}
	if r1.Len() != 2 || r1.At(1) != N(nt) {
		t.Errorf("expected RHS of rule 1 to be [FOO NT], is %v", r1.RHS())
	}
	if cnt := r2.NonTerminalCount(); cnt != 1 {
		t.Errorf("expected rule 2 to have 1 non-terminal, has %d", cnt)
	}
	g, err := b.Grammar(nt)
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if len(g.NonTerminals()) != 2 || len(g.Roots()) != 1 {
		t.Errorf("expected 2 non-terminals and 1 root, have %v and %v", g.NonTerminals(), g.Roots())
	}
	if len(g.RulesFor(nt)) != 2 {
		t.Errorf("expected 2 rules for NT, have %d", len(g.RulesFor(nt)))
	}
	if g.Rule(2) != r2 {
		t.Errorf("expected to find rule 2 by index")
	}
}

func TestRHSIsCopied(t *testing.T) {
	rhs := []Symbol{T(foo), N(nt)}
	r := NewRule(0, nt, rhs...)
	rhs[0] = T(bar)
	if r.At(0) != T(foo) {
		t.Errorf("rule has been changed by modifying input slice")
	}
	r.RHS()[1] = T(bar)
	if r.At(1) != N(nt) {
		t.Errorf("rule has been changed by modifying RHS()")
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cfg")
	defer teardown()
	//
	var tests = []struct {
		name string
		rule *Rule
		want error
	}{
		{"ok", NewRule(0, nt, T(foo), N(nt)), nil},
		{"empty", NewRule(0, nt), ErrEmptyRHS},
		{"lhs", NewRule(0, 7, T(foo)), ErrUndeclaredSymbol},
		{"rhs", NewRule(0, nt, T(foo), N(7)), ErrUndeclaredSymbol},
		{"kind", NewRule(0, nt, Symbol{ID: 1}), ErrInvalidSymbol},
		{"negative", NewRule(0, nt, T(-1)), nil},
	}
	for _, test := range tests {
		err := Validate([]*Rule{test.rule}, []int{nt, nt2})
		if test.want == nil {
			if err != nil {
				t.Errorf("%s: expected rule to be valid, have %v", test.name, err)
			}
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("%s: expected error %v, have %v", test.name, test.want, err)
		}
		var gerr *GrammarError
		if !errors.As(err, &gerr) || gerr.Rule != test.rule {
			t.Errorf("%s: expected grammar error for rule, have %v", test.name, err)
		}
	}
}

func TestDuplicateIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cfg")
	defer teardown()
	//
	r0, r1 := NewRule(3, nt, T(foo)), NewRule(3, nt, T(bar))
	err := Validate([]*Rule{r0, r1}, []int{nt})
	var gerr *GrammarError
	if !errors.Is(err, ErrDuplicateIndex) || !errors.As(err, &gerr) || gerr.Rule != r1 {
		t.Errorf("expected duplicate rule index to be rejected for 2nd rule, have %v", err)
	}
	if err = Validate([]*Rule{NewRule(-1, -2, T(-3), N(-2))}, []int{-2}); err != nil {
		t.Errorf("expected negative IDs to be valid, have %v", err)
	}
}

func TestRootsMustBeDeclared(t *testing.T) {
	_, err := NewGrammar([]*Rule{NewRule(0, nt, T(foo))}, []int{nt}, []int{nt2})
	if !errors.Is(err, ErrUndeclaredSymbol) {
		t.Errorf("expected undeclared root to be rejected, have %v", err)
	}
}

func TestNormalizeIDs(t *testing.T) {
	ids := NormalizeIDs([]int{3, 1, 3, 2, 1})
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Errorf("expected [1 2 3], have %v", ids)
	}
}

func TestVocabulary(t *testing.T) {
	v := NewVocabulary()
	s1, found := v.ResolveOrDefine("Expr", NonTerminal)
	if found || s1 != N(1) {
		t.Errorf("expected new symbol <1>, have %v (found=%v)", s1, found)
	}
	s2, _ := v.ResolveOrDefine("Expr", Terminal)
	if s2 != T(1) {
		t.Errorf("expected terminal and non-terminal IDs to be independent, have %v", s2)
	}
	if again, found := v.ResolveOrDefine("Expr", NonTerminal); !found || again != s1 {
		t.Errorf("expected to resolve Expr to %v, have %v", s1, again)
	}
	v.ResolveOrDefine("Term", NonTerminal)
	if v.Size(NonTerminal) != 2 || v.Size(Terminal) != 1 {
		t.Errorf("unexpected vocabulary sizes")
	}
	if v.Name(N(2)) != "Term" || v.Name(N(9)) != "<9>" {
		t.Errorf("unexpected names %q, %q", v.Name(N(2)), v.Name(N(9)))
	}
	syms := v.Symbols(NonTerminal)
	if len(syms) != 2 || syms[0] != N(1) {
		t.Errorf("expected non-terminals ordered by ID, have %v", syms)
	}
	r := NewRule(0, 1, N(2), T(1))
	if s := v.RuleString(r); s != "Expr ➞ Term Expr" {
		t.Errorf("unexpected rule string %q", s)
	}
}
