package cfg

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Errors reported by grammar validation. They are wrapped in a GrammarError.
var (
	ErrEmptyRHS         = errors.New("rule has an empty right hand side")
	ErrUndeclaredSymbol = errors.New("undeclared non-terminal")
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrDuplicateIndex   = errors.New("duplicate rule index")
)

// GrammarError is returned for structurally malformed rule sets.
type GrammarError struct {
	Rule   *Rule  // offending rule, may be nil
	Symbol Symbol // offending symbol, if any
	Err    error  // one of the sentinel errors of this package
}

func (e *GrammarError) Error() string {
	if e.Rule == nil {
		return fmt.Sprintf("grammar error: %v %v", e.Err, e.Symbol)
	}
	if e.Symbol.Kind == 0 {
		return fmt.Sprintf("grammar error in rule %d: %v", e.Rule.Index(), e.Err)
	}
	return fmt.Sprintf("grammar error in rule %d: %v %v", e.Rule.Index(), e.Err, e.Symbol)
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}

// Validate checks a rule set for structural errors:
//
// ▪︎ every right hand side is non-empty,
//
// ▪︎ every left hand side and every right hand side non-terminal is contained in nonterminals,
//
// ▪︎ every symbol has a valid kind,
//
// ▪︎ no two rules share an index.
//
// IDs are opaque, negative values included. Terminals are declared implicitly.
// Validate returns the first error found.
func Validate(rules []*Rule, nonterminals []int) error {
	declared := make(map[int]struct{}, len(nonterminals))
	for _, nt := range nonterminals {
		declared[nt] = struct{}{}
	}
	indices := make(map[int]struct{}, len(rules))
	for _, r := range rules {
		if r == nil {
			return &GrammarError{Err: fmt.Errorf("%w: nil rule", ErrInvalidSymbol)}
		}
		if _, dup := indices[r.index]; dup {
			return &GrammarError{Rule: r, Err: ErrDuplicateIndex}
		}
		indices[r.index] = struct{}{}
		if _, ok := declared[r.LHS()]; !ok {
			return &GrammarError{Rule: r, Symbol: N(r.LHS()), Err: ErrUndeclaredSymbol}
		}
		if len(r.rhs) == 0 {
			return &GrammarError{Rule: r, Err: ErrEmptyRHS}
		}
		for _, sym := range r.rhs {
			if !sym.Kind.IsValid() {
				return &GrammarError{Rule: r, Symbol: sym, Err: ErrInvalidSymbol}
			}
			if sym.Kind == NonTerminal {
				if _, ok := declared[sym.ID]; !ok {
					return &GrammarError{Rule: r, Symbol: sym, Err: ErrUndeclaredSymbol}
				}
			}
		}
		if len(r.rhs) == 1 && r.rhs[0].Kind == NonTerminal {
			// a chain rule would derive a span from the very same span
			tracer().Infof("rule %s is a chain rule and will never apply", r)
		}
	}
	return nil
}

// --- Grammar ---------------------------------------------------------------

// Grammar bundles a rule set with its declared non-terminals and the subset of
// root non-terminals. A Grammar is validated on construction and immutable
// afterwards.
type Grammar struct {
	rules        []*Rule
	nonterminals []int
	roots        []int
	byLHS        map[int][]*Rule
}

// NewGrammar creates a validated grammar. Non-terminal sets are normalized to
// sorted sets of unique IDs. roots must be a subset of nonterminals.
func NewGrammar(rules []*Rule, nonterminals, roots []int) (*Grammar, error) {
	g := &Grammar{
		rules:        slices.Clone(rules),
		nonterminals: NormalizeIDs(nonterminals),
		roots:        NormalizeIDs(roots),
		byLHS:        make(map[int][]*Rule),
	}
	if err := Validate(g.rules, g.nonterminals); err != nil {
		return nil, err
	}
	for _, root := range g.roots {
		if _, found := slices.BinarySearch(g.nonterminals, root); !found {
			return nil, &GrammarError{Symbol: N(root), Err: ErrUndeclaredSymbol}
		}
	}
	for _, r := range g.rules {
		g.byLHS[r.LHS()] = append(g.byLHS[r.LHS()], r)
	}
	return g, nil
}

// Rules returns the rules of g.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Rule returns the rule with index i, or nil.
func (g *Grammar) Rule(i int) *Rule {
	for _, r := range g.rules {
		if r.Index() == i {
			return r
		}
	}
	return nil
}

// NonTerminals returns the sorted IDs of all declared non-terminals.
func (g *Grammar) NonTerminals() []int {
	return g.nonterminals
}

// Roots returns the sorted IDs of root non-terminals.
func (g *Grammar) Roots() []int {
	return g.roots
}

// RulesFor returns all rules with left hand side lhs, in rule order.
func (g *Grammar) RulesFor(lhs int) []*Rule {
	return g.byLHS[lhs]
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar ---------------------------------------")
	for _, r := range g.rules {
		tracer().Debugf("%s", r)
	}
	tracer().Debugf("roots = %v", g.roots)
	tracer().Debugf("---------------------------------------------------")
}

// NormalizeIDs returns the IDs as a sorted set without duplicates.
// The argument is not modified.
func NormalizeIDs(ids []int) []int {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[int]struct{}) []int {
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}
