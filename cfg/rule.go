package cfg

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/slices"
)

// Rule is a type for rules of a grammar. Rules are immutable after construction.
type Rule struct {
	index int
	lhs   int      // ID of the non-terminal on the left hand side
	rhs   []Symbol // right hand side
}

// NewRule creates a rule. The right hand side is copied.
func NewRule(index int, lhs int, rhs ...Symbol) *Rule {
	return &Rule{
		index: index,
		lhs:   lhs,
		rhs:   slices.Clone(rhs),
	}
}

// Index is a unique serial number for a rule. It is meant for bookkeeping by
// clients and plays no role for parsing.
func (r *Rule) Index() int {
	return r.index
}

// LHS returns the ID of the non-terminal on the left hand side.
func (r *Rule) LHS() int {
	return r.lhs
}

// RHS gets the right hand side of a rule as a shallow copy. Clients may modify it.
func (r *Rule) RHS() []Symbol {
	return slices.Clone(r.rhs)
}

// Len returns the number of symbols of the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// At returns the i-th symbol of the right hand side.
func (r *Rule) At(i int) Symbol {
	return r.rhs[i]
}

// NonTerminalCount counts the non-terminals in the right hand side.
func (r *Rule) NonTerminalCount() int {
	cnt := 0
	for _, sym := range r.rhs {
		if sym.Kind == NonTerminal {
			cnt++
		}
	}
	return cnt
}

func (r *Rule) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%d: <%d> ::= [", r.index, r.lhs)
	for i, sym := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.String())
	}
	b.WriteString("]")
	return b.String()
}

// --- Rule Builder ----------------------------------------------------------

// Builder is a builder type for rule sets.
// Rules get sequential indices, starting at 0.
//
//    b := NewBuilder()
//    b.LHS(S).N(A).T(x).End()   // S → A x
//
type Builder struct {
	rules   []*Rule
	nonterm map[int]struct{}
	current *RuleBuilder
}

// RuleBuilder collects the right hand side of a single rule. It is
// created by Builder.LHS.
type RuleBuilder struct {
	b   *Builder
	lhs int
	rhs []Symbol
}

// NewBuilder creates an empty rule set builder.
func NewBuilder() *Builder {
	return &Builder{nonterm: make(map[int]struct{})}
}

// LHS starts a new rule with left hand side non-terminal lhs.
func (b *Builder) LHS(lhs int) *RuleBuilder {
	b.nonterm[lhs] = struct{}{}
	b.current = &RuleBuilder{b: b, lhs: lhs}
	return b.current
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(id int) *RuleBuilder {
	rb.b.nonterm[id] = struct{}{}
	rb.rhs = append(rb.rhs, N(id))
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(id int) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(id))
	return rb
}

// End finishes the rule and adds it to the rule set. The rule is returned.
func (rb *RuleBuilder) End() *Rule {
	r := NewRule(len(rb.b.rules), rb.lhs, rb.rhs...)
	rb.b.rules = append(rb.b.rules, r)
	rb.b.current = nil
	tracer().Debugf("rule %s", r)
	return r
}

// Rules returns the rules built so far.
func (b *Builder) Rules() []*Rule {
	return slices.Clone(b.rules)
}

// NonTerminals returns the sorted IDs of every non-terminal mentioned in a rule.
func (b *Builder) NonTerminals() []int {
	return sortedKeys(b.nonterm)
}

// Grammar creates a validated grammar from the rules built so far.
// If no roots are given, every non-terminal is a root.
func (b *Builder) Grammar(roots ...int) (*Grammar, error) {
	nts := b.NonTerminals()
	if len(roots) == 0 {
		roots = nts
	}
	return NewGrammar(b.rules, nts, roots)
}
