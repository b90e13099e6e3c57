package cyk

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/chartparse"
	"github.com/npillmayer/chartparse/cfg"
	"github.com/npillmayer/schuko/tracing"
)

// parser holds the state of a single parse run. It is created by Parse or
// ParseSymbols and discarded afterwards.
type parser[T any] struct {
	input       []cfg.Symbol
	index       *ruleIndex
	chart       *chart[T]
	populate    PopulateFunc[T]
	postprocess PostprocessFunc[T]
	anchor      AnchorFunc[T]
	trace       tracing.Trace // no-op unless verbose
}

type stats struct {
	states      int // agenda states processed
	matches     int // complete right hand side partitions found
	populations int // population hook calls
}

func (st *stats) add(other stats) {
	st.states += other.states
	st.matches += other.matches
	st.populations += other.populations
}

// cellResult carries the final derivations of a cell, before it is
// committed to the chart.
type cellResult[T any] struct {
	nt          int
	derivations []T
}

// match is an agenda entry: a partially matched right hand side. Symbols are
// matched from right to left, so a match covers input positions (from…end) of
// the span under construction. The trie node identifies the matched suffix of
// right hand sides.
type match struct {
	node *trieNode
	from int
	subs *binding
}

// binding is a non-terminal of a right hand side, bound to a sub-span.
// Bindings form a list in left to right order of the right hand side.
type binding struct {
	nt   int
	span chartparse.Span
	next *binding
}

// fillSpan finds all derivations for span (b…e) and returns the final
// cell contents for every non-terminal with at least one derivation, in
// ascending order of non-terminal IDs.
//
// fillSpan reads only chart cells of spans shorter than (b…e) and does not
// write to the chart. It may therefore run concurrently for all spans of equal
// length, given every call uses its own stats.
func (p *parser[T]) fillSpan(b, e int, st *stats) ([]cellResult[T], error) {
	acc := make([][]T, len(p.chart.nts))
	if e-b == 1 && !p.input[b].IsTerminal() { // anchor
		nt := p.input[b].ID
		p.trace.Debugf("anchor <%d> at %d", nt, b)
		var witness T
		if p.anchor != nil {
			witness = p.anchor(b, nt)
		}
		ntx := p.chart.ntIdx[nt]
		acc[ntx] = append(acc[ntx], witness)
	}
	agenda := arraystack.New()
	agenda.Push(match{node: p.index.root, from: e})
	for !agenda.Empty() {
		top, _ := agenda.Pop()
		m := top.(match)
		st.states++
		if m.from == b {
			if len(m.node.rules) > 0 {
				if err := p.complete(b, e, m, acc, st); err != nil {
					return nil, err
				}
			}
			continue
		}
		p.expand(b, e, m, agenda)
	}
	var results []cellResult[T]
	for ntx, ds := range acc {
		if len(ds) == 0 {
			continue
		}
		if p.postprocess != nil {
			var err error
			if ds, err = p.postprocess(ds); err != nil {
				return nil, fmt.Errorf("postprocessing hook failed for <%d> over %v: %w",
					p.chart.nts[ntx], chartparse.MakeSpan(b, e), err)
			}
		}
		if len(ds) > 0 {
			results = append(results, cellResult[T]{nt: p.chart.nts[ntx], derivations: ds})
		}
	}
	return results, nil
}

// expand pushes every continuation of m onto the agenda. The agenda is a stack,
// thus continuations are pushed in reverse order of exploration: non-terminals
// by descending ID and descending sub-span start, then the terminal.
func (p *parser[T]) expand(b, e int, m match, agenda *arraystack.Stack) {
	node, r := m.node, m.from
	if node.isLeaf() || r-b < node.need {
		return
	}
	it := node.nonterms.Iterator()
	for it.End(); it.Prev(); {
		nt := it.Key().(int)
		ch := it.Value().(*trieNode)
		for s := r - 1; s >= b; s-- {
			if s-b < ch.need {
				break // every smaller s leaves even less room
			}
			if s == b && r == e {
				continue // a span is never derived from itself
			}
			if p.chart.has(s, r, nt) {
				agenda.Push(match{
					node: ch,
					from: s,
					subs: &binding{nt: nt, span: chartparse.MakeSpan(s, r), next: m.subs},
				})
			}
		}
	}
	if sym := p.input[r-1]; sym.IsTerminal() {
		if ch := node.terminal(sym.ID); ch != nil && r-1-b >= ch.need {
			agenda.Push(match{node: ch, from: r - 1, subs: m.subs})
		}
	}
}

// complete is called for a match covering the whole span (b…e). It calls the
// population hook for every rule completed at the match's trie node and every
// combination of sub-derivations, appending the results to the accumulator.
func (p *parser[T]) complete(b, e int, m match, acc [][]T, st *stats) error {
	st.matches++
	var cells [][]T
	for bnd := m.subs; bnd != nil; bnd = bnd.next {
		cells = append(cells, p.chart.get(bnd.span.From(), bnd.span.To(), bnd.nt))
	}
	for _, rule := range m.node.rules {
		ntx := p.chart.ntIdx[rule.LHS()]
		p.trace.Debugf("%v ⇐ %s", chartparse.MakeSpan(b, e), rule)
		err := eachCombination(cells, func(subs []T) error {
			st.populations++
			ds, err := p.populate(b, e, rule, subs)
			if err != nil {
				return fmt.Errorf("population hook failed for rule %d over %v: %w",
					rule.Index(), chartparse.MakeSpan(b, e), err)
			}
			acc[ntx] = append(acc[ntx], ds...)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// eachCombination calls f for every element of the Cartesian product of cells,
// in lexicographic order: the first cell varies slowest. f receives a fresh
// slice for every combination. With no cells, f is called once with an empty slice.
func eachCombination[T any](cells [][]T, f func([]T) error) error {
	for _, c := range cells {
		if len(c) == 0 {
			return nil
		}
	}
	odometer := make([]int, len(cells))
	for {
		subs := make([]T, len(cells))
		for i, c := range cells {
			subs[i] = c[odometer[i]]
		}
		if err := f(subs); err != nil {
			return err
		}
		i := len(cells) - 1
		for ; i >= 0; i-- {
			odometer[i]++
			if odometer[i] < len(cells[i]) {
				break
			}
			odometer[i] = 0
		}
		if i < 0 {
			return nil
		}
	}
}
