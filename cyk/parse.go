package cyk

import (
	"errors"
	"fmt"

	"github.com/npillmayer/chartparse/cfg"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// PopulateFunc is a hook creating derivation objects for a rule application.
// It is called with the span (begin…end) the rule derives, the rule, and one
// derivation object for every non-terminal of the rule's right hand side, in
// right hand side order. Terminals do not contribute to subs.
//
// A population hook may return any number of derivations, including none.
// It should be a pure function of its arguments. The subs slice is owned by the
// hook; the derivations contained in it are owned by the chart and must not be modified.
type PopulateFunc[T any] func(begin, end int, rule *cfg.Rule, subs []T) ([]T, error)

// PostprocessFunc is a hook called once for every chart cell, after all
// derivations for the cell have been collected. It may filter, de-duplicate or
// re-order derivations, and its result becomes the final content of the cell.
type PostprocessFunc[T any] func(derivations []T) ([]T, error)

// AnchorFunc creates the derivation object for an anchor, i.e. a non-terminal
// nt occurring in the input at position pos.
type AnchorFunc[T any] func(pos int, nt int) T

// ErrInvalidInput is returned (wrapped) for input sequences or non-terminal
// sets which do not fit the grammar.
var ErrInvalidInput = errors.New("invalid parser input")

// Option configures a parse run.
type Option func(*options)

type options struct {
	verbose bool
	workers int
}

// Verbose switches on tracing of chart activity. It does not affect the result.
func Verbose(b bool) Option {
	return func(o *options) {
		o.verbose = b
	}
}

// Parallel sets the number of workers filling spans of equal length concurrently.
// With workers > 1, hooks must be safe for concurrent use. The result is
// identical to a sequential parse.
func Parallel(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// --- Entry points ----------------------------------------------------------

// Parse parses a sequence of terminal IDs.
//
// rules is the rule set, nonterminals the set of all non-terminal IDs used by the
// rules, and roots the subset of non-terminals accepted for a complete parse.
// Parse returns the derivations of the whole input for every root non-terminal,
// concatenated in ascending order of root IDs. If the input cannot be derived,
// the result is empty. Errors are returned for malformed grammars and whenever
// a hook returns an error.
//
// A nil postprocess hook leaves chart cells unchanged.
func Parse[T any](tokens []int, rules []*cfg.Rule, nonterminals, roots []int,
	populate PopulateFunc[T], postprocess PostprocessFunc[T], opts ...Option) ([]T, error) {
	//
	input := make([]cfg.Symbol, len(tokens))
	for i, t := range tokens {
		input[i] = cfg.T(t)
	}
	return run(input, rules, nonterminals, roots, populate, postprocess, nil, opts)
}

// ParseSymbols parses a sequence of symbols. Non-terminals in the input are
// anchors: a non-terminal N at position i is treated as if N had been
// derived for span (i…i+1). Its derivation object is created by the
// anchor hook; if anchor is nil, the zero value of T is used.
//
// Apart from anchors, ParseSymbols behaves like Parse.
func ParseSymbols[T any](symbols []cfg.Symbol, rules []*cfg.Rule, nonterminals, roots []int,
	populate PopulateFunc[T], postprocess PostprocessFunc[T], anchor AnchorFunc[T],
	opts ...Option) ([]T, error) {
	//
	return run(slices.Clone(symbols), rules, nonterminals, roots, populate, postprocess, anchor, opts)
}

// ParseGrammar parses a sequence of symbols with a pre-validated grammar.
func ParseGrammar[T any](g *cfg.Grammar, symbols []cfg.Symbol,
	populate PopulateFunc[T], postprocess PostprocessFunc[T], anchor AnchorFunc[T],
	opts ...Option) ([]T, error) {
	//
	return ParseSymbols(symbols, g.Rules(), g.NonTerminals(), g.Roots(), populate, postprocess, anchor, opts...)
}

func run[T any](input []cfg.Symbol, rules []*cfg.Rule, nonterminals, roots []int,
	populate PopulateFunc[T], postprocess PostprocessFunc[T], anchor AnchorFunc[T],
	opts []Option) ([]T, error) {
	//
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	nts := cfg.NormalizeIDs(nonterminals)
	if err := cfg.Validate(rules, nts); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	if populate == nil {
		return nil, fmt.Errorf("%w: population hook missing", ErrInvalidInput)
	}
	rootset := cfg.NormalizeIDs(roots)
	for _, root := range rootset {
		if _, found := slices.BinarySearch(nts, root); !found {
			return nil, fmt.Errorf("%w: root <%d> is not a declared non-terminal", ErrInvalidInput, root)
		}
	}
	if err := checkInput(input, nts); err != nil {
		return nil, err
	}
	p := &parser[T]{
		input:       input,
		index:       buildIndex(rules),
		chart:       newChart[T](len(input), nts),
		populate:    populate,
		postprocess: postprocess,
		anchor:      anchor,
		trace:       tracing.NoOpTrace(),
	}
	if o.verbose {
		p.trace = tracer()
		p.trace.Infof("parsing %d symbols with %d rules", len(input), len(rules))
		p.index.dump()
	}
	if err := p.fill(o.workers); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	if gconf.GetBool("cyk-dump-chart") {
		p.chart.dump()
	}
	var result []T
	n := len(input)
	for _, root := range rootset {
		result = append(result, p.chart.get(0, n, root)...)
	}
	p.trace.Infof("%d derivations for roots %v", len(result), rootset)
	return result, nil
}

// checkInput checks that every symbol has a valid kind and every anchor is a
// declared non-terminal.
func checkInput(input []cfg.Symbol, nts []int) error {
	for i, sym := range input {
		if !sym.Kind.IsValid() {
			return fmt.Errorf("%w: symbol %v at position %d", ErrInvalidInput, sym, i)
		}
		if !sym.IsTerminal() {
			if _, found := slices.BinarySearch(nts, sym.ID); !found {
				return fmt.Errorf("%w: anchor %v at position %d is not a declared non-terminal",
					ErrInvalidInput, sym, i)
			}
		}
	}
	return nil
}

// fill fills the chart, layer by layer, in order of increasing span length.
func (p *parser[T]) fill(workers int) error {
	n := len(p.input)
	var total stats
	for l := 1; l <= n; l++ {
		if workers > 1 && n-l > 0 {
			if err := p.fillLayerParallel(l, workers, &total); err != nil {
				return err
			}
		} else {
			for b := 0; b+l <= n; b++ {
				results, err := p.fillSpan(b, b+l, &total)
				if err != nil {
					return err
				}
				p.commit(b, b+l, results)
			}
		}
		p.chart.advance()
		p.trace.Debugf("span length %d done, %d cells filled", l, p.chart.filled)
	}
	p.trace.Infof("%d agenda states, %d matches, %d population calls",
		total.states, total.matches, total.populations)
	return nil
}

// fillLayerParallel fills all spans of length l concurrently. Results are
// buffered per span and committed in span order after all workers are done.
func (p *parser[T]) fillLayerParallel(l, workers int, total *stats) error {
	n := len(p.input)
	results := make([][]cellResult[T], n-l+1)
	counts := make([]stats, n-l+1)
	var g errgroup.Group
	g.SetLimit(workers)
	for b := 0; b+l <= n; b++ {
		b := b
		g.Go(func() error {
			var err error
			results[b], err = p.fillSpan(b, b+l, &counts[b])
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for b := range results {
		total.add(counts[b])
		p.commit(b, b+l, results[b])
	}
	return nil
}

func (p *parser[T]) commit(b, e int, results []cellResult[T]) {
	for _, res := range results {
		p.chart.put(b, e, res.nt, res.derivations)
	}
}
