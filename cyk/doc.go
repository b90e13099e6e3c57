/*
Package cyk implements a generalized CYK chart parser.

Classic CYK parsing requires grammars in Chomsky normal form. The parser of this
package accepts rules of any arity, mixing terminals and non-terminals freely,
and enumerates every derivation of an input sequence exhaustively.

Derivations

The parser never interprets derivations. Clients supply a population hook, which
is called for every rule application found, and a postprocessing hook, which is
called once per chart cell to filter, de-duplicate or re-order the derivations
of the cell. Both are generic over the derivation type T:

    populate := func(begin, end int, rule *cfg.Rule, subs []Tree) ([]Tree, error) {
        return []Tree{ makeTree(rule, subs) }, nil
    }
    trees, err := cyk.Parse(tokens, rules, nonterminals, roots, populate, nil)

A nil postprocessing hook leaves cells unchanged. Package derivation provides
ready-made representations and hooks.

Anchors

ParseSymbols accepts input sequences where some positions already are
non-terminals. Such an anchor occupies exactly one input position and is treated
as if a rule had derived it; its derivation object is created by an anchor hook.

Chart Filling

Spans are filled in order of increasing length. Rules are matched from their last
right hand side symbol towards their first, guided by a trie over reversed right
hand sides. Enumeration order is deterministic: for a span, matches are found by
depth-first traversal of the trie, where a terminal continuation is explored
before non-terminal continuations, non-terminals are explored in ascending ID
order, and for each non-terminal its candidate sub-spans are tried in ascending
order of their start position.

Diagnostics

Option Verbose(true) traces chart activity with tracing key 'chartparse.cyk'.
If configuration flag 'cyk-dump-chart' is set, the chart occupancy is dumped
after every parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.cyk")
}
