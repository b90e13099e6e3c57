/*
Package derivation provides ready-made derivation representations for the
chart parser of package cyk, together with hooks to create and prune them.

Two representations are provided:

■ Trace: a flat list of anchored rule applications (span and rule index),
in pre-order. Traces are compact and easy to compare in tests.

■ Tree: a derivation tree of rule applications and anchors, suitable for
walking and printing.

Pruning

Postprocessing hooks bound ambiguity per chart cell. Dedup removes structurally
equal derivations, TopK keeps the first k derivations of a cell. Hooks may be
combined with Chain.

    trees, err := cyk.Parse(tokens, rules, nts, roots, derivation.PopulateTree,
        derivation.Chain(derivation.Dedup[*derivation.Tree], derivation.TopK[*derivation.Tree](10)))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derivation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.derivation'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.derivation")
}
