/*
Package cfg defines the building blocks of context-free grammars: symbols,
rules and grammars.

Symbols are identified by integers. Terminal and non-terminal ids live in separate
id spaces: terminal 1 and non-terminal 1 are different symbols, distinguished by
their kind. Rules may have right-hand sides of any (non-zero) length.

Building a Rule Set

Rule sets are usually specified with a builder object:

    NT, NT2 := 1, 2                   // non-terminal ids
    FOO, BAR := 1, 2                  // terminal ids
    b := cfg.NewBuilder()
    b.LHS(NT).T(BAR).End()            // [0]: NT  → BAR
    b.LHS(NT).T(FOO).N(NT).End()      // [1]: NT  → FOO NT
    b.LHS(NT2).N(NT).T(BAR).End()     // [2]: NT2 → NT BAR
    g, err := b.Grammar(NT)           // NT is the only root non-terminal

Rules are immutable once created. Structural validation (see Validate) checks
that every non-terminal referenced by a rule is declared and that no right-hand
side is empty.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.cfg")
}
