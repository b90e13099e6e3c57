/*
Package chartparse is a chart parsing toolbox for context-free grammars.

Chartparse enumerates every derivation of an input sequence, for grammars whose
rules may have right-hand sides of arbitrary length, mixing terminals and
non-terminals freely. It does not compute a single "best" parse: the
representation of derivations is entirely up to the client, who plugs in hooks
to build and prune them. Package structure is as follows:

■ cfg: Package cfg defines symbols, rules and grammars, together with structural
validation and a builder for rule sets.

■ cyk: Package cyk implements a generalized CYK chart parser, operating on rule
sets from package cfg.

■ derivation: Package derivation provides ready-made derivation representations
(application traces and derivation trees) and hooks to create and prune them.

■ cfgtext: Package cfgtext reads grammars and input sentences from text.

Command cykp (cmd/cykp) is a command line tool and REPL for experiments with
grammars in text form.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chartparse
