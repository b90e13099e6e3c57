/*
Package cfgtext reads grammars and input sentences from text.

Grammar Format

A grammar is given one rule per line. Alternatives are separated by '|' and may
continue on following lines:

    # a small grammar for noun phrases
    %root NP
    NP  -> Det N | NP PP
        |  N "of" NP
    PP  -> in NP
    Det -> the | a
    N   -> house | garden

Every identifier occuring on the left hand side of a rule is a non-terminal.
All other identifiers, as well as double-quoted strings, are terminals.
Directive '%root' declares root non-terminals; without it, the left hand side
of the first rule is the only root. Directive '%nonterminal' declares
non-terminals which do not have rules of their own (they may appear as anchors).
Comments start with '#' and extend to the end of the line.

Sentences

A sentence is a sequence of whitespace-separated words. Words are mapped to
terminal IDs of a grammar's vocabulary; words unknown to the vocabulary get
terminal ID 0, which never occurs in a rule. A non-terminal enclosed in angle
brackets, e.g. '<NP>', is an anchor.

Scanning is done by a lexmachine DFA.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfgtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.cfgtext'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.cfgtext")
}
