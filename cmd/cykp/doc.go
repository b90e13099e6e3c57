/*
Command cykp parses sentences with a context-free grammar read from a text file
and prints all derivations as trees.

    cykp check -g nouns.cfg
    cykp parse -g nouns.cfg the house in a garden
    cykp repl  -g nouns.cfg

Without a grammar file, a small built-in grammar for noun phrases is used.
Please refer to package cfgtext for the grammar format.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.cykp'
func tracer() tracing.Trace {
	return tracing.Select("chartparse.cykp")
}
