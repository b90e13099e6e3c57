package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/chartparse/cfgtext"
	"github.com/npillmayer/chartparse/cyk"
	"github.com/npillmayer/chartparse/derivation"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	grammarFile string
	traceLevel  string
	workers     int
	dumpChart   bool
	maxTrees    int
)

var rootCmd = &cobra.Command{
	Use:   "cykp",
	Short: "Parse sentences with a context-free grammar",
	Long: `cykp is a generalized CYK chart parser for context-free grammars with
rules of arbitrary length. It prints every derivation of a sentence.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&grammarFile, "grammar", "g", "", "Grammar file (default: built-in noun phrase grammar)")
	flags.StringVar(&traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.IntVarP(&workers, "workers", "w", 1, "Number of workers filling the chart")
	flags.BoolVar(&dumpChart, "dump-chart", false, "Dump chart occupancy (at trace level Debug)")
	flags.IntVarP(&maxTrees, "max", "k", 0, "Keep at most k derivations per chart cell (0 = all)")
}

// setup installs a Go logger for tracing and makes the command line flags
// available as global configuration.
func setup(cmd *cobra.Command, args []string) error {
	gconf.Initialize(testconfig.Conf{
		"cyk-parallel":   workers,
		"cyk-dump-chart": dumpChart,
	})
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
	tracer().Infof("Trace level is %s", traceLevel)
	return nil
}

// builtinGrammar is used if no grammar file is given.
const builtinGrammar = `
%root NP
NP  -> Det N | NP PP
    |  N of NP
PP  -> in NP | with NP
Det -> the | a
N   -> house | garden | tree | door
`

func loadGrammar() (*cfgtext.Grammar, error) {
	if grammarFile == "" {
		return cfgtext.ParseGrammar(builtinGrammar)
	}
	f, err := os.Open(grammarFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := cfgtext.ReadGrammar(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", grammarFile, err)
	}
	return g, nil
}

// parseSentence parses a sentence and returns its derivation trees.
// Structurally equal derivations are merged.
func parseSentence(g *cfgtext.Grammar, sentence string) ([]*derivation.Tree, error) {
	syms, err := cfgtext.ReadSentence(sentence, g.Vocabulary)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("input = %v", cfgtext.Words(syms, g.Vocabulary))
	postprocess := derivation.Chain(
		derivation.Dedup[*derivation.Tree],
		derivation.TopK[*derivation.Tree](maxTrees),
	)
	opts := []cyk.Option{
		cyk.Verbose(tracer().GetTraceLevel() == tracing.LevelDebug),
		cyk.Parallel(gconf.GetInt("cyk-parallel")),
	}
	return cyk.ParseGrammar(g.Grammar, syms, derivation.PopulateTree, postprocess,
		derivation.AnchorTree, opts...)
}
