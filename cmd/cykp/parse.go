package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showTrace bool

var parseCmd = &cobra.Command{
	Use:   "parse [words...]",
	Short: "Parse a sentence and print all of its derivations",
	Long: `Parse a sentence and print all of its derivations.
Words unknown to the grammar will not derive. A non-terminal enclosed in
angle brackets, e.g. <NP>, stands for an already derived phrase.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&showTrace, "trace-only", "t", false, "Print rule applications instead of trees")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	sentence := strings.Join(args, " ")
	trees, err := parseSentence(g, sentence)
	if err != nil {
		return err
	}
	if len(trees) == 0 {
		return fmt.Errorf("no derivation for %q", sentence)
	}
	printTrees(trees, g.Vocabulary, showTrace)
	return nil
}
