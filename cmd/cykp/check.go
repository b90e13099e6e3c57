package main

import (
	"fmt"

	"github.com/npillmayer/chartparse/cfg"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a grammar and list its rules",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	g.Dump() // only visible at trace level Debug
	printRules(g.Vocabulary, g.Grammar)
	return nil
}

func printRules(v *cfg.Vocabulary, g *cfg.Grammar) {
	roots := make([]string, 0, len(g.Roots()))
	for _, r := range g.Roots() {
		roots = append(roots, v.Name(cfg.N(r)))
	}
	pterm.Info.Println(fmt.Sprintf("%d rules, %d non-terminals, %d terminals, roots %v",
		len(g.Rules()), len(g.NonTerminals()), v.Size(cfg.Terminal), roots))
	for _, r := range g.Rules() {
		pterm.Println(fmt.Sprintf("%3d: %s", r.Index(), v.RuleString(r)))
		if r.Len() == 1 && !r.At(0).IsTerminal() {
			pterm.Error.Println(fmt.Sprintf("rule %d is a chain rule and will never apply", r.Index()))
		}
	}
}
