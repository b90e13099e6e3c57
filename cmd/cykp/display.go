package main

import (
	"fmt"

	"github.com/npillmayer/chartparse/cfg"
	"github.com/npillmayer/chartparse/derivation"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// printTrees renders derivation trees on the terminal, either as trees or as
// sequences of rule applications.
func printTrees(trees []*derivation.Tree, v *cfg.Vocabulary, applications bool) {
	pterm.Info.Println(fmt.Sprintf("%d derivation(s)", len(trees)))
	for i, t := range trees {
		if applications {
			pterm.Println(fmt.Sprintf("#%d %v", i+1, t.Trace()))
			continue
		}
		pterm.Println(fmt.Sprintf("#%d %s", i+1, t.Format(v)))
		pterm.DefaultTree.WithRoot(treeNodeFrom(t, v)).Render()
	}
}

func treeNodeFrom(t *derivation.Tree, v *cfg.Vocabulary) pterm.TreeNode {
	ll := leveledTree(t, v)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledTree(t *derivation.Tree, v *cfg.Vocabulary) pterm.LeveledList {
	var ll pterm.LeveledList
	t.Walk(func(node *derivation.Tree, level int) bool {
		text := v.Name(node.Symbol)
		switch {
		case node.IsAnchor():
			text = fmt.Sprintf("<%s> %v", text, node.Span)
		case !node.IsLeaf():
			text = fmt.Sprintf("%s %v", text, node.Span)
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
		return true
	})
	return ll
}
