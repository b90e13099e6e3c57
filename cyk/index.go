package cyk

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/chartparse/cfg"
)

// ruleIndex is a trie over the right hand sides of rules, read backwards:
// the root's children are keyed by the last symbol of right hand sides, their
// children by the second to last symbol, and so on. Rules sharing a common
// suffix share a path, thus the suffix is matched once for all of them.
type ruleIndex struct {
	root  *trieNode
	size  int // number of trie nodes
	rules int // number of indexed rules
}

type trieNode struct {
	depth    int               // number of symbols from the end of the RHS
	rules    []*cfg.Rule       // rules with RHS completed at this node, in input order
	terms    map[int]*trieNode // terminal ID → child
	nonterms *treemap.Map      // non-terminal ID → child, ordered by ID
	need     int               // minimum number of symbols still needed to complete a rule
}

func newTrieNode(depth int) *trieNode {
	return &trieNode{
		depth:    depth,
		terms:    make(map[int]*trieNode),
		nonterms: treemap.NewWithIntComparator(),
	}
}

// buildIndex creates a rule index for a (validated) rule set.
func buildIndex(rules []*cfg.Rule) *ruleIndex {
	ix := &ruleIndex{root: newTrieNode(0), size: 1}
	for _, r := range rules {
		ix.insert(r)
	}
	ix.root.computeNeed()
	return ix
}

func (ix *ruleIndex) insert(r *cfg.Rule) {
	node := ix.root
	for i := r.Len() - 1; i >= 0; i-- {
		node = ix.child(node, r.At(i))
	}
	node.rules = append(node.rules, r)
	ix.rules++
}

// child finds or creates the continuation of node for symbol sym.
func (ix *ruleIndex) child(node *trieNode, sym cfg.Symbol) *trieNode {
	if sym.IsTerminal() {
		ch, ok := node.terms[sym.ID]
		if !ok {
			ch = newTrieNode(node.depth + 1)
			node.terms[sym.ID] = ch
			ix.size++
		}
		return ch
	}
	if ch, ok := node.nonterms.Get(sym.ID); ok {
		return ch.(*trieNode)
	}
	ch := newTrieNode(node.depth + 1)
	node.nonterms.Put(sym.ID, ch)
	ix.size++
	return ch
}

// computeNeed calculates, bottom-up, how many more symbols have to be matched
// at least, starting from a node, to complete a rule. Every symbol covers at
// least one input position, therefore need is a lower bound for the number of
// input positions still to consume.
func (node *trieNode) computeNeed() int {
	const unreachable = int(^uint(0) >> 1)
	need := unreachable
	if len(node.rules) > 0 {
		need = 0
	}
	for _, ch := range node.terms {
		if n := ch.computeNeed() + 1; n < need {
			need = n
		}
	}
	for _, v := range node.nonterms.Values() {
		if n := v.(*trieNode).computeNeed() + 1; n < need {
			need = n
		}
	}
	node.need = need
	return need
}

// terminal returns the continuation for terminal t, or nil.
func (node *trieNode) terminal(t int) *trieNode {
	return node.terms[t]
}

// isLeaf is a predicate: no further symbols may be matched from this node.
func (node *trieNode) isLeaf() bool {
	return len(node.terms) == 0 && node.nonterms.Empty()
}

func (node *trieNode) String() string {
	return fmt.Sprintf("[trie %d: %d rules, %d+%d children, need %d]", node.depth,
		len(node.rules), len(node.terms), node.nonterms.Size(), node.need)
}

// dump is a debugging helper.
func (ix *ruleIndex) dump() {
	tracer().Debugf("--- rule index: %d rules, %d nodes ----------------", ix.rules, ix.size)
	ix.root.dump(nil)
	tracer().Debugf("---------------------------------------------------")
}

func (node *trieNode) dump(suffix []string) {
	for _, r := range node.rules {
		tracer().Debugf("  %-20s ⇐ rule %s", strings.Join(suffix, " "), r)
	}
	for t, ch := range node.terms {
		ch.dump(append([]string{cfg.T(t).String()}, suffix...))
	}
	it := node.nonterms.Iterator()
	for it.Next() {
		ch := it.Value().(*trieNode)
		ch.dump(append([]string{cfg.N(it.Key().(int)).String()}, suffix...))
	}
}
