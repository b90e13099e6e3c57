package derivation

import (
	"fmt"

	"github.com/npillmayer/chartparse"
	"github.com/npillmayer/chartparse/cfg"
)

// Tree is a derivation tree node. There are three kinds of nodes:
//
// ▪︎ rule nodes: Rule is set, Symbol is the rule's left hand side and Children
// hold one node per right hand side symbol;
//
// ▪︎ anchor nodes: a non-terminal taken over from the input; Rule is nil;
//
// ▪︎ terminal leaves: Symbol is a terminal; Rule is nil.
//
// Trees share sub-trees: a sub-derivation occurring in more than one derivation is
// represented by a single node. Trees must therefore be treated as immutable.
type Tree struct {
	Symbol   cfg.Symbol
	Rule     *cfg.Rule
	Span     chartparse.Span
	Children []*Tree
}

// PopulateTree is a population hook creating derivation trees. Terminal
// leaves are inserted for the terminals of the rule's right hand side.
func PopulateTree(begin, end int, rule *cfg.Rule, subs []*Tree) ([]*Tree, error) {
	node := &Tree{
		Symbol:   cfg.N(rule.LHS()),
		Rule:     rule,
		Span:     chartparse.MakeSpan(begin, end),
		Children: make([]*Tree, rule.Len()),
	}
	cover, k := chartparse.MakeSpan(begin, begin), 0
	for i := 0; i < rule.Len(); i++ {
		sym := rule.At(i)
		if sym.IsTerminal() {
			pos := cover.To()
			node.Children[i] = &Tree{Symbol: sym, Span: chartparse.MakeSpan(pos, pos+1)}
		} else {
			if k >= len(subs) || subs[k] == nil {
				return nil, fmt.Errorf("rule %d: missing sub-derivation for %v", rule.Index(), sym)
			}
			if subs[k].Span.From() != cover.To() {
				return nil, fmt.Errorf("rule %d: sub-derivation %v is not adjacent to %v",
					rule.Index(), subs[k].Span, cover)
			}
			node.Children[i] = subs[k]
			k++
		}
		cover = cover.Extend(node.Children[i].Span)
	}
	if cover != node.Span || k != len(subs) {
		return nil, fmt.Errorf("rule %d: sub-derivations do not partition %v", rule.Index(), node.Span)
	}
	return []*Tree{node}, nil
}

// AnchorTree is an anchor hook for derivation trees.
func AnchorTree(pos int, nt int) *Tree {
	return &Tree{Symbol: cfg.N(nt), Span: chartparse.MakeSpan(pos, pos+1)}
}

// IsAnchor is a predicate: is this node a non-terminal from the input?
func (t *Tree) IsAnchor() bool {
	return t.Rule == nil && !t.Symbol.IsTerminal()
}

// IsLeaf is a predicate: has this node no children?
func (t *Tree) IsLeaf() bool {
	return len(t.Children) == 0
}

// Walk traverses a tree top-down, left to right. f is called for every node,
// together with its depth. If f returns false, the children of the node are skipped.
func (t *Tree) Walk(f func(node *Tree, level int) bool) {
	t.walk(f, 0)
}

func (t *Tree) walk(f func(*Tree, int) bool, level int) {
	if t == nil || !f(t, level) {
		return
	}
	for _, ch := range t.Children {
		ch.walk(f, level+1)
	}
}

// Trace returns the rule applications of a tree, in pre-order.
func (t *Tree) Trace() Trace {
	var tr Trace
	t.Walk(func(node *Tree, level int) bool {
		if node.Rule != nil {
			tr = append(tr, Application{Begin: node.Span.From(), End: node.Span.To(), Rule: node.Rule.Index()})
		}
		return true
	})
	return tr
}

// Signature is a structural representation of a tree, used for hashing.
type Signature struct {
	Symbol   cfg.Symbol
	Rule     int // -1 for leaves and anchors
	From, To int
	Children []Signature
}

// Signature returns the structural signature of a tree.
func (t *Tree) Signature() any {
	return t.signature()
}

func (t *Tree) signature() Signature {
	sig := Signature{Symbol: t.Symbol, Rule: -1, From: t.Span.From(), To: t.Span.To()}
	if t.Rule != nil {
		sig.Rule = t.Rule.Index()
	}
	for _, ch := range t.Children {
		sig.Children = append(sig.Children, ch.signature())
	}
	return sig
}

// String prints a tree as an s-expression, using a vocabulary for symbol names.
// v may be nil.
func (t *Tree) String() string {
	return t.Format(nil)
}

// Format prints a tree as an s-expression, using a vocabulary for symbol names.
// v may be nil.
func (t *Tree) Format(v *cfg.Vocabulary) string {
	name := t.Symbol.String()
	if v != nil {
		name = v.Name(t.Symbol)
	}
	if t.IsLeaf() {
		return name
	}
	s := "(" + name
	for _, ch := range t.Children {
		s += " " + ch.Format(v)
	}
	return s + ")"
}
