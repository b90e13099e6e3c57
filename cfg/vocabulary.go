package cfg

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Vocabulary maps symbol names to symbol IDs, separately for terminals and
// non-terminals. IDs are assigned in order of definition, starting at 1.
//
// Grammars in this module work on integer IDs only. A vocabulary is a
// convenience for clients which read grammars from text or want to print
// symbols by name.
type Vocabulary struct {
	names map[Symbol]string
	ids   [2]map[string]int // per kind
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		names: make(map[Symbol]string),
		ids:   [2]map[string]int{make(map[string]int), make(map[string]int)},
	}
}

func slot(k Kind) int {
	if k == NonTerminal {
		return 1
	}
	return 0
}

// Resolve finds a symbol by name and kind.
func (v *Vocabulary) Resolve(name string, k Kind) (Symbol, bool) {
	id, ok := v.ids[slot(k)][name]
	return Symbol{ID: id, Kind: k}, ok
}

// ResolveOrDefine finds a symbol by name and kind, defining it if not present.
// Returns the symbol and a flag, signalling wether the symbol
// has already been present.
func (v *Vocabulary) ResolveOrDefine(name string, k Kind) (Symbol, bool) {
	if sym, ok := v.Resolve(name, k); ok {
		return sym, true
	}
	sym := Symbol{ID: len(v.ids[slot(k)]) + 1, Kind: k}
	v.ids[slot(k)][name] = sym.ID
	v.names[sym] = name
	return sym, false
}

// Name returns the name of a symbol. Symbols without a name are printed by ID.
func (v *Vocabulary) Name(sym Symbol) string {
	if name, ok := v.names[sym]; ok {
		return name
	}
	return sym.String()
}

// Size counts the symbols of a kind.
func (v *Vocabulary) Size(k Kind) int {
	return len(v.ids[slot(k)])
}

// Symbols returns all symbols of a kind, ordered by ID.
func (v *Vocabulary) Symbols(k Kind) []Symbol {
	ids := maps.Values(v.ids[slot(k)])
	slices.Sort(ids)
	syms := make([]Symbol, len(ids))
	for i, id := range ids {
		syms[i] = Symbol{ID: id, Kind: k}
	}
	return syms
}

// RuleString prints a rule using symbol names.
func (v *Vocabulary) RuleString(r *Rule) string {
	s := fmt.Sprintf("%s ➞", v.Name(N(r.LHS())))
	for _, sym := range r.rhs {
		s += " " + v.Name(sym)
	}
	return s
}
