package cfg

import "fmt"

// Kind is the kind of a grammar symbol.
type Kind int8

// Symbols are either terminals or non-terminals.
const (
	Terminal Kind = iota + 1
	NonTerminal
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "T"
	case NonTerminal:
		return "N"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// IsValid is a predicate for the two known kinds.
func (k Kind) IsValid() bool {
	return k == Terminal || k == NonTerminal
}

// Symbol is a grammar symbol. Identifiers are scoped per kind, i.e. a terminal
// and a non-terminal may share the same ID.
//
// Symbols are values and may be compared with == and used as map keys.
type Symbol struct {
	ID   int
	Kind Kind
}

// T creates a terminal symbol.
func T(id int) Symbol {
	return Symbol{ID: id, Kind: Terminal}
}

// N creates a non-terminal symbol.
func N(id int) Symbol {
	return Symbol{ID: id, Kind: NonTerminal}
}

// IsTerminal returns true if this symbol represents a terminal.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

func (s Symbol) String() string {
	if s.Kind == NonTerminal {
		return fmt.Sprintf("<%d>", s.ID)
	}
	return fmt.Sprintf("'%d'", s.ID)
}
