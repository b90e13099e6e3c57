package cfgtext

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types.
const (
	tokEOF = iota
	tokNewline
	tokArrow
	tokBar
	tokDirective
	tokAnchor
	tokString
	tokWord
)

var tokenNames = map[int]string{
	tokEOF:       "end of input",
	tokNewline:   "end of line",
	tokArrow:     "'->'",
	tokBar:       "'|'",
	tokDirective: "directive",
	tokAnchor:    "anchor",
	tokString:    "string",
	tokWord:      "word",
}

// token is a lexeme together with its type and position.
type token struct {
	typ    int
	lexeme string
	line   int
	col    int
}

func (t token) String() string {
	return fmt.Sprintf("%s %q", tokenNames[t.typ], t.lexeme)
}

var (
	lexer     *lexmachine.Lexer
	lexerErr  error
	lexerOnce sync.Once
)

// getLexer compiles the DFA for grammars and sentences on first use.
func getLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`#[^\n]*`), skip)
		lx.Add([]byte(`( |\t|\r)+`), skip)
		lx.Add([]byte(`\n`), makeToken(tokNewline))
		lx.Add([]byte(`->|::=|➞`), makeToken(tokArrow))
		lx.Add([]byte(`\|`), makeToken(tokBar))
		lx.Add([]byte(`%[a-z]+`), makeToken(tokDirective))
		lx.Add([]byte(`<[^<> \t\r\n]+>`), makeToken(tokAnchor))
		lx.Add([]byte(`"[^"\n]*"`), makeToken(tokString))
		lx.Add([]byte(`[^ \t\r\n|"<>#%]+`), makeToken(tokWord))
		if err := lx.Compile(); err != nil {
			tracer().Errorf("Error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a token.
func makeToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

// tokenize splits an input text into tokens. The last token is always of type tokEOF.
func tokenize(input string) ([]token, error) {
	lx, err := getLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("%w: line %d, column %d: unexpected input",
					ErrSyntax, ui.FailLine, ui.FailColumn)
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		tokens = append(tokens, token{
			typ:    t.Type,
			lexeme: t.Value.(string),
			line:   t.StartLine,
			col:    t.StartColumn,
		})
	}
	line := 1
	if len(tokens) > 0 {
		line = tokens[len(tokens)-1].line
	}
	return append(tokens, token{typ: tokEOF, line: line}), nil
}
