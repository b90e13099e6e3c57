package cfgtext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/chartparse/cfg"
)

// ErrSyntax is wrapped by errors for malformed grammar or sentence text.
var ErrSyntax = errors.New("syntax error")

// Unknown is the terminal ID assigned to words not contained in a vocabulary.
const Unknown = 0

// Grammar is a grammar read from text, together with the names of its symbols.
type Grammar struct {
	*cfg.Grammar
	Vocabulary *cfg.Vocabulary
}

// alternative is the right hand side of a rule, still unresolved.
type alternative struct {
	line  int
	words []token
}

// production collects the alternatives of a left hand side in order of appearance.
type production struct {
	lhs  string
	alts []alternative
}

// ReadGrammar reads a grammar from r. See the package documentation for the format.
func ReadGrammar(r io.Reader) (*Grammar, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseGrammar(string(text))
}

// ParseGrammar reads a grammar from a string.
func ParseGrammar(text string) (*Grammar, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	prods, roots, decls, err := parseLines(tokens)
	if err != nil {
		return nil, err
	}
	if len(prods) == 0 {
		return nil, fmt.Errorf("%w: grammar has no rules", ErrSyntax)
	}
	voc := cfg.NewVocabulary()
	for _, p := range prods { // every left hand side is a non-terminal
		voc.ResolveOrDefine(p.lhs, cfg.NonTerminal)
	}
	for _, d := range decls {
		voc.ResolveOrDefine(d.lexeme, cfg.NonTerminal)
	}
	b := cfg.NewBuilder()
	for _, p := range prods {
		lhs, _ := voc.Resolve(p.lhs, cfg.NonTerminal)
		for _, alt := range p.alts {
			rb := b.LHS(lhs.ID)
			for _, w := range alt.words {
				if w.typ == tokWord {
					if nt, ok := voc.Resolve(w.lexeme, cfg.NonTerminal); ok {
						rb.N(nt.ID)
						continue
					}
				}
				t, _ := voc.ResolveOrDefine(unquote(w), cfg.Terminal)
				rb.T(t.ID)
			}
			r := rb.End()
			tracer().Debugf("line %d: %s", alt.line, voc.RuleString(r))
		}
	}
	rootIDs := make([]int, 0, len(roots))
	for _, name := range roots {
		nt, ok := voc.Resolve(name.lexeme, cfg.NonTerminal)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: root %q is not a non-terminal",
				ErrSyntax, name.line, name.lexeme)
		}
		rootIDs = append(rootIDs, nt.ID)
	}
	if len(rootIDs) == 0 {
		start, _ := voc.Resolve(prods[0].lhs, cfg.NonTerminal)
		rootIDs = append(rootIDs, start.ID)
	}
	nts := make([]int, 0, voc.Size(cfg.NonTerminal))
	for _, nt := range voc.Symbols(cfg.NonTerminal) {
		nts = append(nts, nt.ID)
	}
	g, err := cfg.NewGrammar(b.Rules(), nts, rootIDs)
	if err != nil {
		return nil, err
	}
	return &Grammar{Grammar: g, Vocabulary: voc}, nil
}

// parseLines groups tokens into productions and directives.
// A line starting with '|' continues the production of the previous rule line.
func parseLines(tokens []token) (prods []*production, roots, decls []token, err error) {
	var current *production
	for len(tokens) > 0 && tokens[0].typ != tokEOF {
		var line []token
		line, tokens = splitLine(tokens)
		if len(line) == 0 {
			continue
		}
		first := line[0]
		switch {
		case first.typ == tokDirective:
			args, err := directiveArgs(line)
			if err != nil {
				return nil, nil, nil, err
			}
			switch first.lexeme {
			case "%root":
				roots = append(roots, args...)
			case "%nonterminal":
				decls = append(decls, args...)
			default:
				return nil, nil, nil, syntaxError(first, "unknown directive")
			}
		case first.typ == tokBar:
			if current == nil {
				return nil, nil, nil, syntaxError(first, "alternative without rule")
			}
			alts, err := alternatives(line)
			if err != nil {
				return nil, nil, nil, err
			}
			current.alts = append(current.alts, alts...)
		case first.typ == tokWord:
			if len(line) < 2 || line[1].typ != tokArrow {
				return nil, nil, nil, syntaxError(first, "expected '->' after left hand side")
			}
			alts, err := alternatives(line[1:])
			if err != nil {
				return nil, nil, nil, err
			}
			current = &production{lhs: first.lexeme, alts: alts}
			prods = append(prods, current)
		default:
			return nil, nil, nil, syntaxError(first, "unexpected")
		}
	}
	return prods, roots, decls, nil
}

// splitLine returns the tokens up to the next end of line and the remaining tokens.
func splitLine(tokens []token) ([]token, []token) {
	for i, t := range tokens {
		switch t.typ {
		case tokNewline:
			return tokens[:i], tokens[i+1:]
		case tokEOF:
			return tokens[:i], tokens[i:]
		}
	}
	return tokens, nil
}

// alternatives splits the remainder of a rule line, starting with '->' or '|',
// into right hand sides.
func alternatives(line []token) ([]alternative, error) {
	var alts []alternative
	for len(line) > 0 {
		sep := line[0]
		alt := alternative{line: sep.line}
		line = line[1:]
		for len(line) > 0 && line[0].typ != tokBar {
			if t := line[0]; t.typ != tokWord && t.typ != tokString {
				return nil, syntaxError(t, "unexpected in right hand side")
			}
			alt.words = append(alt.words, line[0])
			line = line[1:]
		}
		if len(alt.words) == 0 {
			return nil, fmt.Errorf("%w: line %d: empty right hand side: %w",
				ErrSyntax, sep.line, cfg.ErrEmptyRHS)
		}
		alts = append(alts, alt)
	}
	return alts, nil
}

func directiveArgs(line []token) ([]token, error) {
	if len(line) < 2 {
		return nil, syntaxError(line[0], "missing arguments")
	}
	for _, t := range line[1:] {
		if t.typ != tokWord {
			return nil, syntaxError(t, "expected symbol name")
		}
	}
	return line[1:], nil
}

func unquote(t token) string {
	if t.typ == tokString {
		return strings.Trim(t.lexeme, `"`)
	}
	return t.lexeme
}

func syntaxError(t token, msg string) error {
	return fmt.Errorf("%w: line %d, column %d: %s %s", ErrSyntax, t.line, t.col, msg, t)
}
