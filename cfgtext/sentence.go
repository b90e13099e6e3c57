package cfgtext

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chartparse/cfg"
)

// ReadSentence maps the words of a sentence to symbols of vocabulary v.
// Words unknown to v are mapped to terminal Unknown. Anchors like '<NP>'
// must name a non-terminal of v.
func ReadSentence(sentence string, v *cfg.Vocabulary) ([]cfg.Symbol, error) {
	tokens, err := tokenize(sentence)
	if err != nil {
		return nil, err
	}
	symbols := make([]cfg.Symbol, 0, len(tokens))
	for _, t := range tokens {
		switch t.typ {
		case tokEOF, tokNewline:
			continue
		case tokWord, tokString:
			sym, ok := v.Resolve(unquote(t), cfg.Terminal)
			if !ok {
				tracer().Infof("unknown word %q", t.lexeme)
				sym = cfg.T(Unknown)
			}
			symbols = append(symbols, sym)
		case tokAnchor:
			name := strings.TrimSuffix(strings.TrimPrefix(t.lexeme, "<"), ">")
			sym, ok := v.Resolve(name, cfg.NonTerminal)
			if !ok {
				return nil, fmt.Errorf("%w: column %d: anchor %s is not a non-terminal",
					ErrSyntax, t.col, t.lexeme)
			}
			symbols = append(symbols, sym)
		default:
			return nil, syntaxError(t, "unexpected in sentence")
		}
	}
	return symbols, nil
}

// Words returns the names of a sequence of symbols, anchors enclosed in angle brackets.
func Words(symbols []cfg.Symbol, v *cfg.Vocabulary) []string {
	words := make([]string, len(symbols))
	for i, sym := range symbols {
		if sym.IsTerminal() {
			words[i] = v.Name(sym)
		} else {
			words[i] = "<" + v.Name(sym) + ">"
		}
	}
	return words
}
