package cfgtext

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/chartparse/cfg"
	"github.com/npillmayer/chartparse/cyk"
	"github.com/npillmayer/chartparse/derivation"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nounPhrases = `
# a small grammar for noun phrases
%root NP
NP  -> Det N | NP PP
    |  N "of" NP
PP  -> in NP
Det -> the | a   # determiners
N   -> house | garden
`

func TestReadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cfgtext")
	defer teardown()
	//
	g, err := ReadGrammar(strings.NewReader(nounPhrases))
	require.NoError(t, err)
	assert.Equal(t, 8, len(g.Rules()))
	assert.Equal(t, []int{1}, g.Roots())
	assert.Equal(t, []int{1, 2, 3, 4}, g.NonTerminals())
	assert.Equal(t, 6, g.Vocabulary.Size(cfg.Terminal))
	assert.Equal(t, "NP ➞ N of NP", g.Vocabulary.RuleString(g.Rule(2)))
	assert.Equal(t, "PP ➞ in NP", g.Vocabulary.RuleString(g.Rule(3)))
	of, ok := g.Vocabulary.Resolve("of", cfg.Terminal)
	require.True(t, ok)
	assert.Equal(t, cfg.T(1), of)
}

func TestDefaultRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cfgtext")
	defer teardown()
	//
	g, err := ParseGrammar("S ::= a S b | a b\n%nonterminal X")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, g.Roots())
	assert.Equal(t, []int{1, 2}, g.NonTerminals())
	assert.Equal(t, "S ➞ a S b", g.Vocabulary.RuleString(g.Rule(0)))
}

func TestGrammarSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cfgtext")
	defer teardown()
	//
	for _, text := range []string{
		"",
		"# only a comment",
		"S a b",
		"| a b",
		"S -> a | | b",
		"S -> a ->",
		"%root",
		"%root X\nS -> a",
		"%start S\nS -> a",
		`S -> "a`,
	} {
		_, err := ParseGrammar(text)
		assert.ErrorIs(t, err, ErrSyntax, "grammar %q", text)
	}
	_, err := ParseGrammar("S -> a |")
	assert.ErrorIs(t, err, cfg.ErrEmptyRHS)
}

func TestReadSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cfgtext")
	defer teardown()
	//
	g, err := ParseGrammar(nounPhrases)
	require.NoError(t, err)
	syms, err := ReadSentence(`the "house" <PP> castle`, g.Vocabulary)
	require.NoError(t, err)
	the, _ := g.Vocabulary.Resolve("the", cfg.Terminal)
	house, _ := g.Vocabulary.Resolve("house", cfg.Terminal)
	assert.Equal(t, []cfg.Symbol{the, house, cfg.N(2), cfg.T(Unknown)}, syms)
	assert.Equal(t, []string{"the", "house", "<PP>", "'0'"}, Words(syms, g.Vocabulary))
	_, err = ReadSentence("the <Foo>", g.Vocabulary)
	assert.True(t, errors.Is(err, ErrSyntax))
	_, err = ReadSentence("the | house", g.Vocabulary)
	assert.True(t, errors.Is(err, ErrSyntax))
}

func TestParseText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cfgtext")
	defer teardown()
	//
	g, err := ParseGrammar(nounPhrases)
	require.NoError(t, err)
	parse := func(sentence string) []string {
		syms, err := ReadSentence(sentence, g.Vocabulary)
		require.NoError(t, err)
		trees, err := cyk.ParseGrammar(g.Grammar, syms, derivation.PopulateTree,
			nil, derivation.AnchorTree)
		require.NoError(t, err)
		var out []string
		for _, tree := range trees {
			out = append(out, tree.Format(g.Vocabulary))
		}
		return out
	}
	assert.Equal(t, []string{
		"(NP (NP (Det the) (N house)) (PP in (NP (Det a) (N garden))))",
	}, parse("the house in a garden"))
	assert.Equal(t, []string{
		"(NP NP (PP in (NP (Det the) (N garden))))",
	}, parse("<NP> in the garden"))
	assert.Len(t, parse("the house in a garden in the house"), 2)
	assert.Empty(t, parse("the castle"))
}
