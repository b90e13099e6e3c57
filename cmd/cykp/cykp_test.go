package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cykp")
	defer teardown()
	//
	g, err := loadGrammar()
	require.NoError(t, err)
	trees, err := parseSentence(g, "the house with a door")
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.Equal(t, "(NP (NP (Det the) (N house)) (PP with (NP (Det a) (N door))))",
		trees[0].Format(g.Vocabulary))
	trees, err = parseSentence(g, "the house in the garden with a tree")
	require.NoError(t, err)
	assert.Len(t, trees, 2)
	trees, err = parseSentence(g, "<NP> of the house")
	require.NoError(t, err)
	assert.Empty(t, trees)
}

func TestCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cykp", "chartparse.cfg")
	defer teardown()
	//
	assert.NoError(t, runCheck(checkCmd, nil))
}

func TestREPLCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.cykp")
	defer teardown()
	//
	g, err := loadGrammar()
	require.NoError(t, err)
	intp := &Intp{grammar: g}
	quit, err := intp.Eval(":rules")
	assert.False(t, quit)
	assert.NoError(t, err)
	_, err = intp.Eval(":trace")
	assert.NoError(t, err)
	assert.True(t, intp.trace)
	_, err = intp.Eval("tree of the garden")
	assert.NoError(t, err)
	_, err = intp.Eval("garden the")
	assert.Error(t, err)
	_, err = intp.Eval(":load")
	assert.Error(t, err)
	_, err = intp.Eval(":frobnicate")
	assert.Error(t, err)
	quit, err = intp.Eval(":quit")
	assert.True(t, quit)
	assert.NoError(t, err)
}
