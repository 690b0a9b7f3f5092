package tablecache_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
	"github.com/cishoon/quadtranslator/internal/quadgen/parse"
	"github.com/cishoon/quadtranslator/internal/quadgen/tablecache"
	"github.com/cishoon/quadtranslator/internal/quadgen/types"
)

func arithmeticGrammar() grammar.Grammar {
	nt := grammar.NewNonTerminal
	t := grammar.NewTerminal
	return grammar.New([]grammar.Production{
		{NonTerminal: "E", Right: []grammar.Symbol{nt("E"), t("+"), nt("T")}},
		{NonTerminal: "E", Right: []grammar.Symbol{nt("T")}},
		{NonTerminal: "T", Right: []grammar.Symbol{nt("T"), t("*"), nt("F")}},
		{NonTerminal: "T", Right: []grammar.Symbol{nt("F")}},
		{NonTerminal: "F", Right: []grammar.Symbol{t("("), nt("E"), t(")")}},
		{NonTerminal: "F", Right: []grammar.Symbol{t("id")}},
	}, "E", "$")
}

func Test_SaveLoad_RoundTripsDriverDecisions(t *testing.T) {
	g := arithmeticGrammar()
	tables, err := parse.BuildTables(g)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, tablecache.Save(&buf, tables))

	loaded, err := tablecache.Load(&buf, g.Augmented())
	assert.NoError(t, err)

	toks := types.Tokens{
		{Class: "id", Lexeme: "a", Line: 1},
		{Class: "+", Lexeme: "+", Line: 1},
		{Class: "id", Lexeme: "b", Line: 1},
		{Class: "$", Line: 1},
	}

	original := parse.NewDriver(tables, "$")
	fromCache := parse.NewDriver(loaded, "$")

	origTree, origErr := original.Parse(toks)
	cacheTree, cacheErr := fromCache.Parse(toks)

	assert.NoError(t, origErr)
	assert.NoError(t, cacheErr)
	assert.Equal(t, origTree.String(), cacheTree.String())
}

func Test_SaveLoad_PreservesActionAndGotoEntries(t *testing.T) {
	g := arithmeticGrammar()
	tables, err := parse.BuildTables(g)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, tablecache.Save(&buf, tables))

	loaded, err := tablecache.Load(&buf, g.Augmented())
	assert.NoError(t, err)

	for _, e := range tables.ActionEntries() {
		got, ok := loaded.Action(e.State, e.Terminal)
		assert.True(t, ok)
		assert.Equal(t, e.Action.Kind, got.Kind)
	}
	for _, e := range tables.GotoEntries() {
		got, ok := loaded.Goto(e.State, e.NonTerminal)
		assert.True(t, ok)
		assert.Equal(t, e.Target, got)
	}
}
