package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		require.NotEmpty(t, k.String(), "kind %d missing a string form", k)
	}
}

func TestLookupWord(t *testing.T) {
	cases := []struct {
		word string
		want Kind
	}{
		{"var", VAR},
		{"def", DEF},
		{"let", LET},
		{"pub", PUB},
		{"do", DO},
		{"true", BOOL},
		{"false", BOOL},
		{"x", ID},
		{"variable", ID}, // starts with "var" but is not the keyword
		{"_hidden", ID},
	}
	for _, c := range cases {
		require.Equal(t, c.want, LookupWord(c.word), "word %q", c.word)
	}
}

func TestTokenText(t *testing.T) {
	require.Equal(t, "foo", Token{Kind: ID, Value: Value{Raw: "foo"}}.Text())
	require.Equal(t, "true", Token{Kind: BOOL, Value: Value{Bool: true}}.Text())
	require.Equal(t, "false", Token{Kind: BOOL, Value: Value{Bool: false}}.Text())
	require.Equal(t, "->", Token{Kind: ARROW}.Text())
	require.Equal(t, ";", Token{Kind: SEMICOLON}.Text())
}

func TestPosTracker(t *testing.T) {
	tr := NewTracker()
	require.Equal(t, Pos{Line: 1, Col: 1}, tr.Pos())
	tr.IncChar(3)
	require.Equal(t, Pos{Line: 1, Col: 4}, tr.Pos())
	tr.IncLine()
	require.Equal(t, Pos{Line: 2, Col: 0}, tr.Pos())
	tr.IncChar(1)
	require.Equal(t, Pos{Line: 2, Col: 1}, tr.Pos())
}
