package lexer

import (
	"strings"
	"testing"

	"github.com/marc9622/mylangc/lang/token"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	tz := New(strings.NewReader(src))
	var toks []token.Token
	for {
		tok := tz.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestBasicTokens(t *testing.T) {
	toks := scanAll(t, `pub def x: I32 = 42;`)
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []token.Kind{
		token.PUB, token.DEF, token.ID, token.COLON, token.TYPE,
		token.EQUAL, token.INT, token.SEMICOLON, token.EOF,
	}, kinds)
}

func TestIdentifierVsType(t *testing.T) {
	toks := scanAll(t, `foo Bar _baz`)
	require.Equal(t, token.ID, toks[0].Kind)
	require.Equal(t, "foo", toks[0].Value.Raw)
	require.Equal(t, token.TYPE, toks[1].Kind)
	require.Equal(t, "Bar", toks[1].Value.Raw)
	require.Equal(t, token.ID, toks[2].Kind)
	require.Equal(t, "_baz", toks[2].Value.Raw)
}

func TestKeywordsNeverBecomeId(t *testing.T) {
	toks := scanAll(t, `var let def do pub return break continue for of`)
	want := []token.Kind{
		token.VAR, token.LET, token.DEF, token.DO, token.PUB,
		token.RETURN, token.BREAK, token.CONTINUE, token.FOR, token.OF, token.EOF,
	}
	got := make([]token.Kind, len(toks))
	for i, tok := range toks {
		got[i] = tok.Kind
	}
	require.Equal(t, want, got)
}

func TestBoolLiteral(t *testing.T) {
	toks := scanAll(t, `true false`)
	require.Equal(t, token.BOOL, toks[0].Kind)
	require.True(t, toks[0].Value.Bool)
	require.Equal(t, token.BOOL, toks[1].Kind)
	require.False(t, toks[1].Value.Bool)
}

func TestIntAndDecimal(t *testing.T) {
	toks := scanAll(t, `42 3.5 7.`)
	require.Equal(t, token.INT, toks[0].Kind)
	require.Equal(t, "42", toks[0].Value.Raw)
	require.Equal(t, token.DEC, toks[1].Kind)
	require.Equal(t, "3.5", toks[1].Value.Raw)
	// a bare trailing '.' is not consumed: Int "7" then Dot.
	require.Equal(t, token.INT, toks[2].Kind)
	require.Equal(t, "7", toks[2].Value.Raw)
	require.Equal(t, token.DOT, toks[3].Kind)
}

func TestStringLiteral(t *testing.T) {
	toks := scanAll(t, `"hello world"`)
	require.Equal(t, token.STR, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Value.Raw)
}

func TestStringUnterminatedByNewlineIsInvalid(t *testing.T) {
	toks := scanAll(t, "\"abc\ndef\"")
	require.Equal(t, token.INVALID, toks[0].Kind)
	require.Equal(t, "abc", toks[0].Value.Raw)
}

func TestStringUnterminatedByEOFIsInvalid(t *testing.T) {
	toks := scanAll(t, `"abc`)
	require.Equal(t, token.INVALID, toks[0].Kind)
	require.Equal(t, "abc", toks[0].Value.Raw)
}

func TestLineComment(t *testing.T) {
	toks := scanAll(t, "1 // a comment\n2")
	require.Equal(t, token.INT, toks[0].Kind)
	require.Equal(t, "1", toks[0].Value.Raw)
	require.Equal(t, token.INT, toks[1].Kind)
	require.Equal(t, "2", toks[1].Value.Raw)
}

func TestNestedBlockComment(t *testing.T) {
	toks := scanAll(t, "1 /* outer /* inner */ still outer */ 2")
	require.Equal(t, token.INT, toks[0].Kind)
	require.Equal(t, token.INT, toks[1].Kind)
	require.Equal(t, "2", toks[1].Value.Raw)
}

func TestLineCommentInsideBlockDoesNotClose(t *testing.T) {
	toks := scanAll(t, "1 /* outer // */ still inside\n */ 2")
	require.Equal(t, token.INT, toks[0].Kind)
	require.Equal(t, token.INT, toks[1].Kind)
	require.Equal(t, "2", toks[1].Value.Raw)
}

func TestArrowAndEqual(t *testing.T) {
	toks := scanAll(t, `-> = ==`)
	require.Equal(t, token.ARROW, toks[0].Kind)
	require.Equal(t, token.EQUAL, toks[1].Kind)
	require.Equal(t, token.OP, toks[2].Kind)
	require.Equal(t, "==", toks[2].Value.Raw)
}

func TestOperatorRun(t *testing.T) {
	toks := scanAll(t, `+ -+ #+ <=>`)
	require.Equal(t, token.OP, toks[0].Kind)
	require.Equal(t, "+", toks[0].Value.Raw)
	require.Equal(t, token.OP, toks[1].Kind)
	require.Equal(t, "-+", toks[1].Value.Raw)
	require.Equal(t, token.OP, toks[2].Kind)
	require.Equal(t, "#+", toks[2].Value.Raw)
	require.Equal(t, token.OP, toks[3].Kind)
	require.Equal(t, "<=>", toks[3].Value.Raw)
}

func TestOperatorRunStopsBeforeCommentOrArrow(t *testing.T) {
	toks := scanAll(t, `-// comment`)
	require.Equal(t, token.OP, toks[0].Kind)
	require.Equal(t, "-", toks[0].Value.Raw)
	require.Equal(t, token.EOF, toks[1].Kind)

	toks = scanAll(t, `+->`)
	require.Equal(t, token.OP, toks[0].Kind)
	require.Equal(t, "+", toks[0].Value.Raw)
	require.Equal(t, token.ARROW, toks[1].Kind)
}

func TestInvalidByte(t *testing.T) {
	toks := scanAll(t, "@")
	require.Equal(t, token.INVALID, toks[0].Kind)
	require.Equal(t, "@", toks[0].Value.Raw)
}

func TestPeekDoesNotConsume(t *testing.T) {
	tz := New(strings.NewReader("1 2 3"))
	first := tz.Peek(0)
	second := tz.Peek(1)
	require.Equal(t, "1", first.Value.Raw)
	require.Equal(t, "2", second.Value.Raw)

	// Next() replays the buffered tokens in order.
	require.Equal(t, "1", tz.Next().Value.Raw)
	require.Equal(t, "2", tz.Next().Value.Raw)
	require.Equal(t, "3", tz.Next().Value.Raw)
	require.Equal(t, token.EOF, tz.Next().Kind)
}

func TestConsumePeeked(t *testing.T) {
	tz := New(strings.NewReader("1 2"))
	require.Equal(t, "1", tz.Peek(0).Value.Raw)
	tz.ConsumePeeked()
	require.Equal(t, "2", tz.Next().Value.Raw)
}

func TestConsumePeekedPanicsWhenEmpty(t *testing.T) {
	tz := New(strings.NewReader("1"))
	require.Panics(t, func() { tz.ConsumePeeked() })
}

func TestPositionTracking(t *testing.T) {
	tz := New(strings.NewReader("ab\ncd"))
	first := tz.Next()
	require.Equal(t, token.Pos{Line: 1, Col: 1}, first.Pos)
	second := tz.Next()
	require.Equal(t, token.Pos{Line: 2, Col: 1}, second.Pos)
}

func TestEOFIsRepeatable(t *testing.T) {
	tz := New(strings.NewReader(""))
	require.Equal(t, token.EOF, tz.Next().Kind)
	require.Equal(t, token.EOF, tz.Next().Kind)
}

func TestTokenRoundTripThroughPrettyPrint(t *testing.T) {
	src := `pub def id(x: I32) -> I32 do x;`
	before := scanAll(t, src)

	tz := New(strings.NewReader(src))
	pretty := tz.String()

	after := scanAll(t, pretty)
	require.Equal(t, len(before), len(after))
	for i := range before {
		require.Equal(t, before[i].Kind, after[i].Kind, "token %d", i)
		require.Equal(t, before[i].Value, after[i].Value, "token %d", i)
	}
}
