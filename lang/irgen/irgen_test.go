package irgen_test

import (
	"strings"
	"testing"

	"github.com/marc9622/mylangc/lang/irgen"
	"github.com/marc9622/mylangc/lang/lexer"
	"github.com/marc9622/mylangc/lang/parser"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	root, err := parser.Parse(lexer.New(strings.NewReader(src)))
	require.NoError(t, err)
	out, err := irgen.Generate(root)
	require.NoError(t, err)
	return out
}

func TestGenerateConstantIntGlobal(t *testing.T) {
	out := generate(t, `pub def x: I32 = 42;`)
	require.Contains(t, out, "@x = external constant i32 42")
}

func TestGenerateMutableFloatGlobal(t *testing.T) {
	out := generate(t, `var y: F32 = 3.5;`)
	require.Contains(t, out, "@y = private global float 3.5")
}

func TestGenerateGlobalCopiesReferentInitializer(t *testing.T) {
	out := generate(t, `def a: I32 = 7; def b: I32 = a;`)
	require.Contains(t, out, "@a = private constant i32 7")
	require.Contains(t, out, "@b = private constant i32 7")
}

func TestGenerateIdentityFunction(t *testing.T) {
	out := generate(t, `pub def id(x: I32) -> I32 do x;`)
	require.Contains(t, out, "define external i32 @id(i32 %x) {")
	require.Contains(t, out, "entry:")
	require.Contains(t, out, "ret i32 %x")
}

func TestGenerateBoolGlobalEmitsI1(t *testing.T) {
	out := generate(t, `pub def one: Bool = true;`)
	require.Contains(t, out, "@one = external constant i1 1")
}

func TestGenerateDecimalWithIntegerTypeIsError(t *testing.T) {
	_, err := parser.Parse(lexer.New(strings.NewReader(`def x: I32 = 3.5;`)))
	require.NoError(t, err) // the parser accepts it; irgen rejects it.

	root, err := parser.Parse(lexer.New(strings.NewReader(`def x: I32 = 3.5;`)))
	require.NoError(t, err)
	_, err = irgen.Generate(root)
	require.Error(t, err)
}

func TestGenerateIntLiteralPermittedAsFloatInitializer(t *testing.T) {
	out := generate(t, `def x: F32 = 3;`)
	require.Contains(t, out, "@x = private constant float 3")
}

func TestGenerateBoolBodyWithIntReturnType(t *testing.T) {
	out := generate(t, `def f() -> I32 do true;`)
	require.Contains(t, out, "ret i32 1")
}
