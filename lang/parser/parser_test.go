package parser_test

import (
	"strings"
	"testing"

	"github.com/marc9622/mylangc/lang/ast"
	"github.com/marc9622/mylangc/lang/lexer"
	"github.com/marc9622/mylangc/lang/parser"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*ast.GlobalNamespace, error) {
	t.Helper()
	return parser.Parse(lexer.New(strings.NewReader(src)))
}

func TestParsePublicAssignDecl(t *testing.T) {
	root, err := parse(t, `pub def x: I32 = 42;`)
	require.NoError(t, err)
	require.Len(t, root.Declarations(), 1)

	decl := root.Declarations()[0]
	require.True(t, decl.Public)
	require.Equal(t, ast.KwDef, decl.Keyword)
	require.Equal(t, "x", decl.Identifier)
	require.Equal(t, ast.TypePrimitive, decl.Type.Tag)
	require.Equal(t, ast.I32, decl.Type.Primitive)
	require.Equal(t, ast.AssignDecl, decl.Kind)
	require.Equal(t, ast.ExprInteger, decl.Value.Tag)
	require.Equal(t, "42", decl.Value.Text)
}

func TestParseInferredType(t *testing.T) {
	root, err := parse(t, `let y = true;`)
	require.NoError(t, err)
	decl := root.Declarations()[0]
	require.True(t, decl.Type.Inferred())
	require.Equal(t, ast.ExprBool, decl.Value.Tag)
	require.True(t, decl.Value.Bool)
}

func TestParseFuncDecl(t *testing.T) {
	root, err := parse(t, `pub def id(x: I32) -> I32 do x;`)
	require.NoError(t, err)
	decl := root.Declarations()[0]
	require.Equal(t, ast.FuncDecl, decl.Kind)
	require.Equal(t, ast.TypeFunc, decl.Type.Tag)
	require.Len(t, decl.Params, 1)
	require.Equal(t, "x", decl.Params[0].Decl.Identifier)
	require.Equal(t, ast.I32, decl.Params[0].Decl.Type.Primitive)
	require.Equal(t, ast.I32, decl.Type.Func.ReturnType.Primitive)

	require.Equal(t, ast.ExprIdentifier, decl.Value.Tag)
	require.Equal(t, ast.IdResolved, decl.Value.Ident.Tag)
	require.Same(t, decl.Params[0].Decl, decl.Value.Ident.Declaration)
}

func TestParseNonPrimitiveTypeNameIsQueuedAndFailsToResolve(t *testing.T) {
	// Every top-level Identifier is lowercase-initial, so an uppercase Type
	// reference can never find a matching declaration in this core — it is
	// still queued as TypeKind::Identifier and surfaces as a resolver
	// failure rather than a parser failure.
	_, err := parse(t, `def b: Foo = 1;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not resolve identifier `Foo`")
}

func TestParseDuplicateTopLevelIdentifierIsError(t *testing.T) {
	_, err := parse(t, `def x: I32 = 1; def x: I32 = 2;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already declared")
}

func TestParseDuplicateParamIsError(t *testing.T) {
	_, err := parse(t, `def f(x: I32, x: I32) -> I32 do x;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already declared")
}

func TestParseUnresolvedIdentifierIsError(t *testing.T) {
	_, err := parse(t, `def z: I32 = undeclared;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not resolve identifier `undeclared`")
}

func TestParseUnexpectedTokenIsError(t *testing.T) {
	_, err := parse(t, `def 42 = 1;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected token")
}

func TestParseBlockBodyNotImplemented(t *testing.T) {
	_, err := parse(t, `def f() -> I32 { };`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not implemented")
}

func TestParsePubOnlyAtTopLevel(t *testing.T) {
	// 'pub' has no production inside a parameter list or function body, so
	// it simply falls through to "unexpected token" there.
	_, err := parse(t, `def f() -> I32 do pub;`)
	require.Error(t, err)
}
