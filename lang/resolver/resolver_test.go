package resolver

import (
	"testing"

	"github.com/marc9622/mylangc/lang/ast"
	"github.com/stretchr/testify/require"
)

func TestResolveFindsDirectDeclaration(t *testing.T) {
	root := ast.NewGlobalNamespace()
	target := &ast.Declaration{Identifier: "x"}
	root.AddDeclaration(target)

	id := &ast.ScopedId{Name: "x", Tag: ast.IdUnresolved, ScopeUsed: root}
	require.NoError(t, Resolve([]*ast.ScopedId{id}))

	require.Equal(t, ast.IdResolved, id.Tag)
	require.Same(t, target, id.Declaration)
}

func TestResolveWalksFunctionToEnclosingNamespace(t *testing.T) {
	root := ast.NewGlobalNamespace()
	outer := &ast.Declaration{Identifier: "y"}
	root.AddDeclaration(outer)

	param := &ast.Declaration{Identifier: "x", Keyword: ast.KwLet}
	fn := &ast.Declaration{
		Identifier: "f",
		Kind:       ast.FuncDecl,
		Params:     []*ast.Argument{{Decl: param}},
	}
	fn.SetEnclosing(root)
	root.AddDeclaration(fn)

	id := &ast.ScopedId{Name: "y", Tag: ast.IdUnresolved, ScopeUsed: fn}
	require.NoError(t, Resolve([]*ast.ScopedId{id}))
	require.Same(t, outer, id.Declaration)
}

func TestResolveParameterShadowsOuter(t *testing.T) {
	root := ast.NewGlobalNamespace()
	outer := &ast.Declaration{Identifier: "x"}
	root.AddDeclaration(outer)

	param := &ast.Declaration{Identifier: "x", Keyword: ast.KwLet}
	fn := &ast.Declaration{Identifier: "f", Kind: ast.FuncDecl, Params: []*ast.Argument{{Decl: param}}}
	fn.SetEnclosing(root)
	root.AddDeclaration(fn)

	id := &ast.ScopedId{Name: "x", Tag: ast.IdUnresolved, ScopeUsed: fn}
	require.NoError(t, Resolve([]*ast.ScopedId{id}))
	require.Same(t, param, id.Declaration)
}

func TestResolveFailsWhenExhausted(t *testing.T) {
	root := ast.NewGlobalNamespace()
	id := &ast.ScopedId{Name: "undeclared", Tag: ast.IdUnresolved, ScopeUsed: root}

	err := Resolve([]*ast.ScopedId{id})
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not resolve identifier `undeclared`")
}

func TestResolveFailsOnQualifiedPath(t *testing.T) {
	root := ast.NewGlobalNamespace()
	id := &ast.ScopedId{
		Name:           "x",
		Tag:            ast.IdUnresolved,
		ScopeUsed:      root,
		ScopeDescribed: []string{"some", "path"},
	}

	err := Resolve([]*ast.ScopedId{id})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not implemented")
}

func TestResolveDoesNotDescendIntoSiblingNamespace(t *testing.T) {
	root := ast.NewGlobalNamespace()
	sibling := root.AddSubNamespace("sibling")
	sibling.AddDeclaration(&ast.Declaration{Identifier: "x"})

	used := root.AddSubNamespace("used")
	id := &ast.ScopedId{Name: "x", Tag: ast.IdUnresolved, ScopeUsed: used}

	err := Resolve([]*ast.ScopedId{id})
	require.Error(t, err)
}
