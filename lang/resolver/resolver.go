// Package resolver binds every identifier lang/parser left Unresolved to
// the declaration it names, walking the lexical scope chain the same way
// nenuphar's resolver walks its block-scope stack, generalized here to a
// function/namespace scope chain instead of nenuphar's lexical blocks.
package resolver

import (
	"fmt"

	"github.com/marc9622/mylangc/lang/ast"
	"github.com/marc9622/mylangc/lang/token"
)

// ResolveError reports a binding failure for a single identifier, at the
// position it was used.
type ResolveError struct {
	Name string
	Pos  token.Pos
	Msg  string
}

func (e *ResolveError) Error() string { return fmt.Sprintf("%s `%s` (%s)", e.Msg, e.Name, e.Pos) }

// Resolve drains queue in order, rewriting each ScopedId's Tag from
// IdUnresolved to IdResolved in place. It returns the first resolution failure
// encountered; per spec, resolution order is FIFO but observationally
// irrelevant to the outcome, so any failure aborts the whole pass.
func Resolve(queue []*ast.ScopedId) error {
	for _, id := range queue {
		if err := resolveOne(id); err != nil {
			return err
		}
	}
	return nil
}

func resolveOne(id *ast.ScopedId) error {
	if len(id.ScopeDescribed) > 0 {
		return &ResolveError{Name: id.Name, Pos: id.Pos, Msg: "not implemented: qualified identifier"}
	}

	// Try scope_used, then walk the lexical parent chain: function ->
	// enclosing namespace -> parent namespace -> ... -> global. The first
	// match, at any step, wins.
	for scope := id.ScopeUsed; scope != nil; {
		if decl, ok := scope.LookupLocal(id.Name); ok {
			id.MarkResolved(decl, scope)
			return nil
		}
		parent, ok := scope.Parent()
		if !ok {
			break
		}
		scope = parent
	}

	return &ResolveError{Name: id.Name, Pos: id.Pos, Msg: "could not resolve identifier"}
}
