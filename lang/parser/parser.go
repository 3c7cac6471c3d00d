// Package parser implements the recursive-descent parser that turns a
// token stream into a populated namespace tree, then hands the tree's
// queue of unresolved identifiers to lang/resolver.
//
// Unlike a typical recursive-descent parser with panic/recover local error
// repair, this one aborts immediately on the first error: there is no
// local recovery, matching the "first error aborts the pipeline" contract
// this grammar is specified with.
package parser

import (
	"fmt"
	"strings"

	"github.com/marc9622/mylangc/lang/ast"
	"github.com/marc9622/mylangc/lang/lexer"
	"github.com/marc9622/mylangc/lang/resolver"
	"github.com/marc9622/mylangc/lang/token"
)

// Parser consumes tokens from a lang/lexer.Tokenizer and populates a
// lang/ast.GlobalNamespace.
type Parser struct {
	tz   *lexer.Tokenizer
	tok  token.Token
	root *ast.GlobalNamespace

	// unresolved accumulates every ScopedId the parser constructs, in
	// creation order, for the resolver to drain once parsing finishes.
	unresolved []*ast.ScopedId
}

// New constructs a Parser reading from tz and primes it with the first
// token.
func New(tz *lexer.Tokenizer) *Parser {
	p := &Parser{tz: tz, root: ast.NewGlobalNamespace()}
	p.advance()
	return p
}

// Root returns the namespace tree built so far. Callers that only called
// ParseProgram (not Finalize) get back a tree with unresolved ScopedIds.
func (p *Parser) Root() *ast.GlobalNamespace { return p.root }

// Parse tokenizes src to EOF with tz, builds the namespace tree, then runs
// the resolver over the identifiers collected along the way. It returns the
// populated, resolved root namespace, or the first error encountered by
// either stage. It is the one-shot convenience form of New/ParseProgram/
// Finalize below, for callers that always want a fully resolved tree.
func Parse(tz *lexer.Tokenizer) (*ast.GlobalNamespace, error) {
	p := New(tz)
	if err := p.ParseProgram(); err != nil {
		return nil, err
	}
	return p.Finalize()
}

// ParseProgram implements Program ::= TopDecl* EOF, populating p's root
// namespace with unresolved holes: identifiers are queued but not yet bound.
// Call Finalize afterward to run the resolver and obtain the completed tree.
func (p *Parser) ParseProgram() error {
	return p.parseProgram()
}

// Finalize drains the queue of identifiers collected during ParseProgram,
// binding each to its defining declaration, and returns the populated root
// namespace. Matches the external contract's "Parser::new() / parse(tokenizer)
// / finalize() → GlobalNamespace" split (spec §6).
func (p *Parser) Finalize() (*ast.GlobalNamespace, error) {
	if err := resolver.Resolve(p.unresolved); err != nil {
		return nil, err
	}
	return p.root, nil
}

func (p *Parser) advance() { p.tok = p.tz.Next() }

// ParseError reports a syntax error at a specific source position.
type ParseError struct {
	Pos token.Pos
	Msg string
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s (%s)", e.Msg, e.Pos) }

func (p *Parser) error(msg string) error {
	return &ParseError{Pos: p.tok.Pos, Msg: msg}
}

func (p *Parser) errorExpected(kinds ...token.Kind) error {
	if len(kinds) == 1 {
		return p.error(fmt.Sprintf("unexpected token %s, expected %s", p.tok.Kind.GoString(), kinds[0].GoString()))
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.GoString()
	}
	return p.error(fmt.Sprintf("unexpected token %s, expected one of {%s}", p.tok.Kind.GoString(), strings.Join(parts, ", ")))
}

// expect consumes the current token if it matches kind, returning it;
// otherwise it returns an "unexpected token" error without consuming
// anything.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.tok.Kind != kind {
		return token.Token{}, p.errorExpected(kind)
	}
	tok := p.tok
	p.advance()
	return tok, nil
}

// enqueue records id for the resolver and returns it. Every
// Expression::Identifier and TypeKind::Identifier built by this parser
// passes through here exactly once.
func (p *Parser) enqueue(name string, pos token.Pos, scope ast.Scope) *ast.ScopedId {
	id := &ast.ScopedId{Name: name, Pos: pos, Tag: ast.IdUnresolved, ScopeUsed: scope}
	p.unresolved = append(p.unresolved, id)
	return id
}

// parseProgram implements Program ::= TopDecl* EOF.
func (p *Parser) parseProgram() error {
	for p.tok.Kind != token.EOF {
		if err := p.parseTopDecl(); err != nil {
			return err
		}
	}
	return nil
}

// parseTopDecl implements TopDecl ::= 'pub'? DeclKW Identifier DeclTail.
//
// 'pub' can only ever appear here: there is no production anywhere else in
// this grammar that calls parseTopDecl or accepts a leading 'pub', so "pub
// only valid on top-level declarations" holds by construction rather than
// by an explicit check.
func (p *Parser) parseTopDecl() error {
	public := false
	if p.tok.Kind == token.PUB {
		public = true
		p.advance()
	}

	var kw ast.DeclKeyword
	switch p.tok.Kind {
	case token.VAR:
		kw = ast.KwVar
	case token.LET:
		kw = ast.KwLet
	case token.DEF:
		kw = ast.KwDef
	default:
		return p.errorExpected(token.VAR, token.LET, token.DEF)
	}
	p.advance()

	idTok, err := p.expect(token.ID)
	if err != nil {
		return err
	}

	decl, err := p.parseDeclTail(public, kw, idTok.Value.Raw, idTok.Pos)
	if err != nil {
		return err
	}

	if !p.root.AddDeclaration(decl) {
		return p.error(fmt.Sprintf("identifier `%s` already declared", decl.Identifier))
	}
	return nil
}

// parseDeclTail implements:
//
//	DeclTail ::= (':' Type)? ('=' Expr ';' | '(' Params ')' '->' Type FuncBody)
func (p *Parser) parseDeclTail(public bool, kw ast.DeclKeyword, name string, pos token.Pos) (*ast.Declaration, error) {
	typ := ast.TypeKind{Tag: ast.TypeInferred}
	if p.tok.Kind == token.COLON {
		p.advance()
		var err error
		typ, err = p.parseType(p.root)
		if err != nil {
			return nil, err
		}
	}

	switch p.tok.Kind {
	case token.EQUAL:
		p.advance()
		expr, err := p.parseExpr(p.root)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		decl := &ast.Declaration{Public: public, Keyword: kw, Identifier: name, Type: typ, Kind: ast.AssignDecl, Value: expr, Pos: pos}
		decl.SetEnclosing(p.root)
		return decl, nil

	case token.OPEN_PAREN:
		// Invariant 6 (spec §3): a FuncType is the only type a function-scope
		// declaration may carry, so a leading ':' Type here (if present) is
		// superseded by the FuncType built below rather than combined with it.
		p.advance()
		decl := &ast.Declaration{Public: public, Keyword: kw, Identifier: name, Kind: ast.FuncDecl, Pos: pos}
		decl.SetEnclosing(p.root)

		params, err := p.parseParams(decl)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CLOSE_PAREN); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ARROW); err != nil {
			return nil, err
		}
		retType, err := p.parseType(decl)
		if err != nil {
			return nil, err
		}

		body, err := p.parseFuncBody(decl)
		if err != nil {
			return nil, err
		}

		decl.Params = params
		decl.Value = body
		decl.Type = ast.TypeKind{Tag: ast.TypeFunc, Func: &ast.FuncType{Arguments: params, ReturnType: retType}}
		return decl, nil

	default:
		return nil, p.errorExpected(token.EQUAL, token.OPEN_PAREN)
	}
}

// parseParams implements:
//
//	Params ::= (Identifier ':' Type (',' Identifier ':' Type)*)?
//
// scope is the function declaration itself: parameter types are resolved
// starting from the function, walking out to its enclosing namespace like
// any other identifier used inside the function.
func (p *Parser) parseParams(scope ast.Scope) ([]*ast.Argument, error) {
	if p.tok.Kind == token.CLOSE_PAREN {
		return nil, nil
	}

	var params []*ast.Argument
	for {
		idTok, err := p.expect(token.ID)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		// Parameters are not permitted to be inferred: parseType always
		// returns a concrete TypeKind here since the grammar requires a Type
		// token, never allowing it to be omitted.
		typ, err := p.parseType(scope)
		if err != nil {
			return nil, err
		}

		for _, existing := range params {
			if existing.Decl.Identifier == idTok.Value.Raw {
				return nil, p.error(fmt.Sprintf("parameter `%s` already declared", idTok.Value.Raw))
			}
		}
		params = append(params, &ast.Argument{Decl: &ast.Declaration{
			Keyword:    ast.KwLet,
			Identifier: idTok.Value.Raw,
			Type:       typ,
			Kind:       ast.EmptyDecl,
			Pos:        idTok.Pos,
		}})

		if p.tok.Kind != token.COMMA {
			break
		}
		p.advance()
	}
	return params, nil
}

// parseFuncBody implements FuncBody ::= '{' Block '}' | 'do' Expr ';'.
//
// Block parsing is reserved (spec §4.3): only the 'do' Expr ';' alternative
// is implemented.
func (p *Parser) parseFuncBody(scope ast.Scope) (ast.Expression, error) {
	if p.tok.Kind == token.OPEN_BRACKET {
		return ast.Expression{}, p.error("not implemented: block function bodies")
	}
	if _, err := p.expect(token.DO); err != nil {
		return ast.Expression{}, err
	}
	expr, err := p.parseExpr(scope)
	if err != nil {
		return ast.Expression{}, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return ast.Expression{}, err
	}
	return expr, nil
}

// parseType implements Type ::= PrimitiveName | TypeIdent.
func (p *Parser) parseType(scope ast.Scope) (ast.TypeKind, error) {
	tok, err := p.expect(token.TYPE)
	if err != nil {
		return ast.TypeKind{}, err
	}
	if prim, ok := ast.LookupPrimitive(tok.Value.Raw); ok {
		return ast.TypeKind{Tag: ast.TypePrimitive, Primitive: prim}, nil
	}
	id := p.enqueue(tok.Value.Raw, tok.Pos, scope)
	return ast.TypeKind{Tag: ast.TypeIdentifier, Ident: id}, nil
}

// parseExpr implements Expr ::= Identifier | IntLit | DecLit | BoolLit.
func (p *Parser) parseExpr(scope ast.Scope) (ast.Expression, error) {
	switch p.tok.Kind {
	case token.ID:
		name, pos := p.tok.Value.Raw, p.tok.Pos
		p.advance()
		return ast.Expression{Tag: ast.ExprIdentifier, Ident: p.enqueue(name, pos, scope), Pos: pos}, nil
	case token.INT:
		text, pos := p.tok.Value.Raw, p.tok.Pos
		p.advance()
		return ast.Expression{Tag: ast.ExprInteger, Text: text, Pos: pos}, nil
	case token.DEC:
		text, pos := p.tok.Value.Raw, p.tok.Pos
		p.advance()
		return ast.Expression{Tag: ast.ExprDecimal, Text: text, Pos: pos}, nil
	case token.BOOL:
		b, pos := p.tok.Value.Bool, p.tok.Pos
		p.advance()
		return ast.Expression{Tag: ast.ExprBool, Bool: b, Pos: pos}, nil
	default:
		return ast.Expression{}, p.errorExpected(token.ID, token.INT, token.DEC, token.BOOL)
	}
}
