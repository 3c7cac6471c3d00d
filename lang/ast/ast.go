// Package ast defines the namespace/declaration tree built by lang/parser
// and consumed by lang/resolver and lang/irgen.
//
// Unlike a source-faithful AST, this tree is append-only and never
// reparented: the parser appends declarations and sub-namespaces as it goes,
// the resolver only ever rewrites a ScopedId's resolution state (Tag,
// Declaration, Scope) in place via MarkResolved, and the
// emitter only reads. There is no concrete Block/statement list yet (see
// TypeKind's FuncType and Declaration's FuncDecl) — function bodies are a
// single expression, as spec'd.
package ast

import (
	"github.com/marc9622/mylangc/lang/token"
)

// Scope is the capability set every kind of lexical scope offers: a full
// name for diagnostics, a local-only identifier lookup, a local-only
// uniqueness check, and a link to the enclosing scope for the resolver's
// chain walk. GlobalNamespace, SubNamespace and *Declaration (acting as a
// FuncDecl's parameter scope) all implement it. The parser itself detects
// duplicates through AddDeclaration's result and its own parameter check
// rather than through IsUniqueLocal.
type Scope interface {
	FullName() string
	LookupLocal(name string) (*Declaration, bool)
	IsUniqueLocal(name string) bool
	Parent() (Scope, bool)
}

// declSet is a name -> *Declaration index shared by GlobalNamespace and
// SubNamespace. Function scopes do not use it: a FuncDecl looks its
// parameters up by a linear scan of Params. It is swiss-table backed instead of a
// builtin map because every insertion is also a uniqueness probe, and a
// scope can hold an arbitrary, unbounded number of sibling declarations.
type declSet struct {
	byName *swissMap
	order  []*Declaration
}

func newDeclSet() declSet {
	return declSet{byName: newSwissMap()}
}

// insert adds decl under name, reporting false without modifying the set if
// name is already present.
func (s *declSet) insert(name string, decl *Declaration) bool {
	if _, ok := s.byName.Get(name); ok {
		return false
	}
	s.byName.Put(name, decl)
	s.order = append(s.order, decl)
	return true
}

func (s *declSet) get(name string) (*Declaration, bool) {
	return s.byName.Get(name)
}

func (s *declSet) has(name string) bool {
	_, ok := s.byName.Get(name)
	return ok
}

func (s *declSet) decls() []*Declaration { return s.order }

// GlobalNamespace is the root of the namespace tree. Its full name is the
// empty string.
type GlobalNamespace struct {
	decls declSet
	subs  []*SubNamespace
}

// NewGlobalNamespace returns an empty root namespace.
func NewGlobalNamespace() *GlobalNamespace {
	return &GlobalNamespace{decls: newDeclSet()}
}

func (g *GlobalNamespace) FullName() string { return "" }

func (g *GlobalNamespace) LookupLocal(name string) (*Declaration, bool) {
	return g.decls.get(name)
}

func (g *GlobalNamespace) IsUniqueLocal(name string) bool {
	return !g.decls.has(name)
}

func (g *GlobalNamespace) Parent() (Scope, bool) { return nil, false }

// Declarations returns the declarations directly owned by the root, in
// insertion order.
func (g *GlobalNamespace) Declarations() []*Declaration { return g.decls.decls() }

// SubNamespaces returns the direct children of the root, in insertion order.
func (g *GlobalNamespace) SubNamespaces() []*SubNamespace { return g.subs }

// AddDeclaration inserts decl, reporting false if its identifier collides
// with an existing direct declaration of this namespace.
func (g *GlobalNamespace) AddDeclaration(decl *Declaration) bool {
	return g.decls.insert(decl.Identifier, decl)
}

// AddSubNamespace appends name as a new direct child and returns it.
func (g *GlobalNamespace) AddSubNamespace(name string) *SubNamespace {
	sub := &SubNamespace{name: name, parent: g, decls: newDeclSet()}
	g.subs = append(g.subs, sub)
	return sub
}

// SubNamespace is a named, non-root namespace.
//
// full_name is computed as parent.FullName() + "." + name. Since the root's
// FullName is "", a top-level SubNamespace's full name carries a leading
// dot — this matches the observed behavior of the source this spec was
// drawn from and is preserved deliberately rather than special-cased away.
type SubNamespace struct {
	name   string
	parent Scope
	decls  declSet
	subs   []*SubNamespace
}

func (s *SubNamespace) Name() string { return s.name }

func (s *SubNamespace) FullName() string {
	return s.parent.FullName() + "." + s.name
}

func (s *SubNamespace) LookupLocal(name string) (*Declaration, bool) {
	return s.decls.get(name)
}

// IsUniqueLocal reports whether name is free for a new direct declaration
// of this namespace. It deliberately does not descend into sub-namespaces:
// sibling sub-namespaces may reuse an identifier used by another sibling,
// only direct-declaration collisions within the same namespace are
// rejected. See DESIGN.md's open-question decision on this point.
func (s *SubNamespace) IsUniqueLocal(name string) bool {
	return !s.decls.has(name)
}

func (s *SubNamespace) Parent() (Scope, bool) { return s.parent, s.parent != nil }

// Declarations returns the declarations directly owned by s, in insertion
// order.
func (s *SubNamespace) Declarations() []*Declaration { return s.decls.decls() }

// SubNamespaces returns the direct children of s, in insertion order.
func (s *SubNamespace) SubNamespaces() []*SubNamespace { return s.subs }

// AddDeclaration inserts decl, reporting false on an identifier collision
// with an existing direct declaration of s.
func (s *SubNamespace) AddDeclaration(decl *Declaration) bool {
	return s.decls.insert(decl.Identifier, decl)
}

// AddSubNamespace appends name as a new direct child of s and returns it.
func (s *SubNamespace) AddSubNamespace(name string) *SubNamespace {
	sub := &SubNamespace{name: name, parent: s, decls: newDeclSet()}
	s.subs = append(s.subs, sub)
	return sub
}

// DeclKeyword is the keyword a ValueDecl was introduced with.
type DeclKeyword uint8

const (
	KwVar DeclKeyword = iota
	KwLet
	KwDef
)

func (k DeclKeyword) String() string {
	switch k {
	case KwVar:
		return "var"
	case KwLet:
		return "let"
	case KwDef:
		return "def"
	default:
		return "unknown"
	}
}

// DeclKind distinguishes the three shapes a ValueDecl's body can take.
type DeclKind int

const (
	// EmptyDecl has no initializer. Only valid, in a completed tree, as a
	// function parameter (whose "body" is the containing function's block).
	EmptyDecl DeclKind = iota
	// AssignDecl is '= Expr ;'.
	AssignDecl
	// FuncDecl is '(Params) -> Type FuncBody'.
	FuncDecl
)

// Declaration is currently always a ValueDecl; the field is kept as its own
// type to leave room for future declaration variants without reshaping
// every caller.
type Declaration struct {
	Public     bool
	Keyword    DeclKeyword
	Identifier string
	Type       TypeKind
	Kind       DeclKind
	// Value holds the initializer expression for AssignDecl, the body
	// expression for FuncDecl, and is nil for EmptyDecl.
	Value Expression
	// Params is populated only when Kind == FuncDecl.
	Params []*Argument
	Pos    token.Pos

	// enclosing is the namespace scope this declaration was parsed into. A
	// FuncDecl uses it as the link the resolver's chain walk follows from
	// the function's parameter scope to its enclosing namespace.
	enclosing Scope
}

// SetEnclosing records the namespace scope decl was declared in. The parser
// calls this once, right after constructing decl.
func (d *Declaration) SetEnclosing(scope Scope) { d.enclosing = scope }

// FullName identifies d as a Function scope for diagnostics: the
// enclosing namespace's full name plus the function's own identifier.
func (d *Declaration) FullName() string {
	if d.enclosing == nil {
		return d.Identifier
	}
	return d.enclosing.FullName() + "." + d.Identifier
}

// LookupLocal treats a FuncDecl's parameters as its local scope: the
// function's own block has no declarations of its own in this core, only
// the parameters it was given.
func (d *Declaration) LookupLocal(name string) (*Declaration, bool) {
	for _, p := range d.Params {
		if p.Decl.Identifier == name {
			return p.Decl, true
		}
	}
	return nil, false
}

func (d *Declaration) IsUniqueLocal(name string) bool {
	_, ok := d.LookupLocal(name)
	return !ok
}

func (d *Declaration) Parent() (Scope, bool) {
	if d.enclosing == nil {
		return nil, false
	}
	return d.enclosing, true
}

// Argument wraps a 'let' parameter declaration: EmptyDecl, required type.
type Argument struct {
	Decl *Declaration
}

// Primitive enumerates the fixed-width built-in types.
type Primitive uint8

const (
	U1 Primitive = iota
	U8
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128
	F16
	F32
	F64
	F128
	PrimBool
)

var primitiveNames = map[string]Primitive{
	"U1": U1, "U8": U8, "U16": U16, "U32": U32, "U64": U64, "U128": U128,
	"I8": I8, "I16": I16, "I32": I32, "I64": I64, "I128": I128,
	"F16": F16, "F32": F32, "F64": F64, "F128": F128,
	"Bool": PrimBool,
}

// LookupPrimitive reports whether word names a primitive type and, if so,
// which one.
func LookupPrimitive(word string) (Primitive, bool) {
	p, ok := primitiveNames[word]
	return p, ok
}

func (p Primitive) String() string {
	for name, v := range primitiveNames {
		if v == p {
			return name
		}
	}
	return "unknown primitive"
}

// IsInteger reports whether p is an integer-kind primitive, including the
// one-bit kinds U1 and PrimBool.
func (p Primitive) IsInteger() bool {
	switch p {
	case U1, U8, U16, U32, U64, U128, I8, I16, I32, I64, I128, PrimBool:
		return true
	default:
		return false
	}
}

// IsFloat reports whether p is a float-kind primitive.
func (p Primitive) IsFloat() bool {
	switch p {
	case F16, F32, F64, F128:
		return true
	default:
		return false
	}
}

// TypeKindTag discriminates the TypeKind sum type.
type TypeKindTag uint8

const (
	TypeInferred TypeKindTag = iota
	TypeIdentifier
	TypeFunc
	TypePrimitive
)

// TypeKind is a closed sum type; exactly one of its fields is meaningful,
// selected by Tag. Modeled as a tagged struct rather than an interface
// because every consumer (parser, resolver, irgen) switches on all four
// cases exhaustively and a struct keeps that switch a single type switch
// away instead of spread across four concrete implementations.
type TypeKind struct {
	Tag       TypeKindTag
	Ident     *ScopedId // TypeIdentifier
	Func      *FuncType // TypeFunc
	Primitive Primitive // TypePrimitive
}

// FuncType is the type of a function declaration.
type FuncType struct {
	Arguments  []*Argument
	ReturnType TypeKind
}

// Inferred reports whether t is the placeholder type used before inference
// (or, in this core, where a type was simply omitted and never filled in).
func (t TypeKind) Inferred() bool { return t.Tag == TypeInferred }

// ExpressionTag discriminates the Expression sum type.
type ExpressionTag uint8

const (
	ExprIdentifier ExpressionTag = iota
	ExprInteger
	ExprDecimal
	ExprBool
)

// Expression is a closed sum type over the leaf expressions this core
// supports: an identifier reference, or a literal. Numeric literals keep
// their source text; they are parsed to values only at emission time (spec
// §3, "Numeric semantics").
type Expression struct {
	Tag   ExpressionTag
	Ident *ScopedId // ExprIdentifier
	Text  string    // ExprInteger, ExprDecimal: source text of the literal
	Bool  bool      // ExprBool
	Pos   token.Pos
}

// IdKindTag discriminates ScopedId's two states.
type IdKindTag uint8

const (
	IdUnresolved IdKindTag = iota
	IdResolved
)

// ScopedId is a name-site: it starts Unresolved (recording the scope it was
// used in, and a reserved-for-later qualified path) and is rewritten to
// Resolved in place by the resolver once it finds the declaration it
// names. No other field of the tree changes after parsing.
type ScopedId struct {
	Name string
	// Pos is the position of the identifier's use site. Recorded so a
	// resolution failure (spec §7, which otherwise carries no location) can
	// still point somewhere useful.
	Pos token.Pos

	Tag IdKindTag

	// Unresolved fields.
	ScopeUsed      Scope
	ScopeDescribed []string // reserved; currently always empty

	// Resolved fields.
	Declaration *Declaration
	Scope       Scope
}

// MarkResolved rewrites id in place to point at decl, found in scope.
func (id *ScopedId) MarkResolved(decl *Declaration, scope Scope) {
	id.Tag = IdResolved
	id.Declaration = decl
	id.Scope = scope
}
