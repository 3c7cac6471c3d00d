// Package irgen walks a fully resolved namespace tree and emits its
// textual LLVM IR. There is no Go LLVM binding anywhere in the retrieved
// corpus (the only LLVM-adjacent code is the Rust inkwell usage this
// system was distilled from), so IR is built directly as text via
// strings.Builder rather than through a real LLVM module API — see
// DESIGN.md for the justification of this stdlib-only exception.
package irgen

import (
	"fmt"
	"strings"

	"github.com/marc9622/mylangc/lang/ast"
	"github.com/marc9622/mylangc/lang/token"
)

// EmitError reports a failure to lower a declaration to IR, at the position
// of the declaration (or identifier reference) responsible.
type EmitError struct {
	Pos token.Pos
	Msg string
}

func (e *EmitError) Error() string { return fmt.Sprintf("%s (%s)", e.Msg, e.Pos) }

func emitErrorf(pos token.Pos, format string, args ...any) error {
	return &EmitError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// module accumulates the IR text for one namespace and the globals it has
// already emitted, so a later declaration in the same or another module can
// reference it by name (spec §4.5, "cross-module identifier references").
type module struct {
	fullName string
	lines    []string
	globals  map[string]*globalInfo
}

type globalInfo struct {
	irType    string
	isInt     bool
	constText string
}

func newModule(fullName string) *module {
	return &module{fullName: fullName, globals: make(map[string]*globalInfo)}
}

func (m *module) writeLine(line string) { m.lines = append(m.lines, line) }

func (m *module) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("; module %q\n", m.fullName))
	for _, l := range m.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// CodeGen holds one module per namespace full name, mirroring the
// 'modules' map of the original codegenerator's CodeGen struct.
type CodeGen struct {
	modules map[string]*module
}

func newCodeGen() *CodeGen {
	return &CodeGen{modules: make(map[string]*module)}
}

type pendingDecl struct {
	fullName string
	decl     *ast.Declaration
}

// Generate consumes a fully resolved root namespace and returns the
// textual IR of the root module.
func Generate(root *ast.GlobalNamespace) (string, error) {
	cg := newCodeGen()
	var queue []pendingDecl
	cg.collect(root.FullName(), root.Declarations(), root.SubNamespaces(), &queue)

	for _, item := range queue {
		mod := cg.modules[item.fullName]
		if err := cg.addGlobal(mod, item.decl); err != nil {
			return "", err
		}
	}

	return cg.modules[""].String(), nil
}

// collect creates one module per namespace (root and every descendant) and
// queues every namespaced declaration in the tree, matching the original
// emitter's two-phase "create all modules, then process all declarations"
// structure, so the module-map lookup for a referenced identifier's
// namespace never misses. Declarations are queued depth-first (a
// namespace's own declarations before its sub-namespaces'), and a global
// initialized from an identifier is only emitted if the referenced global
// was emitted earlier in that order.
func (cg *CodeGen) collect(fullName string, decls []*ast.Declaration, subs []*ast.SubNamespace, queue *[]pendingDecl) {
	cg.modules[fullName] = newModule(fullName)
	for _, d := range decls {
		*queue = append(*queue, pendingDecl{fullName: fullName, decl: d})
	}
	for _, s := range subs {
		cg.collect(s.FullName(), s.Declarations(), s.SubNamespaces(), queue)
	}
}

func (cg *CodeGen) addGlobal(mod *module, decl *ast.Declaration) error {
	switch decl.Kind {
	case ast.EmptyDecl:
		return emitErrorf(decl.Pos, "todo: empty declaration %q at the top level is not implemented", decl.Identifier)
	case ast.AssignDecl:
		return cg.addGlobalAssign(mod, decl)
	case ast.FuncDecl:
		return cg.addGlobalFunction(mod, decl)
	default:
		return emitErrorf(decl.Pos, "irgen: unknown declaration kind for %q", decl.Identifier)
	}
}

// emitGlobal writes one "@name = linkage mutability type init" line and
// records it in mod.globals for later cross-reference.
func (cg *CodeGen) emitGlobal(mod *module, decl *ast.Declaration, irTy, constText string) {
	mod.writeLine(fmt.Sprintf("@%s = %s %s %s %s", decl.Identifier, linkageOf(decl.Public), mutabilityOf(decl.Keyword), irTy, constText))
	mod.globals[decl.Identifier] = &globalInfo{irType: irTy, isInt: isTypeInt(decl.Type), constText: constText}
}
