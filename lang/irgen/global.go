package irgen

import (
	"github.com/marc9622/mylangc/lang/ast"
)

// addGlobalAssign emits a single "@name = ..." global definition for decl's
// AssignDecl initializer, per spec §4.5's "Global value emission" rules.
func (cg *CodeGen) addGlobalAssign(mod *module, decl *ast.Declaration) error {
	switch decl.Value.Tag {
	case ast.ExprIdentifier:
		return cg.addGlobalAssignIdentifier(mod, decl)

	case ast.ExprInteger:
		if isTypeInt(decl.Type) {
			cg.emitGlobal(mod, decl, irTypeOf(decl.Type), decl.Value.Text)
			return nil
		}
		if isTypeFloat(decl.Type) {
			cg.emitGlobal(mod, decl, irTypeOf(decl.Type), decl.Value.Text)
			return nil
		}
		return emitErrorf(decl.Pos, "todo: integer literal initializer of %q is not implemented for this declared type", decl.Identifier)

	case ast.ExprDecimal:
		if isTypeFloat(decl.Type) {
			cg.emitGlobal(mod, decl, irTypeOf(decl.Type), decl.Value.Text)
			return nil
		}
		return emitErrorf(decl.Pos, "not implemented: decimal literal initializer with integer declared type for %q", decl.Identifier)

	case ast.ExprBool:
		if isTypeInt(decl.Type) {
			text := "0"
			if decl.Value.Bool {
				text = "1"
			}
			cg.emitGlobal(mod, decl, irTypeOf(decl.Type), text)
			return nil
		}
		return emitErrorf(decl.Pos, "not implemented: bool literal initializer with float declared type for %q", decl.Identifier)

	default:
		return emitErrorf(decl.Pos, "irgen: unknown expression kind initializing %q", decl.Identifier)
	}
}

// addGlobalAssignIdentifier handles a global initialized by reference to
// another already-emitted global, including across namespaces: the
// referent's namespace full name is looked up in the module map and its
// global fetched by identifier.
func (cg *CodeGen) addGlobalAssignIdentifier(mod *module, decl *ast.Declaration) error {
	id := decl.Value.Ident
	if id.Tag != ast.IdResolved {
		return emitErrorf(id.Pos, "irgen: identifier %q used before resolution", id.Name)
	}

	otherMod, ok := cg.modules[id.Scope.FullName()]
	if !ok {
		return emitErrorf(id.Pos, "irgen: unknown namespace %q referenced by %q", id.Scope.FullName(), id.Name)
	}
	other, ok := otherMod.globals[id.Declaration.Identifier]
	if !ok {
		return emitErrorf(id.Pos, "irgen: %q does not name an already-emitted global", id.Name)
	}

	switch {
	case isTypeInt(decl.Type):
		if !other.isInt {
			return emitErrorf(id.Pos, "not implemented: identifier %q of this type is not implemented", id.Name)
		}
	case isTypeFloat(decl.Type):
		if other.isInt {
			return emitErrorf(id.Pos, "not implemented: identifier %q of this type is not implemented", id.Name)
		}
	default:
		return emitErrorf(decl.Pos, "not implemented: identifier initializer of this declared type is not implemented for %q", decl.Identifier)
	}

	cg.emitGlobal(mod, decl, irTypeOf(decl.Type), other.constText)
	return nil
}
