package irgen

import (
	"fmt"
	"strings"

	"github.com/marc9622/mylangc/lang/ast"
)

// addGlobalFunction emits one function definition for decl's FuncDecl body,
// per spec §4.5's "Function emission" rules. The body expression (a
// 'do'-expression) always produces a single "entry" block with a single
// return, grounded on the original codegenerator's add_global_int_function /
// add_global_float_function split.
func (cg *CodeGen) addGlobalFunction(mod *module, decl *ast.Declaration) error {
	if decl.Type.Tag != ast.TypeFunc {
		panic("irgen: FuncDecl without a FuncType")
	}
	funcType := decl.Type.Func

	argTypes := make([]string, len(funcType.Arguments))
	for i, arg := range funcType.Arguments {
		if arg.Decl.Type.Tag != ast.TypePrimitive {
			return emitErrorf(arg.Decl.Pos, "todo: non-primitive parameter %q is not implemented", arg.Decl.Identifier)
		}
		argTypes[i] = irTypeOf(arg.Decl.Type)
	}

	switch {
	case isTypeInt(funcType.ReturnType):
		return cg.emitFunction(mod, decl, funcType, argTypes, irTypeOf(funcType.ReturnType), true)
	case isTypeFloat(funcType.ReturnType):
		return cg.emitFunction(mod, decl, funcType, argTypes, irTypeOf(funcType.ReturnType), false)
	default:
		return emitErrorf(decl.Pos, "todo: function declaration %q of this return type is not implemented", decl.Identifier)
	}
}

// emitFunction writes the function header and its single "entry" block,
// resolving decl.Value (the 'do' body expression) into the single return
// instruction it compiles to.
func (cg *CodeGen) emitFunction(mod *module, decl *ast.Declaration, funcType *ast.FuncType, argTypes []string, retTy string, retIsInt bool) error {
	params := make([]string, len(funcType.Arguments))
	for i, arg := range funcType.Arguments {
		params[i] = fmt.Sprintf("%s %%%s", argTypes[i], arg.Decl.Identifier)
	}

	retExpr, err := cg.functionReturnValue(decl.Value, funcType, retIsInt)
	if err != nil {
		return err
	}

	mod.writeLine(fmt.Sprintf("define %s %s @%s(%s) {", linkageOf(decl.Public), retTy, decl.Identifier, strings.Join(params, ", ")))
	mod.writeLine("entry:")
	mod.writeLine(fmt.Sprintf("  ret %s %s", retTy, retExpr))
	mod.writeLine("}")
	return nil
}

// functionReturnValue computes the IR operand text for the function's single
// return instruction, given its 'do' body expression.
func (cg *CodeGen) functionReturnValue(body ast.Expression, funcType *ast.FuncType, retIsInt bool) (string, error) {
	switch body.Tag {
	case ast.ExprIdentifier:
		return cg.functionReturnIdentifier(body, funcType, retIsInt)

	case ast.ExprInteger:
		if retIsInt {
			return body.Text, nil
		}
		return body.Text, nil // an Int literal is permitted as a float body too (spec §4.5).

	case ast.ExprDecimal:
		if !retIsInt {
			return body.Text, nil
		}
		return "", emitErrorf(body.Pos, "not implemented: decimal literal body with integer return type")

	case ast.ExprBool:
		if retIsInt {
			if body.Bool {
				return "1", nil
			}
			return "0", nil
		}
		return "", emitErrorf(body.Pos, "not implemented: bool literal body with float return type")

	default:
		return "", emitErrorf(body.Pos, "irgen: unknown expression kind in function body")
	}
}

// functionReturnIdentifier handles a 'do x;' body naming one of the
// function's own parameters: the parameter's type must match the return
// type's kind (integer-to-integer or float-to-float), and the return simply
// loads the parameter value (a bare %name reference, since parameters are
// passed by value in this textual emission).
func (cg *CodeGen) functionReturnIdentifier(body ast.Expression, funcType *ast.FuncType, retIsInt bool) (string, error) {
	id := body.Ident
	if id.Tag != ast.IdResolved {
		return "", emitErrorf(id.Pos, "irgen: identifier %q used before resolution", id.Name)
	}

	var param *ast.Argument
	for _, arg := range funcType.Arguments {
		if arg.Decl == id.Declaration {
			param = arg
			break
		}
	}
	if param == nil {
		return "", emitErrorf(id.Pos, "not implemented: function body must name one of its own parameters, got %q", id.Name)
	}

	switch {
	case retIsInt && isTypeInt(param.Decl.Type):
	case !retIsInt && isTypeFloat(param.Decl.Type):
	default:
		return "", emitErrorf(id.Pos, "not implemented: parameter %q's type does not match the function's return type kind", id.Name)
	}

	return "%" + param.Decl.Identifier, nil
}
