package irgen

import "github.com/marc9622/mylangc/lang/ast"

// irType returns the LLVM IR spelling of a primitive. U1 and Bool are
// distinct source-level primitives but both emit i1 (spec §3, "Numeric
// semantics").
func irType(p ast.Primitive) string {
	switch p {
	case ast.U1, ast.PrimBool:
		return "i1"
	case ast.U8, ast.I8:
		return "i8"
	case ast.U16, ast.I16:
		return "i16"
	case ast.U32, ast.I32:
		return "i32"
	case ast.U64, ast.I64:
		return "i64"
	case ast.U128, ast.I128:
		return "i128"
	case ast.F16:
		return "half"
	case ast.F32:
		return "float"
	case ast.F64:
		return "double"
	case ast.F128:
		return "fp128"
	default:
		return ""
	}
}

func isTypeInt(t ast.TypeKind) bool {
	return t.Tag == ast.TypePrimitive && t.Primitive.IsInteger()
}

func isTypeFloat(t ast.TypeKind) bool {
	return t.Tag == ast.TypePrimitive && t.Primitive.IsFloat()
}

func irTypeOf(t ast.TypeKind) string {
	if t.Tag != ast.TypePrimitive {
		return ""
	}
	return irType(t.Primitive)
}

func linkageOf(public bool) string {
	if public {
		return "external"
	}
	return "private"
}

func mutabilityOf(kw ast.DeclKeyword) string {
	if kw == ast.KwVar {
		return "global"
	}
	return "constant"
}
