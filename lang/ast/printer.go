package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer dumps a namespace tree for diagnostics (the driver's .ast
// artifact). Indentation mirrors the tree depth, one ". " per level, in the
// same style as nenuphar's ast.Printer.
type Printer struct {
	Output io.Writer
}

// Print writes a full dump of root to p.Output.
func (p *Printer) Print(root *GlobalNamespace) error {
	pp := &printer{w: p.Output}
	pp.printNamespace("", root.Declarations(), root.SubNamespaces(), 0)
	return pp.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) printNamespace(fullName string, decls []*Declaration, subs []*SubNamespace, depth int) {
	indent := strings.Repeat(". ", depth)
	label := fullName
	if label == "" {
		label = "<global>"
	}
	p.printf("%snamespace %s {#decls=%d, #subs=%d}\n", indent, label, len(decls), len(subs))

	for _, d := range decls {
		p.printDeclaration(d, depth+1)
	}
	for _, s := range subs {
		p.printNamespace(s.FullName(), s.Declarations(), s.SubNamespaces(), depth+1)
	}
}

func (p *printer) printDeclaration(d *Declaration, depth int) {
	indent := strings.Repeat(". ", depth)
	vis := "priv"
	if d.Public {
		vis = "pub"
	}
	p.printf("%s%s %s %s: %s\n", indent, vis, d.Keyword, d.Identifier, formatType(d.Type))

	switch d.Kind {
	case AssignDecl:
		p.printf("%s= %s\n", strings.Repeat(". ", depth+1), formatExpr(d.Value))
	case FuncDecl:
		for _, arg := range d.Params {
			p.printf("%sparam %s: %s\n", strings.Repeat(". ", depth+1),
				arg.Decl.Identifier, formatType(arg.Decl.Type))
		}
		p.printf("%sdo %s\n", strings.Repeat(". ", depth+1), formatExpr(d.Value))
	}
}

func formatType(t TypeKind) string {
	switch t.Tag {
	case TypeInferred:
		return "<inferred>"
	case TypeIdentifier:
		return t.Ident.Name
	case TypePrimitive:
		return t.Primitive.String()
	case TypeFunc:
		parts := make([]string, len(t.Func.Arguments))
		for i, a := range t.Func.Arguments {
			parts[i] = formatType(a.Decl.Type)
		}
		return "(" + strings.Join(parts, ", ") + ") -> " + formatType(t.Func.ReturnType)
	default:
		return "<unknown type>"
	}
}

func formatExpr(e Expression) string {
	switch e.Tag {
	case ExprIdentifier:
		return e.Ident.Name
	case ExprInteger, ExprDecimal:
		return e.Text
	case ExprBool:
		if e.Bool {
			return "true"
		}
		return "false"
	default:
		return "<unknown expr>"
	}
}
