// Package render prints declaration trees as TypeScript source text.
//
// Output is deterministic: the same tree always renders to the same
// bytes, which keeps generated files diffable. The renderer fails
// instead of guessing when it meets a nil or unknown node.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apiforge/tsgen/internal/ast"
)

// File renders a module file: an optional header of line comments
// followed by the declarations, separated by blank lines, with a
// trailing newline.
func File(header []string, decls []ast.Decl) (string, error) {
	parts := make([]string, 0, len(decls)+1)
	if len(header) > 0 {
		b := strings.Builder{}
		for i, line := range header {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line == "" {
				b.WriteString("//")
			} else {
				b.WriteString("// ")
				b.WriteString(line)
			}
		}
		parts = append(parts, b.String())
	}

	for _, d := range decls {
		s, err := Decl(d)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

// Decl renders a single declaration, including its leading comment
// block, without a trailing newline.
func Decl(d ast.Decl) (string, error) {
	p := &printer{}
	p.decl(d)
	if p.err != nil {
		return "", p.err
	}
	return p.b.String(), nil
}

// Expr renders a single expression.
func Expr(e ast.Expr) (string, error) {
	p := &printer{}
	p.expr(e)
	if p.err != nil {
		return "", p.err
	}
	return p.b.String(), nil
}

// Type renders a single type annotation.
func Type(t ast.TypeNode) (string, error) {
	p := &printer{}
	p.typ(t)
	if p.err != nil {
		return "", p.err
	}
	return p.b.String(), nil
}

// printer accumulates output and latches the first error it meets, so
// the node walk can stay free of error plumbing.
type printer struct {
	b   strings.Builder
	err error
}

func (p *printer) print(s string) {
	p.b.WriteString(s)
}

func (p *printer) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf(format, args...)
	}
}

func (p *printer) decl(d ast.Decl) {
	if ast.IsNil(d) {
		p.fail("cannot render a nil declaration")
		return
	}
	p.comment(*d.Comments())

	switch d := d.(type) {
	case *ast.ExportAllDecl:
		p.print("export * from ")
		p.print(quote(d.Module))
		p.print(";")
	case *ast.NamedExportDecl:
		p.print("export ")
		if d.TypeOnly {
			p.print("type ")
		}
		p.clause(d.Specifiers)
		p.print(" from ")
		p.print(quote(d.Module))
		p.print(";")
	case *ast.NamedImportDecl:
		p.print("import ")
		if d.TypeOnly {
			p.print("type ")
		}
		p.clause(d.Specifiers)
		p.print(" from ")
		p.print(quote(d.Module))
		p.print(";")
	case *ast.ConstDecl:
		if d.Exported {
			p.print("export ")
		}
		p.print("const ")
		if d.Destructure {
			p.print("{ ")
			p.print(d.Name)
			p.print(" }")
		} else {
			p.print(d.Name)
		}
		if d.Type != nil {
			p.print(": ")
			p.typ(d.Type)
		}
		p.print(" = ")
		p.expr(d.Init)
		p.print(";")
	case *ast.TypeAliasDecl:
		if d.Exported {
			p.print("export ")
		}
		p.print("type ")
		p.print(d.Name)
		p.print(" = ")
		p.typ(d.Type)
		p.print(";")
	default:
		p.fail("cannot render declaration of type %T", d)
	}
}

// comment prints a leading comment block in JSDoc form so editors
// surface it on the declaration that follows.
func (p *printer) comment(doc ast.CommentBlock) {
	if len(doc) == 0 {
		return
	}
	p.print("/**\n")
	for _, line := range doc {
		if line == "" {
			p.print(" *\n")
		} else {
			p.print(" * ")
			p.print(line)
			p.print("\n")
		}
	}
	p.print(" */\n")
}

func (p *printer) clause(specifiers []ast.Specifier) {
	if len(specifiers) == 0 {
		p.print("{}")
		return
	}
	p.print("{ ")
	for i, s := range specifiers {
		if i > 0 {
			p.print(", ")
		}
		if s.TypeOnly {
			p.print("type ")
		}
		p.print(s.Name)
		if s.Alias != "" {
			p.print(" as ")
			p.print(s.Alias)
		}
	}
	p.print(" }")
}

func (p *printer) expr(e ast.Expr) {
	if ast.IsNil(e) {
		p.fail("cannot render a nil expression")
		return
	}
	switch e := e.(type) {
	case *ast.Ident:
		p.print(e.Name)
	case *ast.StringLit:
		p.print(quote(e.Value))
	case *ast.NumberLit:
		p.print(e.Value)
	case *ast.BoolLit:
		p.print(strconv.FormatBool(e.Value))
	case *ast.MemberExpr:
		p.expr(e.X)
		p.print(".")
		p.print(e.Name)
	case *ast.CallExpr:
		p.expr(e.Fun)
		if len(e.TypeArgs) > 0 {
			p.print("<")
			for i, t := range e.TypeArgs {
				if i > 0 {
					p.print(", ")
				}
				p.typ(t)
			}
			p.print(">")
		}
		p.print("(")
		for i, a := range e.Args {
			if i > 0 {
				p.print(", ")
			}
			p.expr(a)
		}
		p.print(")")
	case *ast.ObjectLit:
		if len(e.Fields) == 0 {
			p.print("{}")
			return
		}
		p.print("{ ")
		for i, f := range e.Fields {
			if i > 0 {
				p.print(", ")
			}
			p.print(f.Name)
			p.print(": ")
			p.expr(f.Value)
		}
		p.print(" }")
	case *ast.ArrayLit:
		p.print("[")
		for i, el := range e.Elems {
			if i > 0 {
				p.print(", ")
			}
			p.expr(el)
		}
		p.print("]")
	case *ast.AsConstExpr:
		p.expr(e.X)
		p.print(" as const")
	default:
		p.fail("cannot render expression of type %T", e)
	}
}

func (p *printer) typ(t ast.TypeNode) {
	if ast.IsNil(t) {
		p.fail("cannot render a nil type annotation")
		return
	}
	switch t := t.(type) {
	case *ast.TypeRef:
		p.print(t.Name)
		if len(t.Args) > 0 {
			p.print("<")
			for i, a := range t.Args {
				if i > 0 {
					p.print(", ")
				}
				p.typ(a)
			}
			p.print(">")
		}
	case *ast.RawType:
		p.print(t.Text)
	default:
		p.fail("cannot render type annotation of type %T", t)
	}
}

// quote renders a double quoted string literal. strconv escaping
// matches TypeScript string literal escaping for everything the
// generator emits.
func quote(s string) string {
	return strconv.Quote(s)
}
