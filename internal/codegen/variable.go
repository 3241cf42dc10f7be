package codegen

import (
	"fmt"

	"github.com/apiforge/tsgen/internal/ast"
	"github.com/apiforge/tsgen/internal/comment"
)

// ConstOptions controls the optional parts of a const declaration. The
// zero value produces a plain module private declaration:
//
//	const name = init;
type ConstOptions struct {
	// Destructure declares the name as an object binding pattern that
	// extracts the property of the same name from the initializer:
	//
	//	const { name } = init;
	Destructure bool

	// ConstAssertion wraps the initializer in "as const" so the type
	// checker keeps its literal types.
	ConstAssertion bool

	// Exported adds the export keyword.
	Exported bool

	// Type is an optional named type annotation for the binding.
	Type string

	// Comment is an optional leading comment block, one element per
	// line.
	Comment []string
}

// ConstDeclaration returns a single binding const declaration:
//
//	export const name: Type = init as const;
//
// Every combination of ConstOptions is accepted; an error is returned
// only when the initializer is missing, a typed nil counting as
// missing. The name is not validated, naming rules belong to the
// downstream type checker.
func ConstDeclaration(name string, init ast.Expr, opts ConstOptions) (*ast.ConstDecl, error) {
	if ast.IsNil(init) {
		return nil, fmt.Errorf("const declaration %q must have an initializer", name)
	}

	if opts.ConstAssertion {
		init = &ast.AsConstExpr{X: init}
	}

	decl := &ast.ConstDecl{
		Name:        name,
		Init:        init,
		Destructure: opts.Destructure,
		Exported:    opts.Exported,
	}
	if opts.Type != "" {
		decl.Type = &ast.TypeRef{Name: opts.Type}
	}
	if len(opts.Comment) > 0 {
		comment.Attach(decl, opts.Comment...)
	}
	return decl, nil
}
