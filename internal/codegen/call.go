package codegen

import (
	"errors"
	"fmt"

	"github.com/apiforge/tsgen/internal/ast"
)

// Call returns a call expression, optionally instantiated with type
// arguments:
//
//	callee<TypeArgs>(args)
//
// The callee may be a string, which becomes a bare identifier
// reference, or a prebuilt *ast.MemberExpr, which is used unchanged.
// Each argument may be a string, which becomes an identifier
// reference, or an ast.Expr, which is used verbatim; argument order is
// preserved. Nil nodes are rejected in every position, typed nils
// included. Identifier legality is not checked here, that belongs to
// the downstream type checker.
func Call(callee any, args []any, typeArgs ...ast.TypeNode) (*ast.CallExpr, error) {
	fun, err := calleeExpr(callee)
	if err != nil {
		return nil, err
	}

	exprs := make([]ast.Expr, 0, len(args))
	for i, raw := range args {
		switch v := raw.(type) {
		case string:
			exprs = append(exprs, &ast.Ident{Name: v})
		case ast.Expr:
			if ast.IsNil(v) {
				return nil, fmt.Errorf("call argument %d must not be nil", i)
			}
			exprs = append(exprs, v)
		default:
			return nil, fmt.Errorf("call argument %d has unsupported type %T, must be a string or ast.Expr", i, raw)
		}
	}

	for i, t := range typeArgs {
		if ast.IsNil(t) {
			return nil, fmt.Errorf("call type argument %d must not be nil", i)
		}
	}

	return &ast.CallExpr{
		Fun:      fun,
		TypeArgs: typeArgs,
		Args:     exprs,
	}, nil
}

func calleeExpr(callee any) (ast.Expr, error) {
	switch v := callee.(type) {
	case string:
		return &ast.Ident{Name: v}, nil
	case *ast.MemberExpr:
		if v == nil {
			return nil, errors.New("the callee of a call must not be nil")
		}
		return v, nil
	default:
		return nil, fmt.Errorf("callee has unsupported type %T, must be a string or *ast.MemberExpr", callee)
	}
}
