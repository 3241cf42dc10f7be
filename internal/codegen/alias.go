package codegen

import (
	"fmt"

	"github.com/apiforge/tsgen/internal/ast"
)

// TypeAlias returns a named type alias declaration:
//
//	export type Name = Type;
//
// The type text is carried verbatim, which keeps inline object types
// out of the node model. An error is returned when the type text is
// empty.
func TypeAlias(name string, typeText string, exported bool) (*ast.TypeAliasDecl, error) {
	if typeText == "" {
		return nil, fmt.Errorf("type alias %q must have a type", name)
	}
	return &ast.TypeAliasDecl{
		Name:     name,
		Exported: exported,
		Type:     &ast.RawType{Text: typeText},
	}, nil
}
