package codegen

import (
	"errors"
	"fmt"

	"github.com/apiforge/tsgen/internal/ast"
)

// Item describes one binding of a named import or export clause before
// the type-only placement rule has been applied. Name is required.
// Alias renames the binding on the consuming side. TypeOnly asks for
// the binding to be erased from the compiled output.
type Item struct {
	Name     string
	Alias    string
	TypeOnly bool
}

// normalizeItems converts the shorthand forms accepted by NamedExports
// and NamedImports into a flat Item list. A plain string is the most
// common case and stands for an unaliased value binding.
func normalizeItems(items []any) ([]Item, error) {
	normalized := make([]Item, 0, len(items))
	for i, raw := range items {
		switch v := raw.(type) {
		case string:
			normalized = append(normalized, Item{Name: v})
		case Item:
			normalized = append(normalized, v)
		default:
			return nil, fmt.Errorf("item %d has unsupported type %T, must be a string or codegen.Item", i, raw)
		}
	}
	return normalized, nil
}

// applyTypeOnlyPlacement decides where the type-only marker lives for a
// named import or export clause. TypeScript allows the marker on the
// whole clause or on individual bindings, and mixing a clause marker
// with binding markers is a syntax error, so exactly one of the two
// layers may carry it:
//
//   - every binding type-only: the marker is hoisted to the clause and
//     the per binding markers are dropped
//   - at least one value binding: the clause stays a value clause and
//     the markers stay on the individual bindings
//
// An empty clause counts as all type-only.
func applyTypeOnlyPlacement(items []Item) ([]ast.Specifier, bool) {
	hasValueBinding := false
	for _, item := range items {
		if !item.TypeOnly {
			hasValueBinding = true
			break
		}
	}

	specifiers := make([]ast.Specifier, len(items))
	for i, item := range items {
		specifiers[i] = ast.Specifier{Name: item.Name, Alias: item.Alias}
		if hasValueBinding {
			specifiers[i].TypeOnly = item.TypeOnly
		}
	}
	return specifiers, !hasValueBinding
}

// ExportAll returns a declaration that re-exports every export of
// another module:
//
//	export * from "module";
//
// An error is returned if the module path is empty.
func ExportAll(module string) (*ast.ExportAllDecl, error) {
	if module == "" {
		return nil, errors.New("a re-export must name the module it exports from")
	}
	return &ast.ExportAllDecl{Module: module}, nil
}

// NamedExports returns a declaration that re-exports the given bindings
// from another module:
//
//	export { A, type B as C } from "module";
//
// Each item may be a string, which stands for an unaliased value
// binding, or a codegen.Item for aliased or type-only bindings. The
// type-only marker is hoisted to the clause when every binding is
// type-only and kept on the individual bindings otherwise. An empty
// item list produces the degenerate all type-only clause
// "export type {} from ...".
func NamedExports(module string, items ...any) (*ast.NamedExportDecl, error) {
	if module == "" {
		return nil, errors.New("a named re-export must name the module it exports from")
	}
	normalized, err := normalizeItems(items)
	if err != nil {
		return nil, fmt.Errorf("named exports from %q: %w", module, err)
	}

	specifiers, typeOnly := applyTypeOnlyPlacement(normalized)
	return &ast.NamedExportDecl{
		Specifiers: specifiers,
		Module:     module,
		TypeOnly:   typeOnly,
	}, nil
}

// NamedImports returns a declaration that imports the given bindings
// from another module:
//
//	import { A, type B as C } from "module";
//
// Items are accepted and normalized exactly like NamedExports items,
// and the type-only marker follows the same clause hoisting rule, so
// one item list produces symmetric import and export clauses.
func NamedImports(module string, items ...any) (*ast.NamedImportDecl, error) {
	if module == "" {
		return nil, errors.New("a named import must name the module it imports from")
	}
	normalized, err := normalizeItems(items)
	if err != nil {
		return nil, fmt.Errorf("named imports from %q: %w", module, err)
	}

	specifiers, typeOnly := applyTypeOnlyPlacement(normalized)
	return &ast.NamedImportDecl{
		Specifiers: specifiers,
		Module:     module,
		TypeOnly:   typeOnly,
	}, nil
}
