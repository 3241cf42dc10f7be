package generator

import (
	"fmt"
	"strings"

	"github.com/apiforge/tsgen/generator/symbols"
	"github.com/apiforge/tsgen/internal/ast"
	"github.com/apiforge/tsgen/internal/codegen"
	"github.com/apiforge/tsgen/internal/comment"
	"github.com/apiforge/tsgen/schema"
)

const (
	modelsFile = "models.ts"
	clientFile = "client.ts"
	indexFile  = "index.ts"

	// bindings imported from the schema's runtime package
	runtimeCreateClient  = "createClient"
	runtimeClientOptions = "ClientOptions"
)

// builtinExports are the names every generated SDK exports next to the
// schema models. Schema model names must not collide with them.
var builtinExports = []symbols.Entry{
	{Name: runtimeClientOptions, Kind: symbols.TypeSymbol},
	{Name: "defaults", Kind: symbols.ValueSymbol},
	{Name: "endpoints", Kind: symbols.ValueSymbol},
	{Name: "client", Kind: symbols.ValueSymbol},
	{Name: "request", Kind: symbols.ValueSymbol},
}

// Plan builds the declaration list of every output file. It must be
// called before Render, Write or WriteDiff.
func (m *Manager) Plan() error {
	models, err := m.planModels()
	if err != nil {
		return fmt.Errorf("planning %s: %w", modelsFile, err)
	}
	client, err := m.planClient()
	if err != nil {
		return fmt.Errorf("planning %s: %w", clientFile, err)
	}
	index, err := m.planIndex()
	if err != nil {
		return fmt.Errorf("planning %s: %w", indexFile, err)
	}

	m.files = []*SourceFile{models, client, index}
	return nil
}

// planModels emits one exported type alias per schema model, in schema
// order. Models without a description get an informational notice so
// schema authors can find them.
func (m *Manager) planModels() (*SourceFile, error) {
	file := &SourceFile{Name: modelsFile}
	for _, model := range m.schema.Models {
		alias, err := codegen.TypeAlias(model.Name, model.Type, true)
		if err != nil {
			return nil, err
		}
		if model.Description != "" {
			comment.Attach(alias, model.Description)
		} else {
			comment.Info(alias, fmt.Sprintf("model %s has no description", model.Name))
		}
		file.addDecl(alias)
	}
	return file, nil
}

// planClient emits the client module: the runtime imports, the option
// re-export, and the defaults, endpoints, client and request bindings.
func (m *Manager) planClient() (*SourceFile, error) {
	file := &SourceFile{Name: clientFile}

	imports, err := codegen.NamedImports(m.schema.Runtime,
		runtimeCreateClient,
		codegen.Item{Name: runtimeClientOptions, TypeOnly: true},
	)
	if err != nil {
		return nil, err
	}
	file.addDecl(imports)

	// an import does not re-export, the options type needs its own
	// export clause to reach SDK consumers
	optionsExport, err := codegen.NamedExports(m.schema.Runtime,
		codegen.Item{Name: runtimeClientOptions, TypeOnly: true},
	)
	if err != nil {
		return nil, err
	}
	file.addDecl(optionsExport)

	defaults, err := codegen.ConstDeclaration("defaults", &ast.ObjectLit{
		Fields: []ast.ObjectField{
			{Name: "baseUrl", Value: &ast.StringLit{Value: m.schema.BaseURL}},
		},
	}, codegen.ConstOptions{
		Exported:       true,
		Type:           runtimeClientOptions,
		ConstAssertion: true,
		Comment:        []string{fmt.Sprintf("Default options for the %s client.", m.schema.Name)},
	})
	if err != nil {
		return nil, err
	}
	file.addDecl(defaults)

	endpoints, err := m.planEndpoints()
	if err != nil {
		return nil, err
	}
	file.addDecl(endpoints)

	call, err := codegen.Call(runtimeCreateClient, []any{"defaults"})
	if err != nil {
		return nil, err
	}
	client, err := codegen.ConstDeclaration("client", call, codegen.ConstOptions{
		Exported: true,
		Comment:  []string{"Shared client instance bound to the default options."},
	})
	if err != nil {
		return nil, err
	}
	file.addDecl(client)

	request, err := codegen.ConstDeclaration("request", &ast.Ident{Name: "client"}, codegen.ConstOptions{
		Destructure: true,
		Exported:    true,
		Comment:     []string{"Bare request function for calls outside the generated surface."},
	})
	if err != nil {
		return nil, err
	}
	file.addDecl(request)

	return file, nil
}

// planEndpoints emits the endpoint table. Deprecated operations are
// omitted, and each omission is called out on the table's comment
// block and the console reporter.
func (m *Manager) planEndpoints() (*ast.ConstDecl, error) {
	kept := make([]schema.Operation, 0, len(m.schema.Operations))
	omitted := []string{}
	for _, op := range m.schema.Operations {
		if op.Deprecated {
			omitted = append(omitted, op.Name)
			continue
		}
		kept = append(kept, op)
	}

	fields := make([]ast.ObjectField, 0, len(kept))
	for _, op := range kept {
		fields = append(fields, ast.ObjectField{
			Name: op.Name,
			Value: &ast.ObjectLit{
				Fields: []ast.ObjectField{
					{Name: "method", Value: &ast.StringLit{Value: op.Method}},
					{Name: "path", Value: &ast.StringLit{Value: op.Path}},
				},
			},
		})
	}

	lines := []string{fmt.Sprintf("Endpoint table for %s v%s.", m.schema.Name, m.schema.Version)}
	described := false
	for _, op := range kept {
		if op.Description == "" {
			continue
		}
		if !described {
			lines = append(lines, "")
			described = true
		}
		lines = append(lines, fmt.Sprintf("%s: %s", op.Name, op.Description))
	}

	decl, err := codegen.ConstDeclaration("endpoints", &ast.ObjectLit{Fields: fields}, codegen.ConstOptions{
		Exported:       true,
		ConstAssertion: true,
		Comment:        lines,
	})
	if err != nil {
		return nil, err
	}

	for _, name := range omitted {
		comment.Warn(decl, fmt.Sprintf("omitted deprecated operation %s", name))
	}
	return decl, nil
}

// planIndex emits the SDK entry point: every model re-exported
// wholesale, the client bindings re-exported by name with their
// type-only markers taken from the symbol table, and the model names
// re-exported once more as an explicit type-only clause.
func (m *Manager) planIndex() (*SourceFile, error) {
	file := &SourceFile{Name: indexFile}

	all, err := codegen.ExportAll("./" + strippedName(modelsFile))
	if err != nil {
		return nil, err
	}
	file.addDecl(all)

	clientItems := make([]any, 0, len(builtinExports))
	for _, entry := range builtinExports {
		clientItems = append(clientItems, codegen.Item{
			Name:     entry.Name,
			TypeOnly: m.symbols.Get(entry.Name) == symbols.TypeSymbol,
		})
	}
	client, err := codegen.NamedExports("./"+strippedName(clientFile), clientItems...)
	if err != nil {
		return nil, err
	}
	file.addDecl(client)

	modelItems := make([]any, 0, len(m.schema.Models))
	for _, model := range m.schema.Models {
		modelItems = append(modelItems, codegen.Item{
			Name:     model.Name,
			TypeOnly: m.symbols.Get(model.Name) == symbols.TypeSymbol,
		})
	}
	models, err := codegen.NamedExports("./"+strippedName(modelsFile), modelItems...)
	if err != nil {
		return nil, err
	}
	file.addDecl(models)

	return file, nil
}

// strippedName turns an output file name into the module path its
// siblings import it by.
func strippedName(name string) string {
	return strings.TrimSuffix(name, ".ts")
}
