package generator

import (
	"path/filepath"
	"testing"

	"github.com/apiforge/tsgen/internal/ast"
	"github.com/apiforge/tsgen/internal/codegen"
	"github.com/apiforge/tsgen/schema"
	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/txtar"
)

func findConst(t *testing.T, file *SourceFile, name string) *ast.ConstDecl {
	t.Helper()
	for _, d := range file.Decls {
		if c, ok := d.(*ast.ConstDecl); ok && c.Name == name {
			return c
		}
	}
	t.Fatalf("no const %q planned in %s", name, file.Name)
	return nil
}

func TestRenderMatchesGolden(t *testing.T) {
	m := planPetstore(t, Config{})

	files, err := m.Render()
	if err != nil {
		t.Fatal(err)
	}

	archive, err := txtar.ParseFile(filepath.Join("testdata", "petstore_golden.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != len(archive.Files) {
		t.Fatalf("generated %d files, golden archive has %d", len(files), len(archive.Files))
	}

	for i, want := range archive.Files {
		assert.Equal(t, want.Name, files[i].Name)
		assert.Equal(t, string(want.Data), files[i].Content, "content mismatch in %s", want.Name)
	}
}

func TestPlanOmitsDeprecatedOperations(t *testing.T) {
	m := planPetstore(t, Config{})

	endpoints := findConst(t, m.files[1], "endpoints")
	table, ok := endpoints.Init.(*ast.AsConstExpr)
	if !ok {
		t.Fatalf("endpoints initializer is %T, want a const assertion", endpoints.Init)
	}

	fields := table.X.(*ast.ObjectLit).Fields
	assert.Len(t, fields, 3)
	for _, field := range fields {
		assert.NotEqual(t, "getPetLegacy", field.Name)
	}
	assert.Contains(t, endpoints.Doc, "tsgen WARN: omitted deprecated operation getPetLegacy")
}

func TestPlanNoticesUndescribedModels(t *testing.T) {
	s := loadPetstore(t)
	s.Models = append(s.Models, schema.Model{
		Name: "Tag",
		Type: "{ id: number; label: string }",
	})

	m, err := NewManager(s, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Plan(); err != nil {
		t.Fatal(err)
	}

	models := m.files[0]
	alias, ok := models.Decls[2].(*ast.TypeAliasDecl)
	if !ok {
		t.Fatalf("third models declaration is %T, want a type alias", models.Decls[2])
	}
	assert.Contains(t, alias.Doc, "tsgen INFO: model Tag has no description")
}

func TestPlanMarksTypeExportsInIndex(t *testing.T) {
	m := planPetstore(t, Config{})

	index := m.files[2]
	decl, ok := index.Decls[1].(*ast.NamedExportDecl)
	if !ok {
		t.Fatalf("second index declaration is %T, want a named export", index.Decls[1])
	}

	assert.False(t, decl.TypeOnly)
	for _, s := range decl.Specifiers {
		if s.Name == "ClientOptions" {
			assert.True(t, s.TypeOnly, "ClientOptions must be re-exported type-only")
		} else {
			assert.False(t, s.TypeOnly, "%s must be re-exported as a value", s.Name)
		}
	}
}

// Model names are all type symbols, so their explicit re-export must
// hoist the marker to the clause and drop it from the bindings.
func TestPlanHoistsModelClauseInIndex(t *testing.T) {
	m := planPetstore(t, Config{})

	index := m.files[2]
	decl, ok := index.Decls[2].(*ast.NamedExportDecl)
	if !ok {
		t.Fatalf("third index declaration is %T, want a named export", index.Decls[2])
	}

	assert.True(t, decl.TypeOnly)
	assert.Equal(t, []ast.Specifier{{Name: "Pet"}, {Name: "Order"}}, decl.Specifiers)
}

// A schema without models still plans the explicit model clause, which
// degenerates to the hoisted empty form.
func TestPlanEmptyModelClauseInIndex(t *testing.T) {
	s := loadPetstore(t)
	s.Models = nil

	m, err := NewManager(s, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Plan(); err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, m.files[0].Decls)

	index := m.files[2]
	decl, ok := index.Decls[2].(*ast.NamedExportDecl)
	if !ok {
		t.Fatalf("third index declaration is %T, want a named export", index.Decls[2])
	}
	assert.True(t, decl.TypeOnly)
	assert.Empty(t, decl.Specifiers)

	files, err := m.Render()
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, files[2].Content, `export type {} from "./models";`)
}

func TestPlanIsDeterministic(t *testing.T) {
	build := func() []RenderedFile {
		m := planPetstore(t, Config{})
		files, err := m.Render()
		if err != nil {
			t.Fatal(err)
		}
		return files
	}

	assert.Equal(t, build(), build())
}

func TestAddDeclSkipsStructuralDuplicates(t *testing.T) {
	file := &SourceFile{Name: clientFile}

	first, err := codegen.NamedExports("./client", "client")
	if err != nil {
		t.Fatal(err)
	}
	file.addDecl(first)

	duplicate, err := codegen.NamedExports("./client", "client")
	if err != nil {
		t.Fatal(err)
	}
	file.addDecl(duplicate)
	assert.Len(t, file.Decls, 1)

	other, err := codegen.NamedExports("./client", "defaults")
	if err != nil {
		t.Fatal(err)
	}
	file.addDecl(other)
	assert.Len(t, file.Decls, 2)
}
