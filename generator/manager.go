// Package generator plans and writes a TypeScript SDK for a parsed
// schema. Planning produces declaration trees through the codegen
// builders; rendering turns them into files; writing either lands the
// files in the output directory or appends a unified diff of what
// would change.
package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/apiforge/tsgen/generator/symbols"
	"github.com/apiforge/tsgen/internal/ast"
	"github.com/apiforge/tsgen/internal/comment"
	"github.com/apiforge/tsgen/internal/render"
	"github.com/apiforge/tsgen/schema"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// Config carries the output settings for one generation run.
type Config struct {
	// OutputDir is the directory generated files are written to.
	OutputDir string

	// DiffFile is where WriteDiff appends its patches.
	DiffFile string

	// Verify parses every rendered file with a TypeScript grammar
	// before anything is written.
	Verify bool

	// Debug surfaces informational notices on the console reporter.
	Debug bool
}

// SourceFile is one planned output file and its declarations in
// emission order.
type SourceFile struct {
	Name  string
	Decls []ast.Decl
}

// addDecl appends a declaration unless a structurally identical one is
// already planned for the file.
func (f *SourceFile) addDecl(decl ast.Decl) {
	for _, existing := range f.Decls {
		if ast.Equal(existing, decl) {
			return
		}
	}
	f.Decls = append(f.Decls, decl)
}

// RenderedFile is a named output file with fully rendered contents.
type RenderedFile struct {
	Name    string
	Content string
}

// Manager maintains state relevant to generation across all planned
// files: the parsed schema, the exported symbol table, and the
// declaration list of every output file.
type Manager struct {
	schema  *schema.Schema
	cfg     Config
	symbols symbols.Table
	files   []*SourceFile
}

// NewManager initializes a Manager for a parsed schema. The exported
// symbol table is seeded here, so a schema name that collides with one
// of the built in client exports fails before anything is planned.
func NewManager(s *schema.Schema, cfg Config) (*Manager, error) {
	if s == nil {
		return nil, errors.New("schema must not be nil")
	}
	comment.EnableReporter(cfg.Debug)

	m := &Manager{
		schema:  s,
		cfg:     cfg,
		symbols: symbols.NewTable(),
	}

	for _, entry := range builtinExports {
		if err := m.symbols.Add(entry); err != nil {
			return nil, fmt.Errorf("registering built in exports: %w", err)
		}
	}
	for _, model := range s.Models {
		if err := m.symbols.Add(symbols.Entry{Name: model.Name, Kind: symbols.TypeSymbol}); err != nil {
			return nil, fmt.Errorf("registering model exports: %w", err)
		}
	}
	return m, nil
}

// Render renders every planned file. Output order and content are
// deterministic for a given schema.
func (m *Manager) Render() ([]RenderedFile, error) {
	if len(m.files) == 0 {
		return nil, errors.New("nothing planned, call Plan first")
	}

	header := []string{
		"Code generated by tsgen. DO NOT EDIT.",
		fmt.Sprintf("Source: %s v%s", m.schema.Name, m.schema.Version),
	}

	rendered := make([]RenderedFile, 0, len(m.files))
	for _, f := range m.files {
		content, err := render.File(header, f.Decls)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.Name, err)
		}
		rendered = append(rendered, RenderedFile{Name: f.Name, Content: content})
	}
	return rendered, nil
}

// Write renders every planned file into the output directory.
func (m *Manager) Write() error {
	files, err := m.Render()
	if err != nil {
		return err
	}
	if m.cfg.Verify {
		if err := verifyFiles(files); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(m.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, file := range files {
		path := filepath.Join(m.cfg.OutputDir, file.Name)
		if err := os.WriteFile(path, []byte(file.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	log.Printf("%d files written to %s", len(files), m.cfg.OutputDir)
	return nil
}

func (m *Manager) CreateDiffFile() error {
	f, err := os.Create(m.cfg.DiffFile)
	f.Close()
	return err
}

// WriteDiff appends a unified diff between the files on disk and the
// rendered files to the diff file. A missing file diffs against empty
// content, so a first run produces plain creation patches.
func (m *Manager) WriteDiff() error {
	files, err := m.Render()
	if err != nil {
		return err
	}
	if m.cfg.Verify {
		if err := verifyFiles(files); err != nil {
			return err
		}
	}

	changed := 0
	for _, file := range files {
		path := filepath.Join(m.cfg.OutputDir, file.Name)
		original, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if string(original) == file.Content {
			continue
		}
		changed++

		// what this file will be named in the diff file
		diffFileName := filepath.ToSlash(path)

		f, err := os.OpenFile(m.cfg.DiffFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}

		patch := godiffpatch.GeneratePatch(diffFileName, string(original), file.Content)
		if _, err := f.WriteString(patch); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if changed == 0 {
		log.Printf("generated files in %s are up to date", m.cfg.OutputDir)
		return nil
	}
	log.Printf("changes for %d files written to %s", changed, m.cfg.DiffFile)
	return nil
}
