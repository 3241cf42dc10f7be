package generator

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	ts "github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Verify parses every rendered file with the TypeScript grammar and
// fails when any of them contains a syntax error. It guards against
// renderer regressions; it is not a type check.
func (m *Manager) Verify() error {
	files, err := m.Render()
	if err != nil {
		return err
	}
	return verifyFiles(files)
}

func verifyFiles(files []RenderedFile) error {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(ts.GetLanguage())

	for _, file := range files {
		tree, err := parser.ParseCtx(context.Background(), nil, []byte(file.Content))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}
		if tree.RootNode().HasError() {
			return fmt.Errorf("%s contains a syntax error", file.Name)
		}
	}
	return nil
}
