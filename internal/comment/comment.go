package comment

import (
	"fmt"

	"github.com/apiforge/tsgen/internal/ast"
)

const (
	InfoHeader string = "tsgen INFO"
	WarnHeader string = "tsgen WARN"
)

// Attach sets the leading comment block of a declaration, replacing
// whatever block is already there. The lines are copied, so later
// changes to the caller's slice do not reach the declaration.
//
// Attaching no lines clears the block.
func Attach(decl ast.Decl, lines ...string) {
	block := decl.Comments()
	*block = append(ast.CommentBlock(nil), lines...)
}

// Info prepends an informational notice to the declaration's comment
// block and records it with the console reporter.
// The message is the main notice, and additionalInfo is a list of
// optional lines that will be printed below the main notice.
func Info(decl ast.Decl, message string, additionalInfo ...string) {
	prepend(decl, InfoHeader, message, additionalInfo)
	reporter.Add(InfoHeader, message, additionalInfo...)
}

// Warn prepends a warning notice to the declaration's comment block
// and records it with the console reporter.
func Warn(decl ast.Decl, message string, additionalInfo ...string) {
	prepend(decl, WarnHeader, message, additionalInfo)
	reporter.Add(WarnHeader, message, additionalInfo...)
}

func prepend(decl ast.Decl, header, message string, additionalInfo []string) {
	lines := []string{fmt.Sprintf("%s: %s", header, message)}
	lines = append(lines, additionalInfo...)

	block := decl.Comments()
	if len(*block) > 0 {
		lines = append(lines, "")
	}

	*block = append(ast.CommentBlock(lines), *block...)
}
