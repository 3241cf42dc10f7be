// Package ast defines the TypeScript declaration and expression nodes
// produced by the builders and consumed by the renderer.
//
// Nodes are plain data with no behavior beyond classification. Every
// builder call allocates a fresh node graph, so a tree belongs to its
// caller and can be rendered or mutated without synchronization.
package ast

// Node is the interface implemented by every node in a declaration tree.
type Node interface {
	node()
}

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// TypeNode is the interface implemented by all type annotation nodes.
type TypeNode interface {
	Node
	typeNode()
}

// Decl is the interface implemented by all declaration nodes.
// Declarations are the only nodes that carry a leading comment block.
type Decl interface {
	Node
	declNode()
	// Comments returns a pointer to the declaration's leading comment
	// block so that callers can replace it in place.
	Comments() *CommentBlock
}

// CommentBlock is the leading documentation comment of a declaration,
// one element per output line. Lines carry no comment markers; the
// renderer chooses the comment syntax when the declaration is printed.
type CommentBlock []string

// Specifier is a single binding in a named import or export clause,
// rendered as "Name", "Name as Alias", or "type Name".
//
// TypeOnly marks the binding itself as type-only. It is only set when
// the clause mixes type and value bindings; in a clause whose bindings
// are all type-only the marker is hoisted to the clause instead.
type Specifier struct {
	Name     string
	Alias    string
	TypeOnly bool
}
