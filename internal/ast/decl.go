package ast

// ExportAllDecl re-exports every export of another module:
//
//	export * from "module";
type ExportAllDecl struct {
	Doc    CommentBlock
	Module string
}

// NamedExportDecl re-exports a list of named bindings from another
// module:
//
//	export { A, type B as C } from "module";
//
// TypeOnly marks the whole clause as type-only. It is set exactly when
// every binding in the clause is type-only, including the degenerate
// empty clause.
type NamedExportDecl struct {
	Doc        CommentBlock
	Specifiers []Specifier
	Module     string
	TypeOnly   bool
}

// NamedImportDecl imports a list of named bindings from another module:
//
//	import { A, type B as C } from "module";
//
// TypeOnly follows the same clause hoisting rule as NamedExportDecl.
type NamedImportDecl struct {
	Doc        CommentBlock
	Specifiers []Specifier
	Module     string
	TypeOnly   bool
}

// ConstDecl declares a single const binding:
//
//	export const Name: Type = Init;
//
// Type is optional. When Destructure is set the declared name becomes
// an object binding pattern extracting the property of the same name:
//
//	const { Name } = Init;
type ConstDecl struct {
	Doc         CommentBlock
	Name        string
	Type        TypeNode
	Init        Expr
	Destructure bool
	Exported    bool
}

// TypeAliasDecl declares a named type alias:
//
//	export type Name = Type;
type TypeAliasDecl struct {
	Doc      CommentBlock
	Name     string
	Exported bool
	Type     TypeNode
}

func (*ExportAllDecl) node()   {}
func (*NamedExportDecl) node() {}
func (*NamedImportDecl) node() {}
func (*ConstDecl) node()       {}
func (*TypeAliasDecl) node()   {}

// declNode ensures that only declaration nodes can be assigned to a Decl.
func (*ExportAllDecl) declNode()   {}
func (*NamedExportDecl) declNode() {}
func (*NamedImportDecl) declNode() {}
func (*ConstDecl) declNode()       {}
func (*TypeAliasDecl) declNode()   {}

func (d *ExportAllDecl) Comments() *CommentBlock   { return &d.Doc }
func (d *NamedExportDecl) Comments() *CommentBlock { return &d.Doc }
func (d *NamedImportDecl) Comments() *CommentBlock { return &d.Doc }
func (d *ConstDecl) Comments() *CommentBlock       { return &d.Doc }
func (d *TypeAliasDecl) Comments() *CommentBlock   { return &d.Doc }
