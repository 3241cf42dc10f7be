package ast

// Ident is a bare identifier reference.
type Ident struct {
	Name string
}

// StringLit is a string literal. Value holds the unquoted text; the
// renderer adds quoting and escaping.
type StringLit struct {
	Value string
}

// NumberLit is a numeric literal. Value holds the source text of the
// number so that callers control the exact formatting.
type NumberLit struct {
	Value string
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

// MemberExpr is a property access, "X.Name".
type MemberExpr struct {
	X    Expr
	Name string
}

// CallExpr is a call expression with optional type arguments,
// "Fun<TypeArgs>(Args)".
type CallExpr struct {
	Fun      Expr
	TypeArgs []TypeNode
	Args     []Expr
}

// ObjectField is a single "name: value" entry of an object literal.
type ObjectField struct {
	Name  string
	Value Expr
}

// ObjectLit is an object literal.
type ObjectLit struct {
	Fields []ObjectField
}

// ArrayLit is an array literal.
type ArrayLit struct {
	Elems []Expr
}

// AsConstExpr is a const assertion, "X as const". It freezes the
// literal types of X for the type checker.
type AsConstExpr struct {
	X Expr
}

// TypeRef is a reference to a named type, with optional type arguments.
type TypeRef struct {
	Name string
	Args []TypeNode
}

// RawType is verbatim type text the renderer passes through unchanged.
// It carries type shapes the node model has no dedicated representation
// for, such as inline object types.
type RawType struct {
	Text string
}

func (*Ident) node()       {}
func (*StringLit) node()   {}
func (*NumberLit) node()   {}
func (*BoolLit) node()     {}
func (*MemberExpr) node()  {}
func (*CallExpr) node()    {}
func (*ObjectLit) node()   {}
func (*ArrayLit) node()    {}
func (*AsConstExpr) node() {}
func (*TypeRef) node()     {}
func (*RawType) node()     {}

// exprNode ensures that only expression nodes can be assigned to an Expr.
func (*Ident) exprNode()       {}
func (*StringLit) exprNode()   {}
func (*NumberLit) exprNode()   {}
func (*BoolLit) exprNode()     {}
func (*MemberExpr) exprNode()  {}
func (*CallExpr) exprNode()    {}
func (*ObjectLit) exprNode()   {}
func (*ArrayLit) exprNode()    {}
func (*AsConstExpr) exprNode() {}

// typeNode ensures that only type nodes can be assigned to a TypeNode.
func (*TypeRef) typeNode() {}
func (*RawType) typeNode() {}
