package ast

import "reflect"

// IsNil reports whether n is nil, either as a bare nil interface or as
// a typed nil pointer inside a non-nil interface. The second form
// compares unequal to nil, so code validating node inputs must use
// IsNil instead of a plain comparison.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Equal reports whether two nodes are structurally identical. Leading
// comment blocks are ignored, so two declarations that print the same
// code with different documentation compare equal. Nil nodes, typed or
// not, compare equal to each other and unequal to every real node.
func Equal(a Node, b Node) bool {
	if IsNil(a) && IsNil(b) {
		return true
	}
	if IsNil(a) || IsNil(b) {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch a := a.(type) {
	case *Ident:
		b := b.(*Ident)
		return a.Name == b.Name
	case *StringLit:
		b := b.(*StringLit)
		return a.Value == b.Value
	case *NumberLit:
		b := b.(*NumberLit)
		return a.Value == b.Value
	case *BoolLit:
		b := b.(*BoolLit)
		return a.Value == b.Value
	case *MemberExpr:
		b := b.(*MemberExpr)
		return a.Name == b.Name && Equal(a.X, b.X)
	case *CallExpr:
		b := b.(*CallExpr)
		if !Equal(a.Fun, b.Fun) {
			return false
		}
		if !equalTypeNodes(a.TypeArgs, b.TypeArgs) {
			return false
		}
		if len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *ObjectLit:
		b := b.(*ObjectLit)
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name {
				return false
			}
			if !Equal(a.Fields[i].Value, b.Fields[i].Value) {
				return false
			}
		}
		return true
	case *ArrayLit:
		b := b.(*ArrayLit)
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	case *AsConstExpr:
		b := b.(*AsConstExpr)
		return Equal(a.X, b.X)
	case *TypeRef:
		b := b.(*TypeRef)
		return a.Name == b.Name && equalTypeNodes(a.Args, b.Args)
	case *RawType:
		b := b.(*RawType)
		return a.Text == b.Text
	case *ExportAllDecl:
		b := b.(*ExportAllDecl)
		return a.Module == b.Module
	case *NamedExportDecl:
		b := b.(*NamedExportDecl)
		return a.Module == b.Module && a.TypeOnly == b.TypeOnly && equalSpecifiers(a.Specifiers, b.Specifiers)
	case *NamedImportDecl:
		b := b.(*NamedImportDecl)
		return a.Module == b.Module && a.TypeOnly == b.TypeOnly && equalSpecifiers(a.Specifiers, b.Specifiers)
	case *ConstDecl:
		b := b.(*ConstDecl)
		return a.Name == b.Name && a.Destructure == b.Destructure && a.Exported == b.Exported &&
			Equal(a.Type, b.Type) && Equal(a.Init, b.Init)
	case *TypeAliasDecl:
		b := b.(*TypeAliasDecl)
		return a.Name == b.Name && a.Exported == b.Exported && Equal(a.Type, b.Type)
	default:
		return false
	}
}

func equalSpecifiers(a, b []Specifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalTypeNodes(a, b []TypeNode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
