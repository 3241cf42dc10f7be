package codegen

import (
	"testing"

	"github.com/apiforge/tsgen/internal/ast"
	"github.com/stretchr/testify/assert"
)

func TestConstDeclaration(t *testing.T) {
	type args struct {
		name string
		init ast.Expr
		opts ConstOptions
	}
	tests := []struct {
		name    string
		args    args
		want    *ast.ConstDecl
		wantErr bool
	}{
		{
			name: "plain declaration",
			args: args{
				name: "client",
				init: &ast.Ident{Name: "value"},
			},
			want: &ast.ConstDecl{
				Name: "client",
				Init: &ast.Ident{Name: "value"},
			},
		},
		{
			name: "exported with type annotation",
			args: args{
				name: "defaults",
				init: &ast.ObjectLit{},
				opts: ConstOptions{
					Exported: true,
					Type:     "ClientOptions",
				},
			},
			want: &ast.ConstDecl{
				Name:     "defaults",
				Type:     &ast.TypeRef{Name: "ClientOptions"},
				Init:     &ast.ObjectLit{},
				Exported: true,
			},
		},
		{
			name: "const assertion wraps the initializer",
			args: args{
				name: "endpoints",
				init: &ast.ObjectLit{
					Fields: []ast.ObjectField{
						{Name: "method", Value: &ast.StringLit{Value: "GET"}},
					},
				},
				opts: ConstOptions{ConstAssertion: true},
			},
			want: &ast.ConstDecl{
				Name: "endpoints",
				Init: &ast.AsConstExpr{
					X: &ast.ObjectLit{
						Fields: []ast.ObjectField{
							{Name: "method", Value: &ast.StringLit{Value: "GET"}},
						},
					},
				},
			},
		},
		{
			name: "destructured binding",
			args: args{
				name: "request",
				init: &ast.Ident{Name: "client"},
				opts: ConstOptions{
					Destructure: true,
					Exported:    true,
				},
			},
			want: &ast.ConstDecl{
				Name:        "request",
				Init:        &ast.Ident{Name: "client"},
				Destructure: true,
				Exported:    true,
			},
		},
		{
			name: "leading comment",
			args: args{
				name: "defaults",
				init: &ast.ObjectLit{},
				opts: ConstOptions{
					Comment: []string{"Default client options.", "Override per call if needed."},
				},
			},
			want: &ast.ConstDecl{
				Doc:  ast.CommentBlock{"Default client options.", "Override per call if needed."},
				Name: "defaults",
				Init: &ast.ObjectLit{},
			},
		},
		{
			name: "missing initializer",
			args: args{
				name: "client",
				init: nil,
			},
			wantErr: true,
		},
		{
			name: "typed nil initializer",
			args: args{
				name: "client",
				init: (*ast.Ident)(nil),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConstDeclaration(tt.args.name, tt.args.init, tt.args.opts)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Two declarations built from the same inputs must differ only in the
// export flag when only Exported differs.
func TestConstDeclarationExportFlagOnly(t *testing.T) {
	exported, err := ConstDeclaration("client", &ast.Ident{Name: "value"}, ConstOptions{Exported: true})
	assert.NoError(t, err)
	private, err := ConstDeclaration("client", &ast.Ident{Name: "value"}, ConstOptions{})
	assert.NoError(t, err)

	assert.False(t, ast.Equal(exported, private))
	private.Exported = true
	assert.True(t, ast.Equal(exported, private))
}
