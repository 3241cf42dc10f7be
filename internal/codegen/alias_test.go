package codegen

import (
	"testing"

	"github.com/apiforge/tsgen/internal/ast"
	"github.com/stretchr/testify/assert"
)

func TestTypeAlias(t *testing.T) {
	type args struct {
		name     string
		typeText string
		exported bool
	}
	tests := []struct {
		name    string
		args    args
		want    *ast.TypeAliasDecl
		wantErr bool
	}{
		{
			name: "exported alias with inline object type",
			args: args{
				name:     "Pet",
				typeText: "{ id: number; name: string }",
				exported: true,
			},
			want: &ast.TypeAliasDecl{
				Name:     "Pet",
				Exported: true,
				Type:     &ast.RawType{Text: "{ id: number; name: string }"},
			},
		},
		{
			name: "module private alias",
			args: args{
				name:     "PetId",
				typeText: "number",
			},
			want: &ast.TypeAliasDecl{
				Name: "PetId",
				Type: &ast.RawType{Text: "number"},
			},
		},
		{
			name: "missing type text",
			args: args{
				name: "Pet",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeAlias(tt.args.name, tt.args.typeText, tt.args.exported)
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
