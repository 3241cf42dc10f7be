package symbols

import (
	"testing"
)

func TestTable_Add(t *testing.T) {
	type args struct {
		entry Entry
	}
	tests := []struct {
		name    string
		table   Table
		args    args
		wantErr bool
	}{
		{
			name:  "add valid symbol",
			table: NewTable(),
			args: args{
				entry: Entry{
					Name: "Pet",
					Kind: TypeSymbol,
				},
			},
			wantErr: false,
		},
		{
			name:  "add unknown kind",
			table: NewTable(),
			args: args{
				entry: Entry{
					Name: "Pet",
					Kind: 20,
				},
			},
			wantErr: true,
		},
		{
			name:  "add None kind",
			table: NewTable(),
			args: args{
				entry: Entry{
					Name: "Pet",
					Kind: None,
				},
			},
			wantErr: true,
		},
		{
			name:  "add empty name",
			table: NewTable(),
			args: args{
				entry: Entry{
					Name: "",
					Kind: ValueSymbol,
				},
			},
			wantErr: true,
		},
		{
			name:  "add duplicate symbol",
			table: Table{"Pet": TypeSymbol},
			args: args{
				entry: Entry{
					Name: "Pet",
					Kind: ValueSymbol,
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Add(tt.args.entry)
			if err != nil {
				if !tt.wantErr {
					t.Errorf("Table.Add() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else {
				kind, ok := tt.table[tt.args.entry.Name]
				if !ok {
					t.Errorf("symbol %s not found in the table", tt.args.entry.Name)
				}
				if kind != tt.args.entry.Kind {
					t.Errorf("symbol %s is kind %s; wanted kind %s", tt.args.entry.Name, kind, tt.args.entry.Kind)
				}
			}
		})
	}
}

func TestTable_Get(t *testing.T) {
	type args struct {
		name string
	}
	tests := []struct {
		name  string
		table Table
		args  args
		want  Kind
	}{
		{
			name:  "get existing symbol",
			table: Table{"Pet": TypeSymbol},
			args: args{
				name: "Pet",
			},
			want: TypeSymbol,
		},
		{
			name:  "get unknown symbol",
			table: Table{"Pet": TypeSymbol},
			args: args{
				name: "client",
			},
			want: None,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.Get(tt.args.name); got != tt.want {
				t.Errorf("Table.Get() = %v, want %v", got, tt.want)
			}
		})
	}
}
