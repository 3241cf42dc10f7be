package symbols

import "testing"

func TestEntry_String(t *testing.T) {
	type fields struct {
		Name string
		Kind Kind
	}
	tests := []struct {
		name   string
		fields fields
		want   string
	}{
		{
			name: "valid entry",
			fields: fields{
				Name: "Pet",
				Kind: TypeSymbol,
			},
			want: "{Name: Pet, Kind: Type}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{
				Name: tt.fields.Name,
				Kind: tt.fields.Kind,
			}
			if got := e.String(); got != tt.want {
				t.Errorf("Entry.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
