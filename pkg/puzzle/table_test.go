package puzzle

import "testing"

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		rows    []AttributeRow
		wantErr bool
	}{
		{
			name: "valid",
			rows: []AttributeRow{
				{Name: "Color", Values: []string{"red", "blue", "green"}},
				{Name: "Pet", Values: []string{"cat", "dog", "fish"}},
			},
			wantErr: false,
		},
		{
			name:    "no attributes",
			rows:    nil,
			wantErr: true,
		},
		{
			name: "too few objects",
			rows: []AttributeRow{
				{Name: "Color", Values: []string{"red"}},
			},
			wantErr: true,
		},
		{
			name: "duplicate value",
			rows: []AttributeRow{
				{Name: "Color", Values: []string{"red", "red", "green"}},
			},
			wantErr: true,
		},
		{
			name: "mismatched row length",
			rows: []AttributeRow{
				{Name: "Color", Values: []string{"red", "blue", "green"}},
				{Name: "Pet", Values: []string{"cat", "dog"}},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.rows)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				if table.N() != len(tt.rows) {
					t.Fatalf("N() = %d, want %d", table.N(), len(tt.rows))
				}
				if table.M() != len(tt.rows[0].Values) {
					t.Fatalf("M() = %d, want %d", table.M(), len(tt.rows[0].Values))
				}
			}
		})
	}
}

func TestTableColumnOf(t *testing.T) {
	table, err := NewTable([]AttributeRow{
		{Name: "Color", Values: []string{"red", "blue", "green"}},
	})
	if err != nil {
		t.Fatalf("NewTable() error: %v", err)
	}
	if got := table.ColumnOf(0, "blue"); got != 2 {
		t.Fatalf("ColumnOf(0, blue) = %d, want 2", got)
	}
	if got := table.ColumnOf(0, "red"); got != 1 {
		t.Fatalf("ColumnOf(0, red) = %d, want 1", got)
	}
}
