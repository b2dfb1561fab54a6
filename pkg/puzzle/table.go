package puzzle

// AttributeRow is one category and the bijection it assigns from columns
// {0..M-1} to M distinct Values.
type AttributeRow struct {
	Name   string
	Values []string // Values[j] is the value at column j
}

// Table is the fully-populated solution: N attribute rows sharing the same
// M-column index space.
type Table struct {
	Rows []AttributeRow

	// columnOf[i][value] is the 1-indexed solution column of value in row i.
	columnOf []map[string]int
}

// N returns the number of attribute rows.
func (t *Table) N() int { return len(t.Rows) }

// M returns the number of columns (0 if the table has no rows).
func (t *Table) M() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Values)
}

// NewTable validates and indexes a solution table. It enforces the entry
// constraints (NoAttributes, TooFewObjects — M<=1 check only; the
// level-dependent M==2 check happens in Generate/BuildCatalog) and rejects
// duplicate values within a row.
func NewTable(rows []AttributeRow) (*Table, error) {
	if len(rows) == 0 {
		return nil, NewNoAttributesError()
	}
	m := len(rows[0].Values)
	if m <= 1 {
		return nil, NewTooFewObjectsError(m, 0)
	}
	columnOf := make([]map[string]int, len(rows))
	for i, row := range rows {
		if len(row.Values) != m {
			return nil, NewTooFewObjectsError(len(row.Values), 0)
		}
		idx := make(map[string]int, m)
		for j, v := range row.Values {
			if _, dup := idx[v]; dup {
				return nil, NewDuplicateValueError(row.Name, v)
			}
			idx[v] = j + 1 // 1-indexed column
		}
		columnOf[i] = idx
	}
	return &Table{Rows: rows, columnOf: columnOf}, nil
}

// ColumnOf returns the 1-indexed solution column for value in attribute
// row i. Behavior is undefined if value does not occur in row i.
func (t *Table) ColumnOf(i int, value string) int {
	return t.columnOf[i][value]
}
