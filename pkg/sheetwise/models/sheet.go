package models

// UnnamedColumn is the display name for a column with an empty header.
const UnnamedColumn = "Column"

// Table is the in-memory representation of a loaded sheet. The first row
// of the source region supplies Headers; every following row is a record.
// Rows may be shorter than Headers; missing trailing cells read as empty.
type Table struct {
	// Source is the path the table was loaded from.
	Source string `json:"source"`
	// Sheet is the worksheet name, empty for CSV input.
	Sheet string `json:"sheet,omitempty"`
	// Headers contains column names in order. Entries may be empty.
	Headers []string `json:"headers"`
	// Rows contains records aligned positionally to Headers.
	Rows [][]Value `json:"rows"`
}

// RowCount returns the number of records.
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Cell returns the value at (row, col), or an empty value when the row is
// shorter than col or either index is out of range.
func (t *Table) Cell(row, col int) Value {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return Empty()
	}
	return CellAt(t.Rows[row], col)
}

// Column returns the index of the first header equal to name.
func (t *Table) Column(name string) (int, bool) {
	return ColumnIndex(t.Headers, name)
}

// ColumnValues returns the values of column idx across all rows, padding
// short rows with empty values.
func (t *Table) ColumnValues(idx int) []Value {
	values := make([]Value, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Cell(i, idx)
	}
	return values
}

// DisplayHeaders returns the headers with empty names replaced by
// UnnamedColumn.
func (t *Table) DisplayHeaders() []string {
	out := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		if h == "" {
			h = UnnamedColumn
		}
		out[i] = h
	}
	return out
}

// SelectableColumns returns the non-empty headers, which are the only
// columns a user can pick for analysis.
func (t *Table) SelectableColumns() []string {
	var out []string
	for _, h := range t.Headers {
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

// StringRows renders every record as strings, one per header. Cells past
// the header width are dropped.
func (t *Table) StringRows() [][]string {
	out := make([][]string, len(t.Rows))
	for i := range t.Rows {
		line := make([]string, len(t.Headers))
		for j := range t.Headers {
			line[j] = t.Cell(i, j).String()
		}
		out[i] = line
	}
	return out
}

// ColumnIndex returns the index of the first header exactly equal to name.
func ColumnIndex(headers []string, name string) (int, bool) {
	for i, h := range headers {
		if h == name {
			return i, true
		}
	}
	return -1, false
}

// CellAt returns row[col], or an empty value when the row is too short.
func CellAt(row []Value, col int) Value {
	if col < 0 || col >= len(row) {
		return Empty()
	}
	return row[col]
}
