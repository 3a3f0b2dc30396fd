// In-memory tabular result shared by generators and exporters.
package dataset

import "fmt"

// Table holds generated rows with a fixed, ordered column set.
// Rows are append-only; a row is never mutated after Append.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// New creates an empty table with the given column order.
func New(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns}
}

// Append adds one row. The value count must match the column count;
// a mismatch is a programming error, not a recoverable condition.
func (t *Table) Append(values ...any) {
	if len(values) != len(t.Columns) {
		panic(fmt.Sprintf("dataset: table %q: appended %d values to %d columns", t.Name, len(values), len(t.Columns)))
	}
	t.Rows = append(t.Rows, values)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Cell returns the value at row i for the named column, or nil when
// the column does not exist.
func (t *Table) Cell(i int, column string) any {
	for c, name := range t.Columns {
		if name == column {
			return t.Rows[i][c]
		}
	}
	return nil
}

// Record returns row i as a column-keyed map.
func (t *Table) Record(i int) map[string]any {
	rec := make(map[string]any, len(t.Columns))
	for c, name := range t.Columns {
		rec[name] = t.Rows[i][c]
	}
	return rec
}
