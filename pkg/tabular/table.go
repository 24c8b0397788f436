// Package tabular provides the in-memory table model shared by the
// reconciliation pipeline. A Table is an ordered set of named columns and an
// ordered set of string-valued rows, loaded once and treated as immutable:
// every transformation returns a new Table and never touches the input, so
// independent comparisons can safely share source tables.
package tabular

import (
	"github.com/kemballops/gatecheck/pkg/errors"
)

// Table holds column headers and rows in declaration order. Cells are plain
// strings; typed interpretation (trimming, case folding) belongs to the
// normalize package. Column names are assumed unique — a table with
// duplicate headers is undefined behavior and New reports it.
type Table struct {
	name    string
	columns []string
	index   map[string]int // header -> column position
	rows    [][]string
}

// New builds a Table from a header row and data rows. Rows shorter than the
// header are padded with empty cells; longer rows are truncated. The name
// identifies the table in diagnostics (typically the system or file name).
func New(name string, columns []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, dup := index[col]; dup {
			return nil, &errors.ValidationError{
				Field:   col,
				Message: "duplicate column header",
			}
		}
		index[col] = i
	}

	t := &Table{
		name:    name,
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		t.rows = append(t.rows, fitRow(row, len(columns)))
	}
	return t, nil
}

// fitRow pads or truncates a row to the column count.
func fitRow(row []string, width int) []string {
	fitted := make([]string, width)
	copy(fitted, row)
	return fitted
}

// Name returns the table's identity used in diagnostics.
func (t *Table) Name() string { return t.name }

// Columns returns a copy of the header list in declaration order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Cell returns the value at (row, column name). The second return is false
// when the column does not exist or the row index is out of range.
func (t *Table) Cell(row int, column string) (string, bool) {
	col, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return "", false
	}
	return t.rows[row][col], true
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]string, bool) {
	col, ok := t.index[name]
	if !ok {
		return nil, false
	}
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[col]
	}
	return values, true
}

// Row returns a copy of the row at index i.
func (t *Table) Row(i int) []string {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return append([]string(nil), t.rows[i]...)
}

// Filter returns a new Table containing the rows for which pred reports
// true, preserving row order. The receiver is never mutated; row slices are
// copied so later transformations cannot alias the source.
func (t *Table) Filter(pred func(row Row) bool) *Table {
	filtered := &Table{
		name:    t.name,
		columns: t.columns,
		index:   t.index,
	}
	for i := range t.rows {
		if pred(Row{table: t, i: i}) {
			filtered.rows = append(filtered.rows, append([]string(nil), t.rows[i]...))
		}
	}
	return filtered
}

// MapColumn returns a new Table with fn applied to every cell of the named
// column. Unknown columns return the receiver unchanged.
func (t *Table) MapColumn(name string, fn func(string) string) *Table {
	col, ok := t.index[name]
	if !ok {
		return t
	}
	mapped := &Table{
		name:    t.name,
		columns: t.columns,
		index:   t.index,
		rows:    make([][]string, len(t.rows)),
	}
	for i, row := range t.rows {
		copied := append([]string(nil), row...)
		copied[col] = fn(copied[col])
		mapped.rows[i] = copied
	}
	return mapped
}

// Row is a lightweight view of one table row used by filter predicates.
type Row struct {
	table *Table
	i     int
}

// Get returns the row's value in the named column, or "" when the column
// does not exist. Predicates that reference unresolved columns use the
// explicit Lookup variant to distinguish absence.
func (r Row) Get(column string) string {
	v, _ := r.table.Cell(r.i, column)
	return v
}

// Lookup returns the row's value and whether the column exists.
func (r Row) Lookup(column string) (string, bool) {
	return r.table.Cell(r.i, column)
}

// Index returns the row's position in the table.
func (r Row) Index() int { return r.i }
