// Copyright © 2024 The miniql Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import "unicode/utf8"

// Row is a positional sequence of values, one per column of its table.
type Row []Value

// Table is a named, typed set of rows. The row validator lives on the table
// itself so that every Store implementation inherits the same invariants
// without duplicating the logic.
type Table struct {
	Name    string
	Columns []Column
	Rows    []Row

	dirty bool
}

// NewTable constructs an empty table. At most one column may carry
// PrimaryKey; a primary key column is implicitly non-nullable.
func NewTable(name string, columns []Column) *Table {
	cols := make([]Column, len(columns))
	copy(cols, columns)
	for i := range cols {
		if cols[i].PrimaryKey {
			cols[i].Nullable = false
		}
	}
	return &Table{Name: name, Columns: cols}
}

// ColumnIndex returns the position of a column by name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// PrimaryKeyIndex returns the position of the primary-key column, or -1 if
// the table has none.
func (t *Table) PrimaryKeyIndex() int {
	for i, c := range t.Columns {
		if c.PrimaryKey {
			return i
		}
	}
	return -1
}

// ValidateRow enforces arity, type compatibility, nullability, and primary
// key uniqueness. excludeIndex excludes one existing
// row from the primary-key uniqueness scan — pass -1 for a brand new row,
// or the row's own index when re-validating an UPDATE in place.
func (t *Table) ValidateRow(row Row, excludeIndex int) error {

	if len(row) != len(t.Columns) {
		return &ArityError{Table: t.Name, Expected: len(t.Columns), Found: len(row)}
	}

	for i, col := range t.Columns {
		v := row[i]

		if v.IsNull() {
			if !col.Nullable {
				return &NullViolationError{Table: t.Name, Column: col.Name}
			}
			continue
		}

		if col.Type.Kind == TypeVarchar {
			if v.Kind != KindString {
				return &TypeMismatchError{Table: t.Name, Column: col.Name, Want: col.Type, Got: v}
			}
			if n := utf8.RuneCountInString(v.Str); n > col.Type.N {
				return &StringTooLongError{Table: t.Name, Column: col.Name, Max: col.Type.N, Length: n}
			}
			continue
		}

		if !col.Type.Accepts(v) {
			return &TypeMismatchError{Table: t.Name, Column: col.Name, Want: col.Type, Got: v}
		}
	}

	if pk := t.PrimaryKeyIndex(); pk >= 0 {
		pv := row[pk]
		if !pv.IsNull() {
			for i, r := range t.Rows {
				if i == excludeIndex {
					continue
				}
				if !r[pk].IsNull() && r[pk].Equal(pv) {
					return &DuplicatePrimaryKeyError{Table: t.Name, Column: t.Columns[pk].Name, Value: pv}
				}
			}
		}
	}

	return nil
}

// InsertRow validates and appends a row.
func (t *Table) InsertRow(row Row) error {
	if err := t.ValidateRow(row, -1); err != nil {
		return err
	}
	t.Rows = append(t.Rows, row)
	t.dirty = true
	return nil
}

// UpdateRow validates and replaces the row at index.
func (t *Table) UpdateRow(index int, row Row) error {
	if index < 0 || index >= len(t.Rows) {
		return &RowIndexError{Table: t.Name, Index: index, Len: len(t.Rows)}
	}
	if err := t.ValidateRow(row, index); err != nil {
		return err
	}
	t.Rows[index] = row
	t.dirty = true
	return nil
}

// DeleteRow removes the row at index without reordering the remainder.
func (t *Table) DeleteRow(index int) error {
	if index < 0 || index >= len(t.Rows) {
		return &RowIndexError{Table: t.Name, Index: index, Len: len(t.Rows)}
	}
	t.Rows = append(t.Rows[:index], t.Rows[index+1:]...)
	t.dirty = true
	return nil
}

// Truncate removes every row, keeping the column definitions.
func (t *Table) Truncate() {
	t.Rows = t.Rows[:0]
	t.dirty = true
}

// Dirty reports whether the table has been mutated since it was last saved.
func (t *Table) Dirty() bool { return t.dirty }

// MarkClean clears the dirty flag after a successful save.
func (t *Table) MarkClean() { t.dirty = false }

// RowIndexError occurs when a row index is out of range for a table.
type RowIndexError struct {
	Table string
	Index int
	Len   int
}

func (e *RowIndexError) Error() string {
	return "row index out of range for table '" + e.Table + "'"
}
