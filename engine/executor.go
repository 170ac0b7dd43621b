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

package engine

import (
	"io"
	"sort"

	"github.com/relsql/miniql/catalog"
	"github.com/relsql/miniql/log"
	"github.com/relsql/miniql/sql"
)

// ErrorMode selects how errors are rendered to the user. It is held on
// the DB instance rather than as process-global state.
type ErrorMode int

const (
	Brief ErrorMode = iota
	Detailed
)

// DB is the executor: a catalog.Store plus the handful of session-scoped
// session-scoped toggles this engine needs. Stateless across calls
// except for HasOutput, which Execute clears at entry and sets whenever
// a result table is emitted.
type DB struct {
	Store     catalog.Store
	ErrorMode ErrorMode
	HasOutput bool
}

// New wraps a store as a ready-to-use database handle.
func New(store catalog.Store) *DB {
	return &DB{Store: store, ErrorMode: Brief}
}

// Execute runs one parsed statement, writing any query output to w.
func (db *DB) Execute(stmt sql.Statement, w io.Writer) error {
	db.HasOutput = false

	switch v := stmt.(type) {
	case *sql.CreateTable:
		return db.executeCreateTable(v)
	case *sql.DropTable:
		return db.Store.DropTable(v.Name)
	case *sql.DropTables:
		return db.executeDropTables(v)
	case *sql.Insert:
		return db.executeInsert(v)
	case *sql.InsertMultiple:
		return db.executeInsertMultiple(v)
	case *sql.InsertWithColumns:
		return db.executeInsertWithColumns(v)
	case *sql.Update:
		return db.executeUpdate(v)
	case *sql.Delete:
		return db.executeDelete(v)
	case *sql.Select:
		return db.executeSelect(v, w)
	case *sql.SelectExpression:
		return db.executeSelectExpression(v, w)
	case *sql.SelectWithExpressions:
		return db.executeSelectWithExpressions(v, w)
	}
	return &TypeError{Reason: "unrecognized statement"}
}

func (db *DB) executeCreateTable(stmt *sql.CreateTable) error {
	columns := make([]catalog.Column, len(stmt.Columns))
	for i, c := range stmt.Columns {
		columns[i] = catalog.Column{Name: c.Name, Type: c.Type, Nullable: c.Nullable, PrimaryKey: c.PrimaryKey}
	}
	return db.Store.CreateTable(catalog.NewTable(stmt.Name, columns))
}

// executeDropTables drops each named table in order; a failure on one name
// is logged and does not stop the rest.
func (db *DB) executeDropTables(stmt *sql.DropTables) error {
	for _, name := range stmt.Names {
		if err := db.Store.DropTable(name); err != nil {
			log.Errorf("DROP TABLE %s: %v", name, err)
		}
	}
	return nil
}

func (db *DB) executeInsert(stmt *sql.Insert) error {
	return db.insertPositional(stmt.Table, stmt.Values)
}

func (db *DB) executeInsertMultiple(stmt *sql.InsertMultiple) error {
	for _, row := range stmt.Rows {
		if err := db.insertPositional(stmt.Table, row); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) insertPositional(tableName string, values []sql.Expr) error {
	table := db.Store.GetTableMut(tableName)
	if table == nil {
		return &catalog.TableNotFoundError{Name: tableName}
	}
	if len(values) != len(table.Columns) {
		return &catalog.ArityError{Table: tableName, Expected: len(table.Columns), Found: len(values)}
	}

	row := make(catalog.Row, len(values))
	for i, e := range values {
		v, err := evalValueExpr(e)
		if err != nil {
			return err
		}
		row[i] = v
	}
	return table.InsertRow(row)
}

func (db *DB) executeInsertWithColumns(stmt *sql.InsertWithColumns) error {
	table := db.Store.GetTableMut(stmt.Table)
	if table == nil {
		return &catalog.TableNotFoundError{Name: stmt.Table}
	}

	colIdx := make([]int, len(stmt.Columns))
	for i, name := range stmt.Columns {
		idx := table.ColumnIndex(name)
		if idx < 0 {
			return &UnknownColumnError{Column: name}
		}
		colIdx[i] = idx
	}

	for _, values := range stmt.Rows {
		if len(values) != len(stmt.Columns) {
			return &catalog.ArityError{Table: stmt.Table, Expected: len(stmt.Columns), Found: len(values)}
		}

		row := make(catalog.Row, len(table.Columns))
		for i := range row {
			row[i] = catalog.Null
		}
		for i, e := range values {
			v, err := evalValueExpr(e)
			if err != nil {
				return err
			}
			row[colIdx[i]] = v
		}
		if err := table.InsertRow(row); err != nil {
			return err
		}
	}
	return nil
}

// executeUpdate computes the matching row set against a read-only pass,
// then rewrites each row's assigned columns and validates it: this
// engine re-validates the whole row on UPDATE.
func (db *DB) executeUpdate(stmt *sql.Update) error {
	table := db.Store.GetTableMut(stmt.Table)
	if table == nil {
		return &catalog.TableNotFoundError{Name: stmt.Table}
	}

	assignIdx := make([]int, 0, len(stmt.Assignments))
	assignVal := make([]sql.Expr, 0, len(stmt.Assignments))
	for _, a := range stmt.Assignments {
		idx := table.ColumnIndex(a.Column)
		if idx < 0 {
			continue // missing columns in the assignment list are ignored silently
		}
		assignIdx = append(assignIdx, idx)
		assignVal = append(assignVal, a.Value)
	}

	matched, err := db.matchingRows(table, stmt.Where)
	if err != nil {
		return err
	}

	for _, i := range matched {
		row := make(catalog.Row, len(table.Rows[i]))
		copy(row, table.Rows[i])
		for k, idx := range assignIdx {
			v, err := evalValueExpr(assignVal[k])
			if err != nil {
				return err
			}
			row[idx] = v
		}
		if err := table.UpdateRow(i, row); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) executeDelete(stmt *sql.Delete) error {
	table := db.Store.GetTableMut(stmt.Table)
	if table == nil {
		return &catalog.TableNotFoundError{Name: stmt.Table}
	}

	if stmt.Where == nil {
		table.Truncate()
		return nil
	}

	matched, err := db.matchingRows(table, stmt.Where)
	if err != nil {
		return err
	}
	for i := len(matched) - 1; i >= 0; i-- {
		if err := table.DeleteRow(matched[i]); err != nil {
			return err
		}
	}
	return nil
}

// matchingRows returns the indices of rows satisfying where (all rows if
// where is nil), evaluated through the catalog-free WHERE path.
func (db *DB) matchingRows(table *catalog.Table, where sql.Cond) ([]int, error) {
	var matched []int
	for i, row := range table.Rows {
		if where == nil {
			matched = append(matched, i)
			continue
		}
		ctx := rowContext{table: table, row: row}
		ok, err := evalCond(ctx, where)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, i)
		}
	}
	return matched, nil
}

func (db *DB) executeSelect(stmt *sql.Select, w io.Writer) error {
	table := db.Store.GetTable(stmt.Table)
	if table == nil {
		return &catalog.TableNotFoundError{Name: stmt.Table}
	}

	headers := stmt.Columns
	if headers == nil {
		headers = make([]string, len(table.Columns))
		for i, c := range table.Columns {
			headers[i] = c.Name
		}
	}
	colIdx := make([]int, len(headers))
	for i, name := range headers {
		idx := table.ColumnIndex(name)
		if idx < 0 {
			return &UnknownColumnError{Column: name}
		}
		colIdx[i] = idx
	}

	matched, err := db.matchingRows(table, stmt.Where)
	if err != nil {
		return err
	}
	if err := db.sortMatched(table, matched, stmt.OrderBy); err != nil {
		return err
	}

	if len(matched) == 0 {
		return nil
	}

	rows := make([][]string, len(matched))
	for r, i := range matched {
		cells := make([]string, len(colIdx))
		for c, idx := range colIdx {
			cells[c] = table.Rows[i][idx].String()
		}
		rows[r] = cells
	}

	db.HasOutput = true
	io.WriteString(w, Format(headers, rows))
	return nil
}

func (db *DB) executeSelectExpression(stmt *sql.SelectExpression, w io.Writer) error {
	ctx := rowContext{}
	cells := make([]string, len(stmt.Expressions))
	for i, e := range stmt.Expressions {
		v, err := eval(ctx, e)
		if err != nil {
			return err
		}
		cells[i] = v.String()
	}

	db.HasOutput = true
	io.WriteString(w, Format(stmt.EchoText, [][]string{cells}))
	return nil
}

func (db *DB) executeSelectWithExpressions(stmt *sql.SelectWithExpressions, w io.Writer) error {
	table := db.Store.GetTable(stmt.Table)
	if table == nil {
		return &catalog.TableNotFoundError{Name: stmt.Table}
	}

	matched, err := db.matchingRows(table, stmt.Where)
	if err != nil {
		return err
	}
	if err := db.sortMatched(table, matched, stmt.OrderBy); err != nil {
		return err
	}

	if len(matched) == 0 {
		return nil
	}

	rows := make([][]string, len(matched))
	for r, i := range matched {
		ctx := rowContext{table: table, row: table.Rows[i], store: db.Store}
		cells := make([]string, len(stmt.Expressions))
		for c, e := range stmt.Expressions {
			v, err := eval(ctx, e)
			if err != nil {
				return err
			}
			cells[c] = v.String()
		}
		rows[r] = cells
	}

	db.HasOutput = true
	io.WriteString(w, Format(stmt.EchoText, rows))
	return nil
}

// sortMatched reorders matched (table row indices) in place according to
// orderBy, with a numeric fast path when both compared cells are numeric.
func (db *DB) sortMatched(table *catalog.Table, matched []int, orderBy *sql.OrderBy) error {
	if orderBy == nil {
		return nil
	}
	idx := table.ColumnIndex(orderBy.Column)
	if idx < 0 {
		return &MissingSortColumnError{Column: orderBy.Column}
	}

	if orderBy.Desc {
		sort.SliceStable(matched, func(i, j int) bool {
			a := table.Rows[matched[i]][idx]
			b := table.Rows[matched[j]][idx]
			return lessValue(b, a)
		})
	} else {
		sort.SliceStable(matched, func(i, j int) bool {
			a := table.Rows[matched[i]][idx]
			b := table.Rows[matched[j]][idx]
			return lessValue(a, b)
		})
	}
	return nil
}

func lessValue(a, b catalog.Value) bool {
	if cmp, ok := a.Compare(b); ok {
		return cmp < 0
	}
	return a.String() < b.String()
}
