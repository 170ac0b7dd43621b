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

package sql

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseCreateTable(t *testing.T) {

	Convey("A CREATE TABLE with a primary key and nullability modifiers parses", t, func() {
		stmt, err := Parse(`CREATE TABLE people (id INT PRIMARY KEY, name VARCHAR(10) NULL, age INT NOT NULL)`)
		So(err, ShouldBeNil)
		ct, ok := stmt.(*CreateTable)
		So(ok, ShouldBeTrue)
		So(ct.Name, ShouldEqual, "people")
		So(ct.Columns, ShouldHaveLength, 3)
		So(ct.Columns[0].PrimaryKey, ShouldBeTrue)
		So(ct.Columns[0].Nullable, ShouldBeFalse)
		So(ct.Columns[1].Nullable, ShouldBeTrue)
		So(ct.Columns[2].Nullable, ShouldBeFalse)
	})

	Convey("Two PRIMARY KEY columns is a parse error", t, func() {
		_, err := Parse(`CREATE TABLE t (a INT PRIMARY KEY, b INT PRIMARY KEY)`)
		So(err, ShouldHaveSameTypeAs, &ParseError{})
	})

	Convey("A bare VARCHAR with no length is a parse error", t, func() {
		_, err := Parse(`CREATE TABLE t (a VARCHAR)`)
		So(err, ShouldNotBeNil)
	})
}

func TestParseDropTable(t *testing.T) {

	Convey("DROP TABLE with one name yields DropTable", t, func() {
		stmt, err := Parse(`DROP TABLE people`)
		So(err, ShouldBeNil)
		dt, ok := stmt.(*DropTable)
		So(ok, ShouldBeTrue)
		So(dt.Name, ShouldEqual, "people")
	})

	Convey("DROP TABLE with a comma list yields DropTables", t, func() {
		stmt, err := Parse(`DROP TABLE a, b, c`)
		So(err, ShouldBeNil)
		dt, ok := stmt.(*DropTables)
		So(ok, ShouldBeTrue)
		So(dt.Names, ShouldResemble, []string{"a", "b", "c"})
	})
}

func TestParseInsert(t *testing.T) {

	Convey("A single tuple insert yields Insert", t, func() {
		stmt, err := Parse(`INSERT INTO people VALUES (1, 'Ada', 30)`)
		So(err, ShouldBeNil)
		ins, ok := stmt.(*Insert)
		So(ok, ShouldBeTrue)
		So(ins.Table, ShouldEqual, "people")
		So(ins.Values, ShouldHaveLength, 3)
	})

	Convey("Multiple tuples yield InsertMultiple", t, func() {
		stmt, err := Parse(`INSERT INTO people VALUES (1, 'Ada', 30), (2, 'Bob', 40)`)
		So(err, ShouldBeNil)
		ins, ok := stmt.(*InsertMultiple)
		So(ok, ShouldBeTrue)
		So(ins.Rows, ShouldHaveLength, 2)
	})

	Convey("An explicit column list yields InsertWithColumns", t, func() {
		stmt, err := Parse(`INSERT INTO people (id, name) VALUES (1, 'Ada')`)
		So(err, ShouldBeNil)
		ins, ok := stmt.(*InsertWithColumns)
		So(ok, ShouldBeTrue)
		So(ins.Columns, ShouldResemble, []string{"id", "name"})
	})
}

func TestParseUpdate(t *testing.T) {

	Convey("UPDATE with a WHERE clause parses its assignments and condition", t, func() {
		stmt, err := Parse(`UPDATE people SET age = 31, name = 'Adabelle' WHERE id = 1`)
		So(err, ShouldBeNil)
		up, ok := stmt.(*Update)
		So(ok, ShouldBeTrue)
		So(up.Table, ShouldEqual, "people")
		So(up.Assignments, ShouldHaveLength, 2)
		So(up.Where, ShouldNotBeNil)
	})

	Convey("UPDATE without WHERE leaves Where nil", t, func() {
		stmt, err := Parse(`UPDATE people SET age = 31`)
		So(err, ShouldBeNil)
		up := stmt.(*Update)
		So(up.Where, ShouldBeNil)
	})
}

func TestParseDelete(t *testing.T) {

	Convey("DELETE FROM with WHERE parses the condition", t, func() {
		stmt, err := Parse(`DELETE FROM people WHERE age < 18`)
		So(err, ShouldBeNil)
		del, ok := stmt.(*Delete)
		So(ok, ShouldBeTrue)
		So(del.Table, ShouldEqual, "people")
		So(del.Where, ShouldNotBeNil)
	})

	Convey("DELETE FROM without WHERE has a nil condition", t, func() {
		stmt, err := Parse(`DELETE FROM people`)
		So(err, ShouldBeNil)
		del := stmt.(*Delete)
		So(del.Where, ShouldBeNil)
	})
}

func TestParseSelectDisambiguation(t *testing.T) {

	Convey("SELECT * FROM t yields Select with nil Columns", t, func() {
		stmt, err := Parse(`SELECT * FROM people`)
		So(err, ShouldBeNil)
		sel, ok := stmt.(*Select)
		So(ok, ShouldBeTrue)
		So(sel.Columns, ShouldBeNil)
	})

	Convey("SELECT col, col FROM t yields a plain Select column list", t, func() {
		stmt, err := Parse(`SELECT id, name FROM people`)
		So(err, ShouldBeNil)
		sel, ok := stmt.(*Select)
		So(ok, ShouldBeTrue)
		So(sel.Columns, ShouldResemble, []string{"id", "name"})
	})

	Convey("SELECT col, col FROM t WHERE ... ORDER BY ... carries Where and OrderBy", t, func() {
		stmt, err := Parse(`SELECT id, name FROM people WHERE age > 18 ORDER BY name DESC`)
		So(err, ShouldBeNil)
		sel := stmt.(*Select)
		So(sel.Where, ShouldNotBeNil)
		So(sel.OrderBy, ShouldNotBeNil)
		So(sel.OrderBy.Column, ShouldEqual, "name")
		So(sel.OrderBy.Desc, ShouldBeTrue)
	})

	Convey("SELECT with an arithmetic expression and a FROM yields SelectWithExpressions", t, func() {
		stmt, err := Parse(`SELECT age + 1 FROM people`)
		So(err, ShouldBeNil)
		swe, ok := stmt.(*SelectWithExpressions)
		So(ok, ShouldBeTrue)
		So(swe.Table, ShouldEqual, "people")
		So(swe.Expressions, ShouldHaveLength, 1)
	})

	Convey("SELECT with only literal expressions and no FROM yields SelectExpression", t, func() {
		stmt, err := Parse(`SELECT 1 + 2, 'hi'`)
		So(err, ShouldBeNil)
		se, ok := stmt.(*SelectExpression)
		So(ok, ShouldBeTrue)
		So(se.Expressions, ShouldHaveLength, 2)
	})
}

func TestParseCond(t *testing.T) {

	Convey("AND binds tighter than OR", t, func() {
		stmt, err := Parse(`SELECT * FROM t WHERE a = 1 OR b = 2 AND c = 3`)
		So(err, ShouldBeNil)
		sel := stmt.(*Select)
		or, ok := sel.Where.(*OrCond)
		So(ok, ShouldBeTrue)
		_, leftIsCompare := or.Left.(*CompareCond)
		So(leftIsCompare, ShouldBeTrue)
		_, rightIsAnd := or.Right.(*AndCond)
		So(rightIsAnd, ShouldBeTrue)
	})

	Convey("IS NULL and IS NOT NULL parse as IsNullCond", t, func() {
		stmt, err := Parse(`SELECT * FROM t WHERE a IS NULL`)
		So(err, ShouldBeNil)
		sel := stmt.(*Select)
		in, ok := sel.Where.(*IsNullCond)
		So(ok, ShouldBeTrue)
		So(in.Not, ShouldBeFalse)

		stmt2, err := Parse(`SELECT * FROM t WHERE a IS NOT NULL`)
		So(err, ShouldBeNil)
		sel2 := stmt2.(*Select)
		in2 := sel2.Where.(*IsNullCond)
		So(in2.Not, ShouldBeTrue)
	})
}

func TestParseEmptyStatement(t *testing.T) {

	Convey("Blank input is an EmptyStatementError", t, func() {
		_, err := Parse(`   `)
		So(err, ShouldHaveSameTypeAs, &EmptyStatementError{})
	})

	Convey("An unterminated string literal is a LexError", t, func() {
		_, err := Parse(`SELECT * FROM t WHERE a = 'oops`)
		So(err, ShouldHaveSameTypeAs, &LexError{})
	})
}

func TestProgramSplitsOnSemicolons(t *testing.T) {

	Convey("A multi-statement script yields one statement per call to Next", t, func() {
		prog := NewProgram(`
			CREATE TABLE t (a INT PRIMARY KEY); -- a comment; with a semicolon
			INSERT INTO t VALUES (1);
			SELECT * FROM t;
		`)

		var stmts []Statement
		for !prog.Done() {
			stmt, err := prog.Next()
			So(err, ShouldBeNil)
			stmts = append(stmts, stmt)
		}
		So(stmts, ShouldHaveLength, 3)
		_, ok := stmts[0].(*CreateTable)
		So(ok, ShouldBeTrue)
		_, ok = stmts[1].(*Insert)
		So(ok, ShouldBeTrue)
		_, ok = stmts[2].(*Select)
		So(ok, ShouldBeTrue)
	})
}
