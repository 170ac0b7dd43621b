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

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func peopleTable() *Table {
	return NewTable("people", []Column{
		{Name: "id", Type: IntType(32), PrimaryKey: true},
		{Name: "name", Type: VarcharType(10), Nullable: true},
		{Name: "age", Type: IntType(32), Nullable: false},
	})
}

func TestInsertRow(t *testing.T) {

	Convey("A row matching arity, type and nullability inserts cleanly", t, func() {
		tbl := peopleTable()
		err := tbl.InsertRow(Row{NewInt(1), NewString("Ada"), NewInt(30)})
		So(err, ShouldBeNil)
		So(tbl.Rows, ShouldHaveLength, 1)
	})

	Convey("Wrong arity fails and leaves the table unchanged", t, func() {
		tbl := peopleTable()
		err := tbl.InsertRow(Row{NewInt(1), NewString("Ada")})
		So(err, ShouldHaveSameTypeAs, &ArityError{})
		So(tbl.Rows, ShouldHaveLength, 0)
	})

	Convey("NULL in a non-nullable column fails", t, func() {
		tbl := peopleTable()
		err := tbl.InsertRow(Row{NewInt(1), NewString("Ada"), Null})
		So(err, ShouldHaveSameTypeAs, &NullViolationError{})
		So(tbl.Rows, ShouldHaveLength, 0)
	})

	Convey("A VARCHAR value longer than its declared length fails", t, func() {
		tbl := peopleTable()
		err := tbl.InsertRow(Row{NewInt(1), NewString("WayTooLongAName"), NewInt(30)})
		So(err, ShouldHaveSameTypeAs, &StringTooLongError{})
	})

	Convey("Duplicate primary-key values fail, leaving one row", t, func() {
		tbl := peopleTable()
		So(tbl.InsertRow(Row{NewInt(1), NewString("Ada"), NewInt(30)}), ShouldBeNil)
		err := tbl.InsertRow(Row{NewInt(1), NewString("Bob"), NewInt(40)})
		So(err, ShouldHaveSameTypeAs, &DuplicatePrimaryKeyError{})
		So(tbl.Rows, ShouldHaveLength, 1)
	})

	Convey("A nullable non-key column accepts NULL in more than one row", t, func() {
		tbl := NewTable("t", []Column{
			{Name: "k", Type: IntType(32), Nullable: true},
		})
		So(tbl.InsertRow(Row{Null}), ShouldBeNil)
		So(tbl.InsertRow(Row{Null}), ShouldBeNil)
		So(tbl.Rows, ShouldHaveLength, 2)
	})
}

func TestUpdateRowRevalidates(t *testing.T) {

	Convey("UpdateRow re-validates the assembled row", t, func() {
		tbl := peopleTable()
		So(tbl.InsertRow(Row{NewInt(1), NewString("Ada"), NewInt(30)}), ShouldBeNil)

		Convey("a type-incompatible update is rejected", func() {
			err := tbl.UpdateRow(0, Row{NewInt(1), NewString("Ada"), NewString("thirty")})
			So(err, ShouldHaveSameTypeAs, &TypeMismatchError{})
		})

		Convey("a row may keep its own primary-key value", func() {
			err := tbl.UpdateRow(0, Row{NewInt(1), NewString("Adabelle"), NewInt(31)})
			So(err, ShouldBeNil)
			So(tbl.Rows[0][1], ShouldResemble, NewString("Adabelle"))
		})

		Convey("a row cannot take another row's primary key", func() {
			So(tbl.InsertRow(Row{NewInt(2), NewString("Bob"), NewInt(40)}), ShouldBeNil)
			err := tbl.UpdateRow(0, Row{NewInt(2), NewString("Ada"), NewInt(30)})
			So(err, ShouldHaveSameTypeAs, &DuplicatePrimaryKeyError{})
		})
	})
}

func TestDeleteRow(t *testing.T) {

	Convey("DeleteRow removes without reordering survivors", t, func() {
		tbl := peopleTable()
		So(tbl.InsertRow(Row{NewInt(1), NewString("Ada"), NewInt(30)}), ShouldBeNil)
		So(tbl.InsertRow(Row{NewInt(2), NewString("Bob"), NewInt(40)}), ShouldBeNil)
		So(tbl.DeleteRow(0), ShouldBeNil)
		So(tbl.Rows, ShouldHaveLength, 1)
		So(tbl.Rows[0][0], ShouldResemble, NewInt(2))
	})

	Convey("Truncate empties rows but keeps columns", t, func() {
		tbl := peopleTable()
		So(tbl.InsertRow(Row{NewInt(1), NewString("Ada"), NewInt(30)}), ShouldBeNil)
		tbl.Truncate()
		So(tbl.Rows, ShouldHaveLength, 0)
		So(tbl.Columns, ShouldHaveLength, 3)
	})
}
