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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatColumnWidths(t *testing.T) {

	Convey("Column width is the longest of header, data, or 3", t, func() {
		out := Format([]string{"id", "name"}, [][]string{
			{"1", "Ada"},
			{"22", "Grace"},
		})
		So(out, ShouldEqual,
			"| id  | name  |\n"+
				"| --- | ----- |\n"+
				"| 1   | Ada   |\n"+
				"| 22  | Grace |\n")
	})
}

func TestFormatConflatesNullWithLiteralNULL(t *testing.T) {

	Convey("A real NULL and the literal string NULL render identically, blank", t, func() {
		withNull := Format([]string{"n"}, [][]string{{"NULL"}})
		So(withNull, ShouldEqual,
			"| n   |\n"+
				"| --- |\n"+
				"|     |\n")
	})
}
