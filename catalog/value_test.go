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

func TestValueEquality(t *testing.T) {

	Convey("Equality is variant-wise", t, func() {
		So(NewInt(1).Equal(NewInt(1)), ShouldBeTrue)
		So(NewInt(1).Equal(NewInt(2)), ShouldBeFalse)
		So(NewString("a").Equal(NewString("a")), ShouldBeTrue)
		So(Null.Equal(Null), ShouldBeTrue)
		So(Null.Equal(NewInt(0)), ShouldBeFalse)
	})

	Convey("Int and float widen for cross-variant comparison", t, func() {
		So(NewInt(2).Equal(NewFloat(2.0)), ShouldBeTrue)
		So(NewInt(2).Equal(NewFloat(2.5)), ShouldBeFalse)
		So(NewString("2").Equal(NewInt(2)), ShouldBeFalse)
	})
}

func TestValueCompare(t *testing.T) {

	Convey("Strings order lexicographically", t, func() {
		cmp, ok := NewString("a").Compare(NewString("b"))
		So(ok, ShouldBeTrue)
		So(cmp, ShouldBeLessThan, 0)
	})

	Convey("Mixed int/float order after widening", t, func() {
		cmp, ok := NewInt(1).Compare(NewFloat(1.5))
		So(ok, ShouldBeTrue)
		So(cmp, ShouldBeLessThan, 0)
	})

	Convey("Strings and numbers are not ordering-compatible", t, func() {
		_, ok := NewString("1").Compare(NewInt(1))
		So(ok, ShouldBeFalse)
	})
}

func TestValueString(t *testing.T) {

	Convey("NULL renders as the literal text NULL", t, func() {
		So(Null.String(), ShouldEqual, "NULL")
	})

	Convey("A string value spelled NULL renders identically", t, func() {
		So(NewString("NULL").String(), ShouldEqual, "NULL")
	})

	Convey("Floats render without a fixed exponent format", t, func() {
		So(NewFloat(4.14).String(), ShouldEqual, "4.14")
	})
}
