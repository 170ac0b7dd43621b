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

import "fmt"

// ArityError occurs when a row does not have one value per column.
type ArityError struct {
	Table    string
	Expected int
	Found    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("table '%s' expects %d values per row, found %d", e.Table, e.Expected, e.Found)
}

// TypeMismatchError occurs when a value's variant is not compatible with
// its column's declared type.
type TypeMismatchError struct {
	Table  string
	Column string
	Want   Type
	Got    Value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("column '%s.%s' expects %s, found %s", e.Table, e.Column, e.Want, e.Got.GoString())
}

// StringTooLongError occurs when a VARCHAR(n) value exceeds n characters.
type StringTooLongError struct {
	Table  string
	Column string
	Max    int
	Length int
}

func (e *StringTooLongError) Error() string {
	return fmt.Sprintf("column '%s.%s' accepts at most %d characters, found %d", e.Table, e.Column, e.Max, e.Length)
}

// NullViolationError occurs when NULL is assigned to a non-nullable column.
type NullViolationError struct {
	Table  string
	Column string
}

func (e *NullViolationError) Error() string {
	return fmt.Sprintf("column '%s.%s' does not accept NULL", e.Table, e.Column)
}

// DuplicatePrimaryKeyError occurs when a primary-key value collides with an
// existing row.
type DuplicatePrimaryKeyError struct {
	Table  string
	Column string
	Value  Value
}

func (e *DuplicatePrimaryKeyError) Error() string {
	return fmt.Sprintf("duplicate value %s for primary key '%s.%s'", e.Value.GoString(), e.Table, e.Column)
}
