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

// Package engine implements the executor, expression evaluator and result
// formatter that turn a parsed sql.Statement into effects on a
// catalog.Store (and, for queries, printed output).
package engine

import (
	"fmt"

	"github.com/relsql/miniql/catalog"
	"github.com/relsql/miniql/sql"
)

// UnknownColumnError occurs when an expression references a column that
// cannot be resolved against the current row context.
type UnknownColumnError struct {
	Table  string
	Column string
}

func (e *UnknownColumnError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("unknown column '%s.%s'", e.Table, e.Column)
	}
	return fmt.Sprintf("unknown column '%s'", e.Column)
}

// TypeError occurs when an expression combines operands of incompatible
// variants.
type TypeError struct {
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: %s", e.Reason)
}

// ArithmeticError occurs on division by a zero denominator, the one
// arithmetic failure mode this engine treats specially.
type ArithmeticError struct {
	Op string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error: %s by zero", e.Op)
}

// MissingSortColumnError occurs when ORDER BY names a column absent from
// the result set.
type MissingSortColumnError struct {
	Column string
}

func (e *MissingSortColumnError) Error() string {
	return fmt.Sprintf("ORDER BY: unknown column '%s'", e.Column)
}

// TransactionError is reserved for future use; nothing in this engine
// raises it yet.
type TransactionError struct {
	Reason string
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction error: %s", e.Reason)
}

// FormatError renders err per the database's current verbosity toggle
// Brief mode uses a fixed short string per error kind, except
// that non-null and primary-key violations keep their detailed text
// because the diagnostic value is high; kinds with no short form (I/O,
// serialization, row index, transaction) also keep their full text.
// Detailed mode always returns the full text.
func (db *DB) FormatError(err error) string {
	if db.ErrorMode == Detailed {
		return "Error: " + err.Error()
	}

	switch err.(type) {
	case *catalog.NullViolationError, *catalog.DuplicatePrimaryKeyError:
		return "Error: " + err.Error()
	case *sql.LexError, *sql.ParseError, *sql.EmptyStatementError:
		return "Error: Syntax error"
	case *catalog.TableNotFoundError, *catalog.TableExistsError:
		return "Error: Table error"
	case *catalog.ArityError, *catalog.TypeMismatchError, *catalog.StringTooLongError:
		return "Error: Type error"
	case *UnknownColumnError, *TypeError, *ArithmeticError, *MissingSortColumnError:
		return "Error: Query error"
	default:
		return "Error: " + err.Error()
	}
}
