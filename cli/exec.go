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

package cli

import (
	"io"

	"github.com/relsql/miniql/engine"
	"github.com/relsql/miniql/sql"
)

const noResultsMessage = "There are no results to be displayed."

// runOne parses and executes a single ';'-terminated statement, writing
// its tabular result (if any) to w.
func runOne(db *engine.DB, src string, w io.Writer) error {
	stmt, err := sql.Parse(src)
	if err != nil {
		return err
	}
	return execStatement(db, stmt, w)
}

// execStatement executes an already-parsed statement, writing its tabular
// result (if any) to w. For a SELECT-family statement that matched zero
// rows it writes noResultsMessage instead. Used by the REPL, which executes
// one statement at a time and reports on each in isolation.
func execStatement(db *engine.DB, stmt sql.Statement, w io.Writer) error {
	ranSelect, err := execStatementTracked(db, stmt, w)
	if err != nil {
		return err
	}
	if ranSelect && !db.HasOutput {
		io.WriteString(w, noResultsMessage+"\n")
	}
	return nil
}

// execStatementTracked executes an already-parsed statement, writing its
// tabular result (if any) to w, and reports whether stmt was a SELECT-family
// statement. It never writes noResultsMessage itself: callers that execute a
// whole script track SELECT activity across every statement and decide
// whether to print it once the script has finished.
func execStatementTracked(db *engine.DB, stmt sql.Statement, w io.Writer) (ranSelect bool, err error) {
	if err := db.Execute(stmt, w); err != nil {
		return isSelectStatement(stmt), err
	}
	return isSelectStatement(stmt), nil
}

func isSelectStatement(stmt sql.Statement) bool {
	switch stmt.(type) {
	case *sql.Select, *sql.SelectExpression, *sql.SelectWithExpressions:
		return true
	}
	return false
}
