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
	"fmt"
	"os"

	"github.com/relsql/miniql/engine"
	"github.com/relsql/miniql/sql"
)

// RunScript reads path in full and executes its statements in order,
// relying on the scanner's own comment and quote handling to find
// statement boundaries rather than splitting the raw text on ';' (which
// would misfire on a ';' inside a comment or string literal). The first
// error aborts the run with a non-zero exit code.
//
// noResultsMessage is emitted at most once, after every statement has run,
// if the script executed at least one SELECT-family statement and none of
// them produced any rows — not once per individual zero-row SELECT.
func RunScript(db *engine.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var ranAnySelect, gotAnyRows bool

	prog := sql.NewProgram(string(data))
	for !prog.Done() {
		stmt, err := prog.Next()
		if err != nil {
			fmt.Fprintln(os.Stderr, db.FormatError(err))
			return err
		}
		ranSelect, err := execStatementTracked(db, stmt, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, db.FormatError(err))
			return err
		}
		if ranSelect {
			ranAnySelect = true
			if db.HasOutput {
				gotAnyRows = true
			}
		}
	}

	if ranAnySelect && !gotAnyRows {
		fmt.Println(noResultsMessage)
	}

	return db.Store.Save()
}
