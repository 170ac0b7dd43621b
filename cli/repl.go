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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/relsql/miniql/engine"
)

const (
	promptFresh        = "> "
	promptContinuation = "-> "
)

var helpText = strings.TrimSpace(`
Available commands:
  help               show this text
  exit               quit the session
  list               list every table in the catalog
  save               flush the catalog to disk
  load               discard the in-memory catalog and reload it from disk
  clear              discard the current SQL buffer
  toggle_error_mode  switch between brief and detailed error output
SQL statements end with ';' and may span multiple lines.
Comments start with '--' or are enclosed in '/* ... */'.
`)

// RunREPL reads lines from stdin until "exit", accumulating non-command
// input into a buffer until a ';' terminates it (prompt toggling,
// bare-command dispatch, semicolon-triggered flush). Errors are printed
// and the session continues.
func RunREPL(db *engine.DB) error {
	scanner := bufio.NewScanner(os.Stdin)

	var buf strings.Builder
	continuation := false

	for {
		fmt.Print(promptOf(continuation))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !continuation || line == "clear" || line == "exit" {
			if handled := handleCommand(db, line, &buf, &continuation); handled {
				if line == "exit" {
					return nil
				}
				continue
			}
		}

		buf.WriteString(line)
		buf.WriteByte(' ')

		if strings.Contains(buf.String(), ";") {
			flushBuffer(db, &buf, &continuation)
		} else {
			continuation = true
		}
	}

	return scanner.Err()
}

func promptOf(continuation bool) string {
	if continuation {
		return promptContinuation
	}
	return promptFresh
}

// handleCommand dispatches the bare, non-SQL REPL commands.
// It reports whether line was one of them.
func handleCommand(db *engine.DB, line string, buf *strings.Builder, continuation *bool) bool {
	switch line {
	case "exit":
		return true
	case "help":
		fmt.Println(helpText)
	case "list":
		tables := db.Store.ListTables()
		if len(tables) == 0 {
			fmt.Println("No tables.")
		} else {
			for _, name := range tables {
				fmt.Println(" ", name)
			}
		}
	case "save":
		if err := db.Store.Save(); err != nil {
			fmt.Println(db.FormatError(err))
		} else {
			fmt.Println("Saved.")
		}
	case "load":
		if err := db.Store.Load(); err != nil {
			fmt.Println(db.FormatError(err))
		} else {
			fmt.Println("Loaded.")
		}
	case "clear":
		buf.Reset()
		*continuation = false
		fmt.Println("Buffer cleared.")
	case "toggle_error_mode":
		if db.ErrorMode == engine.Brief {
			db.ErrorMode = engine.Detailed
			fmt.Println("Error mode: detailed.")
		} else {
			db.ErrorMode = engine.Brief
			fmt.Println("Error mode: brief.")
		}
	default:
		return false
	}
	buf.Reset()
	*continuation = false
	return true
}

// flushBuffer splits the accumulated buffer on ';', executes every
// complete statement, and — if the buffer did not end with ';' — keeps
// the trailing partial statement for the next line (continuation mode).
func flushBuffer(db *engine.DB, buf *strings.Builder, continuation *bool) {
	text := buf.String()
	endsWithSemicolon := strings.HasSuffix(strings.TrimSpace(text), ";")
	parts := strings.Split(text, ";")
	buf.Reset()

	for i, part := range parts {
		stmt := strings.TrimSpace(part)
		if stmt == "" {
			continue
		}
		last := i == len(parts)-1
		if last && !endsWithSemicolon {
			buf.WriteString(stmt)
			buf.WriteByte(' ')
			*continuation = true
			return
		}
		if err := runOne(db, stmt+";", os.Stdout); err != nil {
			fmt.Println(formatReplError(db, err))
		}
	}

	*continuation = false
}

func formatReplError(db *engine.DB, err error) string {
	msg := db.FormatError(err)
	if db.ErrorMode == engine.Detailed {
		return ansi.Color(msg, "red")
	}
	return msg
}
