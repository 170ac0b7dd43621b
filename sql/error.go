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

import "fmt"

// LexError occurs when the scanner meets a byte it cannot classify.
type LexError struct {
	Lit string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: unexpected input %q", e.Lit)
}

// ParseError carries a short "expected X, found Y" diagnostic.
type ParseError struct {
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: expected %s, found %s", e.Expected, e.Found)
}

// EmptyStatementError occurs when a token sequence is empty once comments
// are filtered out.
type EmptyStatementError struct{}

func (e *EmptyStatementError) Error() string {
	return "parse error: empty statement"
}
