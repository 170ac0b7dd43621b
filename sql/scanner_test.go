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
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func scanAll(src string) []Lexeme {
	sc := newScanner(strings.NewReader(src))
	var out []Lexeme
	for {
		tok, lit := sc.scan()
		out = append(out, Lexeme{Tok: tok, Lit: lit})
		if tok == EOF || tok == ILLEGAL {
			break
		}
	}
	return out
}

func TestScannerKeywordsAreCaseInsensitive(t *testing.T) {

	Convey("select, Select and SELECT all scan as the SELECT keyword", t, func() {
		for _, src := range []string{"select", "Select", "SELECT"} {
			toks := scanAll(src)
			So(toks[0].Tok, ShouldEqual, SELECT)
		}
	})
}

func TestScannerLiterals(t *testing.T) {

	Convey("Integers and floats are distinguished", t, func() {
		toks := scanAll("42 3.14")
		So(toks[0].Tok, ShouldEqual, NUMBER)
		So(toks[0].Lit, ShouldEqual, "42")
		So(toks[1].Tok, ShouldEqual, FLOAT_LIT)
		So(toks[1].Lit, ShouldEqual, "3.14")
	})

	Convey("Single and double quotes are interchangeable string delimiters", t, func() {
		toks := scanAll(`'abc' "abc"`)
		So(toks[0].Tok, ShouldEqual, STRING)
		So(toks[0].Lit, ShouldEqual, "abc")
		So(toks[1].Tok, ShouldEqual, STRING)
		So(toks[1].Lit, ShouldEqual, "abc")
	})

	Convey("An unterminated string is a lex error", t, func() {
		toks := scanAll(`'abc`)
		So(toks[0].Tok, ShouldEqual, ILLEGAL)
	})
}

func TestScannerComments(t *testing.T) {

	Convey("Line comments run to end of line", t, func() {
		toks := scanAll("SELECT -- comment\n 1")
		So(toks[0].Tok, ShouldEqual, SELECT)
		So(toks[1].Tok, ShouldEqual, NUMBER)
	})

	Convey("Block comments span multiple lines", t, func() {
		toks := scanAll("SELECT /* a\nb */ 1")
		So(toks[0].Tok, ShouldEqual, SELECT)
		So(toks[1].Tok, ShouldEqual, NUMBER)
	})
}

func TestScannerOperators(t *testing.T) {

	Convey("Two-character comparisons scan as one token", t, func() {
		toks := scanAll("<= >= != = < >")
		want := []Token{LTE, GTE, NEQ, EQ, LT, GT}
		for i, tok := range want {
			So(toks[i].Tok, ShouldEqual, tok)
		}
	})
}
