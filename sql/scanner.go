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
	"bufio"
	"bytes"
	"io"
	"strings"
)

// eof is the sentinel rune returned once the reader is exhausted.
const eof = rune(0)

// scanner is a hand-written rune-at-a-time lexer with a next/undo buffering
// pattern. It carries no parser back-reference: comment filtering and token
// classification are entirely self-contained here.
type scanner struct {
	b []rune // runes already consumed, in read order
	a []rune // runes pushed back via undo, most-recent last
	r *bufio.Reader
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r)}
}

// Lexeme is one scanned token: its class and its text. For STRING the
// text is the contents between the quotes with backslash escapes applied.
type Lexeme struct {
	Tok Token
	Lit string
	Pos int
}

// scan returns the next significant token, skipping whitespace and
// comments. A lex error is reported as ILLEGAL carrying the offending text.
func (s *scanner) scan() (tok Token, lit string) {
	for {
		ch := s.next()

		switch {
		case ch == eof:
			return EOF, ""
		case isBlank(ch):
			s.scanBlank()
			continue
		case ch == '-':
			if chn := s.next(); chn == '-' {
				s.scanLineComment()
				continue
			} else {
				s.undo()
				return MINUS, "-"
			}
		case ch == '/':
			if chn := s.next(); chn == '*' {
				if !s.scanBlockComment() {
					return ILLEGAL, "unterminated block comment"
				}
				continue
			} else {
				s.undo()
				return SLASH, "/"
			}
		case isLetter(ch):
			return s.scanIdent(ch)
		case isNumber(ch):
			return s.scanNumber(ch)
		case ch == '\'' || ch == '"':
			return s.scanString(ch)
		default:
			return s.scanPunct(ch)
		}
	}
}

func (s *scanner) scanPunct(ch rune) (Token, string) {
	switch ch {
	case ',':
		return COMMA, ","
	case '(':
		return LPAREN, "("
	case ')':
		return RPAREN, ")"
	case ';':
		return SEMICOLON, ";"
	case '*':
		return ASTERISK, "*"
	case '.':
		return DOT, "."
	case '+':
		return PLUS, "+"
	case '%':
		return PERCENT, "%"
	case '=':
		return EQ, "="
	case '!':
		if s.next() == '=' {
			return NEQ, "!="
		}
		s.undo()
		return ILLEGAL, "!"
	case '<':
		if s.next() == '=' {
			return LTE, "<="
		}
		s.undo()
		return LT, "<"
	case '>':
		if s.next() == '=' {
			return GTE, ">="
		}
		s.undo()
		return GT, ">"
	default:
		return ILLEGAL, string(ch)
	}
}

func (s *scanner) scanBlank() {
	for {
		ch := s.next()
		if ch == eof {
			return
		}
		if !isBlank(ch) {
			s.undo()
			return
		}
	}
}

func (s *scanner) scanLineComment() {
	for {
		ch := s.next()
		if ch == eof || ch == '\n' {
			return
		}
	}
}

// scanBlockComment consumes up to and including the closing "*/". Reports
// false if EOF is reached first (unterminated comment).
func (s *scanner) scanBlockComment() bool {
	for {
		ch := s.next()
		if ch == eof {
			return false
		}
		if ch == '*' {
			if chn := s.next(); chn == '/' {
				return true
			}
			s.undo()
		}
	}
}

func (s *scanner) scanIdent(first rune) (Token, string) {
	var buf bytes.Buffer
	buf.WriteRune(first)
	for {
		ch := s.next()
		if ch == eof || !isIdentChar(ch) {
			if ch != eof {
				s.undo()
			}
			break
		}
		buf.WriteRune(ch)
	}
	lit := buf.String()
	if tok, ok := Lookup(strings.ToUpper(lit)); ok {
		return tok, lit
	}
	return IDENT, lit
}

// scanNumber consumes a decimal integer, or a float if a single '.'
// followed by more digits is encountered ("digits `.` digits").
func (s *scanner) scanNumber(first rune) (Token, string) {
	var buf bytes.Buffer
	buf.WriteRune(first)
	tok := NUMBER
	for {
		ch := s.next()
		switch {
		case ch == eof:
			return tok, buf.String()
		case isNumber(ch):
			buf.WriteRune(ch)
		case ch == '.' && tok == NUMBER:
			chn := s.next()
			if !isNumber(chn) {
				if chn != eof {
					s.undo()
				}
				s.undo()
				return tok, buf.String()
			}
			tok = FLOAT_LIT
			buf.WriteRune(ch)
			buf.WriteRune(chn)
		default:
			s.undo()
			return tok, buf.String()
		}
	}
}

// scanString consumes a quoted string. Single and double quotes are
// interchangeable delimiters; a backslash escapes the next
// rune verbatim, matching the "backslash pre-check, no named escapes"
// contract (the backslash itself is dropped, so '\n' yields the single
// character n, not a newline).
func (s *scanner) scanString(quote rune) (Token, string) {
	var buf bytes.Buffer
	for {
		ch := s.next()
		switch {
		case ch == eof:
			return ILLEGAL, "unterminated string literal"
		case ch == quote:
			return STRING, buf.String()
		case ch == '\\':
			chn := s.next()
			if chn == eof {
				return ILLEGAL, "unterminated string literal"
			}
			buf.WriteRune(chn)
		default:
			buf.WriteRune(ch)
		}
	}
}

func (s *scanner) next() rune {
	if len(s.a) > 0 {
		r := s.a[len(s.a)-1]
		s.a = s.a[:len(s.a)-1]
		s.b = append(s.b, r)
		return r
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		return eof
	}
	s.b = append(s.b, r)
	return r
}

func (s *scanner) undo() {
	if len(s.b) > 0 {
		r := s.b[len(s.b)-1]
		s.b = s.b[:len(s.b)-1]
		s.a = append(s.a, r)
	}
}

func isBlank(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isNumber(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentChar(ch rune) bool {
	return isLetter(ch) || isNumber(ch)
}
