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
	"fmt"
	"strings"
)

// parser is a recursive-descent parser driven by a fully materialized,
// comment-filtered token buffer. SELECT disambiguation needs to rewind an
// arbitrary distance rather than a single token, so the whole statement is
// tokenized up front and the parser walks an index into it (mark/reset)
// rather than re-reading the scanner.
type parser struct {
	toks []Lexeme
	pos  int
}

func newParser(src string) *parser {
	sc := newScanner(strings.NewReader(src))
	var toks []Lexeme
	for {
		tok, lit := sc.scan()
		toks = append(toks, Lexeme{Tok: tok, Lit: lit})
		if tok == EOF || tok == ILLEGAL {
			break
		}
	}
	return &parser{toks: toks}
}

// Parse parses a single statement out of src. Trailing content after the
// terminating ';' (if present) is ignored; callers that split a script on
// ';' themselves pass one statement at a time.
func Parse(src string) (Statement, error) {
	p := newParser(src)
	if p.peek().Tok == EOF {
		return nil, &EmptyStatementError{}
	}
	if last := p.toks[len(p.toks)-1]; last.Tok == ILLEGAL {
		return nil, &LexError{Lit: last.Lit}
	}
	return p.parseStatement()
}

// Program parses a whole script (multiple ';'-terminated statements) off
// one token buffer, so script execution never has to re-split source text
// on ';' itself: comments are stripped and statements separated by ';'
// are executed in order by repeated calls to Next.
type Program struct {
	p *parser
}

// NewProgram tokenizes src once and returns a cursor over its statements.
func NewProgram(src string) *Program {
	return &Program{p: newParser(src)}
}

// Done reports whether every statement in the program has been consumed.
func (pr *Program) Done() bool {
	return pr.p.peek().Tok == EOF
}

// Next parses and returns the next statement.
func (pr *Program) Next() (Statement, error) {
	if pr.p.peek().Tok == ILLEGAL {
		return nil, &LexError{Lit: pr.p.peek().Lit}
	}
	return pr.p.parseStatement()
}

func (p *parser) parseStatement() (Statement, error) {
	switch p.peek().Tok {
	case CREATE:
		return p.parseCreateTable()
	case DROP:
		return p.parseDropTable()
	case INSERT:
		return p.parseInsert()
	case UPDATE:
		return p.parseUpdate()
	case DELETE:
		return p.parseDelete()
	case SELECT:
		return p.parseSelect()
	default:
		return nil, &ParseError{Expected: "a statement keyword", Found: p.peek().describe()}
	}
}

func (l Lexeme) describe() string {
	if l.Tok == EOF {
		return "end of input"
	}
	if l.Lit == "" {
		return l.Tok.String()
	}
	return fmt.Sprintf("%q", l.Lit)
}

func (p *parser) peek() Lexeme {
	if p.pos >= len(p.toks) {
		return Lexeme{Tok: EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) peekAt(offset int) Lexeme {
	i := p.pos + offset
	if i >= len(p.toks) {
		return Lexeme{Tok: EOF}
	}
	return p.toks[i]
}

func (p *parser) next() Lexeme {
	l := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return l
}

// mark and reset implement the backtracking the SELECT projection fallback
// needs.
func (p *parser) mark() int       { return p.pos }
func (p *parser) reset(mark int)  { p.pos = mark }

func (p *parser) expect(toks ...Token) (Lexeme, error) {
	l := p.peek()
	for _, t := range toks {
		if l.Tok == t {
			p.next()
			return l, nil
		}
	}
	return l, &ParseError{Expected: describeTokens(toks), Found: l.describe()}
}

func (p *parser) accept(toks ...Token) (Lexeme, bool) {
	l := p.peek()
	for _, t := range toks {
		if l.Tok == t {
			p.next()
			return l, true
		}
	}
	return l, false
}

func describeTokens(toks []Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " or ")
}

func (p *parser) expectIdent() (string, error) {
	l, err := p.expect(IDENT)
	if err != nil {
		return "", err
	}
	return l.Lit, nil
}
