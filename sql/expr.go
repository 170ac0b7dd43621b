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
	"strconv"

	"github.com/relsql/miniql/catalog"
)

// parseExpr parses the additive level: term (('+' | '-') term)*.
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept(PLUS, MINUS)
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: op.Tok, Right: right}
	}
}

// parseTerm parses the multiplicative level: factor (('*' | '/') factor)*.
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept(ASTERISK, SLASH)
		if !ok {
			return left, nil
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: op.Tok, Right: right}
	}
}

// parseFactor parses a primary: a parenthesized expression, a unary
// minus, a literal, or a (possibly qualified) column reference.
func (p *parser) parseFactor() (Expr, error) {
	if _, ok := p.accept(LPAREN); ok {
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}

	if _, ok := p.accept(MINUS); ok {
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Left: &Literal{Value: catalog.NewInt(0)}, Op: MINUS, Right: operand}, nil
	}

	l := p.peek()
	switch l.Tok {
	case NUMBER:
		p.next()
		n, err := strconv.ParseInt(l.Lit, 10, 32)
		if err != nil {
			return nil, &ParseError{Expected: "integer literal", Found: l.Lit}
		}
		return &Literal{Value: catalog.NewInt(int32(n))}, nil
	case FLOAT_LIT:
		p.next()
		f, err := strconv.ParseFloat(l.Lit, 64)
		if err != nil {
			return nil, &ParseError{Expected: "float literal", Found: l.Lit}
		}
		return &Literal{Value: catalog.NewFloat(f)}, nil
	case STRING:
		p.next()
		return &Literal{Value: catalog.NewString(l.Lit)}, nil
	case NULL:
		p.next()
		return &Literal{Value: catalog.Null}, nil
	case IDENT:
		return p.parseColumnRef()
	default:
		return nil, &ParseError{Expected: "an expression", Found: l.describe()}
	}
}

func (p *parser) parseColumnRef() (Expr, error) {
	first, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(DOT); ok {
		second, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return &ColumnRef{Table: first, Name: second}, nil
	}
	return &ColumnRef{Name: first}, nil
}

// parseLiteralValue parses a bare literal (no columns, no arithmetic), the
// shape VALUES tuples and UPDATE SET right-hand sides are made of. WHERE
// comparisons do not use it: both of their sides go through parseExpr.
func (p *parser) parseLiteralValue() (Expr, error) {
	l := p.peek()
	switch l.Tok {
	case NUMBER, FLOAT_LIT, STRING, NULL:
		return p.parseFactor()
	case MINUS:
		return p.parseFactor()
	default:
		return nil, &ParseError{Expected: "a literal value", Found: l.describe()}
	}
}

// ExprString renders an expression back to source form. Headers for
// expression projections are produced this way rather than by slicing the
// original source text, which keeps the parser from having to retain a
// copy of the raw input alongside the token buffer.
func ExprString(e Expr) string {
	switch v := e.(type) {
	case *Literal:
		return v.Value.String()
	case *ColumnRef:
		if v.Table != "" {
			return v.Table + "." + v.Name
		}
		return v.Name
	case *BinaryExpr:
		return ExprString(v.Left) + opString(v.Op) + ExprString(v.Right)
	}
	return ""
}

func opString(t Token) string {
	switch t {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case ASTERISK:
		return "*"
	case SLASH:
		return "/"
	}
	return "?"
}

func joinEchoes(exprs []Expr) []string {
	echoes := make([]string, len(exprs))
	for i, e := range exprs {
		echoes[i] = ExprString(e)
	}
	return echoes
}
