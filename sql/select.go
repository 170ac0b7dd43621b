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

// parseSelect implements the SELECT disambiguation:
// "*" is always all-columns; otherwise the projection is first tried as a
// general expression list, and the presence (or absence) of a following
// FROM decides between a plain column Select, a mixed
// SelectWithExpressions, or a FROM-less SelectExpression.
func (p *parser) parseSelect() (Statement, error) {
	if _, err := p.expect(SELECT); err != nil {
		return nil, err
	}

	if _, ok := p.accept(ASTERISK); ok {
		if _, err := p.expect(FROM); err != nil {
			return nil, err
		}
		table, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		orderBy, err := p.parseOrderByClause()
		if err != nil {
			return nil, err
		}
		p.accept(SEMICOLON)
		return &Select{Columns: nil, Table: table, Where: where, OrderBy: orderBy}, nil
	}

	mark := p.mark()
	exprs, err := p.parseExprList()
	if err != nil {
		p.reset(mark)
		exprs, err = p.parseColumnRefList()
		if err != nil {
			return nil, err
		}
	}
	echoes := joinEchoes(exprs)

	if _, ok := p.accept(FROM); ok {
		table, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		orderBy, err := p.parseOrderByClause()
		if err != nil {
			return nil, err
		}
		p.accept(SEMICOLON)

		if cols, ok := asPlainColumnList(exprs); ok {
			return &Select{Columns: cols, Table: table, Where: where, OrderBy: orderBy}, nil
		}
		return &SelectWithExpressions{
			Expressions: exprs, EchoText: echoes,
			Table: table, Where: where, OrderBy: orderBy,
		}, nil
	}

	p.accept(SEMICOLON)
	return &SelectExpression{Expressions: exprs, EchoText: echoes}, nil
}

// parseExprList parses a comma-separated projection as full expressions.
func (p *parser) parseExprList() ([]Expr, error) {
	var exprs []Expr
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if _, ok := p.accept(COMMA); ok {
			continue
		}
		break
	}
	return exprs, nil
}

// parseColumnRefList is the fallback projection form: a bare comma-separated
// list of column names, tried only after the general expression parse
// fails, by rewinding the parser position.
func (p *parser) parseColumnRefList() ([]Expr, error) {
	var exprs []Expr
	for {
		e, err := p.parseColumnRef()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if _, ok := p.accept(COMMA); ok {
			continue
		}
		break
	}
	return exprs, nil
}

// asPlainColumnList reports whether every expression is a bare unqualified
// column reference, in which case the statement reduces to a plain Select
// rather than SelectWithExpressions.
func asPlainColumnList(exprs []Expr) ([]string, bool) {
	cols := make([]string, len(exprs))
	for i, e := range exprs {
		ref, ok := e.(*ColumnRef)
		if !ok || ref.Table != "" {
			return nil, false
		}
		cols[i] = ref.Name
	}
	return cols, true
}
