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

// parseCond parses a WHERE predicate, precedence low to high: OR < AND <
// comparison/IS NULL, with parentheses overriding.
func (p *parser) parseCond() (Cond, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (Cond, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.accept(OR); !ok {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &OrCond{Left: left, Right: right}
	}
}

func (p *parser) parseAnd() (Cond, error) {
	left, err := p.parseCondPrimary()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.accept(AND); !ok {
			return left, nil
		}
		right, err := p.parseCondPrimary()
		if err != nil {
			return nil, err
		}
		left = &AndCond{Left: left, Right: right}
	}
}

func (p *parser) parseCondPrimary() (Cond, error) {
	if _, ok := p.accept(LPAREN); ok {
		inner, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}

	// "<col> IS [NOT] NULL" is recognized by lookahead: IDENT IS [NOT] NULL.
	if p.peek().Tok == IDENT && p.peekAt(1).Tok == IS {
		mark := p.mark()
		col, _ := p.expectIdent()
		p.expect(IS)
		not := false
		if _, ok := p.accept(NOT); ok {
			not = true
		}
		if _, err := p.expect(NULL); err == nil {
			return &IsNullCond{Column: col, Not: not}, nil
		}
		p.reset(mark)
	}

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	op, err := p.expect(EQ, NEQ, LT, LTE, GT, GTE)
	if err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &CompareCond{Left: left, Op: op.Tok, Right: right}, nil
}

// parseWhereClause parses an optional "WHERE <Cond>" trailing clause.
func (p *parser) parseWhereClause() (Cond, error) {
	if _, ok := p.accept(WHERE); !ok {
		return nil, nil
	}
	return p.parseCond()
}

// parseOrderByClause parses an optional "ORDER BY <column> [ASC|DESC]"
// trailing clause. Direction defaults to ASC.
func (p *parser) parseOrderByClause() (*OrderBy, error) {
	if _, ok := p.accept(ORDER); !ok {
		return nil, nil
	}
	if _, err := p.expect(BY); err != nil {
		return nil, err
	}
	col, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	desc := false
	if _, ok := p.accept(DESC); ok {
		desc = true
	} else {
		p.accept(ASC)
	}
	return &OrderBy{Column: col, Desc: desc}, nil
}
