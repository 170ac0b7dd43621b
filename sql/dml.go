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

// parseInsert parses INSERT INTO <table> [(<cols>)] VALUES (<vals>)[, (<vals>)]*
func (p *parser) parseInsert() (Statement, error) {
	if _, err := p.expect(INSERT); err != nil {
		return nil, err
	}
	if _, err := p.expect(INTO); err != nil {
		return nil, err
	}
	table, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	var columns []string
	if _, ok := p.accept(LPAREN); ok {
		for {
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			columns = append(columns, name)
			if _, ok := p.accept(COMMA); ok {
				continue
			}
			break
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(VALUES); err != nil {
		return nil, err
	}

	var rows [][]Expr
	for {
		row, err := p.parseValueTuple()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if _, ok := p.accept(COMMA); ok {
			continue
		}
		break
	}
	p.accept(SEMICOLON)

	if columns != nil {
		return &InsertWithColumns{Table: table, Columns: columns, Rows: rows}, nil
	}
	if len(rows) == 1 {
		return &Insert{Table: table, Values: rows[0]}, nil
	}
	return &InsertMultiple{Table: table, Rows: rows}, nil
}

func (p *parser) parseValueTuple() ([]Expr, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var vals []Expr
	for {
		v, err := p.parseLiteralValue()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		if _, ok := p.accept(COMMA); ok {
			continue
		}
		break
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return vals, nil
}

// parseUpdate parses UPDATE <table> SET <col>=<val>[, ...] [WHERE <Cond>]
func (p *parser) parseUpdate() (Statement, error) {
	if _, err := p.expect(UPDATE); err != nil {
		return nil, err
	}
	table, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SET); err != nil {
		return nil, err
	}

	var assignments []Assignment
	for {
		col, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(EQ); err != nil {
			return nil, err
		}
		val, err := p.parseLiteralValue()
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, Assignment{Column: col, Value: val})
		if _, ok := p.accept(COMMA); ok {
			continue
		}
		break
	}

	where, err := p.parseWhereClause()
	if err != nil {
		return nil, err
	}
	p.accept(SEMICOLON)

	return &Update{Table: table, Assignments: assignments, Where: where}, nil
}

// parseDelete parses DELETE FROM <table> [WHERE <Cond>]
func (p *parser) parseDelete() (Statement, error) {
	if _, err := p.expect(DELETE); err != nil {
		return nil, err
	}
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
	p.accept(SEMICOLON)

	return &Delete{Table: table, Where: where}, nil
}
