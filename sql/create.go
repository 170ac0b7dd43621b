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

func (p *parser) parseCreateTable() (Statement, error) {
	if _, err := p.expect(CREATE); err != nil {
		return nil, err
	}
	if _, err := p.expect(TABLE); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}

	var columns []ColumnDef
	sawPrimaryKey := false
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		if col.PrimaryKey {
			if sawPrimaryKey {
				return nil, &ParseError{Expected: "at most one PRIMARY KEY column", Found: col.Name}
			}
			sawPrimaryKey = true
		}
		columns = append(columns, col)

		if _, ok := p.accept(COMMA); ok {
			continue
		}
		break
	}

	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	p.accept(SEMICOLON)

	return &CreateTable{Name: name, Columns: columns}, nil
}

// parseColumnDef parses "name type [NULL|NOT NULL]? [PRIMARY KEY]?".
// Absence of an explicit nullability marker defaults to nullable.
func (p *parser) parseColumnDef() (ColumnDef, error) {
	name, err := p.expectIdent()
	if err != nil {
		return ColumnDef{}, err
	}

	typ, err := p.parseColumnType()
	if err != nil {
		return ColumnDef{}, err
	}

	col := ColumnDef{Name: name, Type: typ, Nullable: true}

	for {
		if _, ok := p.accept(NOT); ok {
			if _, err := p.expect(NULL); err != nil {
				return ColumnDef{}, err
			}
			col.Nullable = false
			continue
		}
		if _, ok := p.accept(NULL); ok {
			col.Nullable = true
			continue
		}
		if _, ok := p.accept(PRIMARY); ok {
			if _, err := p.expect(KEY); err != nil {
				return ColumnDef{}, err
			}
			col.PrimaryKey = true
			col.Nullable = false
			continue
		}
		break
	}

	return col, nil
}

func (p *parser) parseColumnType() (catalog.Type, error) {
	tok, err := p.expect(INT, FLOAT, VARCHAR)
	if err != nil {
		return catalog.Type{}, err
	}

	switch tok.Tok {
	case INT:
		bits := 32
		if _, ok := p.accept(LPAREN); ok {
			n, err := p.expect(NUMBER)
			if err != nil {
				return catalog.Type{}, err
			}
			bits, _ = strconv.Atoi(n.Lit)
			if _, err := p.expect(RPAREN); err != nil {
				return catalog.Type{}, err
			}
		}
		return catalog.IntType(bits), nil

	case FLOAT:
		return catalog.FloatType(), nil

	case VARCHAR:
		if _, err := p.expect(LPAREN); err != nil {
			return catalog.Type{}, err
		}
		n, err := p.expect(NUMBER)
		if err != nil {
			return catalog.Type{}, err
		}
		length, _ := strconv.Atoi(n.Lit)
		if _, err := p.expect(RPAREN); err != nil {
			return catalog.Type{}, err
		}
		return catalog.VarcharType(length), nil
	}

	return catalog.Type{}, &ParseError{Expected: "a column type", Found: tok.describe()}
}

func (p *parser) parseDropTable() (Statement, error) {
	if _, err := p.expect(DROP); err != nil {
		return nil, err
	}
	if _, err := p.expect(TABLE); err != nil {
		return nil, err
	}

	first, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	names := []string{first}
	for {
		if _, ok := p.accept(COMMA); !ok {
			break
		}
		n, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	p.accept(SEMICOLON)

	if len(names) == 1 {
		return &DropTable{Name: names[0]}, nil
	}
	return &DropTables{Names: names}, nil
}
