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

import "github.com/relsql/miniql/catalog"

// Statement is the closed algebra a parsed SQL source reduces to.
// Exactly one concrete type below is ever stored in a Statement.
type Statement interface {
	isStatement()
}

// ColumnDef is one column descriptor inside a CREATE TABLE.
type ColumnDef struct {
	Name       string
	Type       catalog.Type
	Nullable   bool
	PrimaryKey bool
}

type CreateTable struct {
	Name    string
	Columns []ColumnDef
}

type DropTable struct {
	Name string
}

type DropTables struct {
	Names []string
}

type Insert struct {
	Table  string
	Values []Expr
}

type InsertMultiple struct {
	Table string
	Rows  [][]Expr
}

type InsertWithColumns struct {
	Table   string
	Columns []string
	Rows    [][]Expr
}

// Assignment is one "column = expr" pair in an UPDATE SET clause.
type Assignment struct {
	Column string
	Value  Expr
}

type Update struct {
	Table       string
	Assignments []Assignment
	Where       Cond
}

type Delete struct {
	Table string
	Where Cond
}

// OrderBy names the sort column and direction of a trailing ORDER BY.
type OrderBy struct {
	Column string
	Desc   bool
}

type Select struct {
	Columns []string // nil means "*"
	Table   string
	Where   Cond
	OrderBy *OrderBy
}

type SelectExpression struct {
	Expressions []Expr
	EchoText    []string
}

type SelectWithExpressions struct {
	Expressions []Expr
	EchoText    []string
	Table       string
	Where       Cond
	OrderBy     *OrderBy
}

func (*CreateTable) isStatement()           {}
func (*DropTable) isStatement()             {}
func (*DropTables) isStatement()            {}
func (*Insert) isStatement()                {}
func (*InsertMultiple) isStatement()        {}
func (*InsertWithColumns) isStatement()     {}
func (*Update) isStatement()                {}
func (*Delete) isStatement()                {}
func (*Select) isStatement()                {}
func (*SelectExpression) isStatement()      {}
func (*SelectWithExpressions) isStatement() {}

// Expr is the closed expression algebra.
type Expr interface {
	isExpr()
}

type Literal struct {
	Value catalog.Value
}

// ColumnRef is a (possibly table-qualified) column reference.
type ColumnRef struct {
	Table string // empty when unqualified
	Name  string
}

type BinaryExpr struct {
	Left  Expr
	Op    Token // PLUS, MINUS, ASTERISK, SLASH
	Right Expr
}

func (*Literal) isExpr()    {}
func (*ColumnRef) isExpr()  {}
func (*BinaryExpr) isExpr() {}

// Cond is the closed WHERE-clause algebra.
type Cond interface {
	isCond()
}

type IsNullCond struct {
	Column string
	Not    bool
}

type CompareCond struct {
	Left  Expr
	Op    Token // EQ, NEQ, LT, LTE, GT, GTE
	Right Expr
}

type AndCond struct {
	Left, Right Cond
}

type OrCond struct {
	Left, Right Cond
}

func (*IsNullCond) isCond()  {}
func (*CompareCond) isCond() {}
func (*AndCond) isCond()     {}
func (*OrCond) isCond()      {}
