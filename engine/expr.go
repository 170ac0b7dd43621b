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

package engine

import (
	"github.com/relsql/miniql/catalog"
	"github.com/relsql/miniql/log"
	"github.com/relsql/miniql/sql"
)

// rowContext is everything expression evaluation needs to resolve a column
// reference against one row. store is nil on the WHERE-clause path,
// which does not touch the catalog, keeping it from aliasing the
// executor's mutable catalog borrow.
type rowContext struct {
	table *catalog.Table
	row   catalog.Row
	store catalog.Store
}

// eval evaluates an expression against a row context.
func eval(ctx rowContext, e sql.Expr) (catalog.Value, error) {
	switch v := e.(type) {
	case *sql.Literal:
		return v.Value, nil

	case *sql.ColumnRef:
		return evalColumnRef(ctx, v)

	case *sql.BinaryExpr:
		left, err := eval(ctx, v.Left)
		if err != nil {
			return catalog.Value{}, err
		}
		right, err := eval(ctx, v.Right)
		if err != nil {
			return catalog.Value{}, err
		}
		return evalBinary(left, v.Op, right)
	}
	return catalog.Value{}, &TypeError{Reason: "unrecognized expression"}
}

func evalColumnRef(ctx rowContext, ref *sql.ColumnRef) (catalog.Value, error) {
	if ctx.table == nil {
		return catalog.Value{}, &UnknownColumnError{Table: ref.Table, Column: ref.Name}
	}
	if ref.Table != "" && ref.Table != ctx.table.Name {
		return catalog.Value{}, &UnknownColumnError{Table: ref.Table, Column: ref.Name}
	}

	if idx := ctx.table.ColumnIndex(ref.Name); idx >= 0 {
		return ctx.row[idx], nil
	}

	// Deprecated cross-table fallback: when a column can't be
	// resolved in the current table, scan the rest of the catalog for a
	// same-named column and return a value off its first row. Retained for
	// source compatibility only — it can return values from unrelated rows
	// and should not be relied upon.
	if ctx.store != nil {
		for _, name := range ctx.store.ListTables() {
			if name == ctx.table.Name {
				continue
			}
			other := ctx.store.GetTable(name)
			if other == nil {
				continue
			}
			if idx := other.ColumnIndex(ref.Name); idx >= 0 && len(other.Rows) > 0 {
				log.Warnf("resolved unqualified column '%s' against unrelated table '%s' (deprecated fallback)", ref.Name, name)
				return other.Rows[0][idx], nil
			}
		}
	}

	return catalog.Value{}, &UnknownColumnError{Table: ref.Table, Column: ref.Name}
}

func evalBinary(left catalog.Value, op sql.Token, right catalog.Value) (catalog.Value, error) {
	if left.IsNull() || right.IsNull() {
		return catalog.Null, nil
	}

	lf, lok := left.Numeric()
	rf, rok := right.Numeric()
	if !lok || !rok {
		return catalog.Value{}, &TypeError{Reason: "arithmetic requires numeric operands"}
	}

	bothInt := left.Kind == catalog.KindInt && right.Kind == catalog.KindInt

	switch op {
	case sql.PLUS:
		if bothInt {
			return catalog.NewInt(left.Int + right.Int), nil
		}
		return catalog.NewFloat(lf + rf), nil
	case sql.MINUS:
		if bothInt {
			return catalog.NewInt(left.Int - right.Int), nil
		}
		return catalog.NewFloat(lf - rf), nil
	case sql.ASTERISK:
		if bothInt {
			return catalog.NewInt(left.Int * right.Int), nil
		}
		return catalog.NewFloat(lf * rf), nil
	case sql.SLASH:
		if bothInt {
			if right.Int == 0 {
				return catalog.Value{}, &ArithmeticError{Op: "division"}
			}
			return catalog.NewInt(left.Int / right.Int), nil
		}
		if rf == 0 {
			return catalog.Value{}, &ArithmeticError{Op: "division"}
		}
		return catalog.NewFloat(lf / rf), nil
	}

	return catalog.Value{}, &TypeError{Reason: "unsupported operator"}
}

// evalValueExpr evaluates an expression known to carry no column
// references — the literal tuples of an INSERT VALUES clause and an
// UPDATE SET assignment's right-hand side — both are restricted to
// literals, so this path never needs a row context.
func evalValueExpr(e sql.Expr) (catalog.Value, error) {
	switch v := e.(type) {
	case *sql.Literal:
		return v.Value, nil
	case *sql.BinaryExpr:
		left, err := evalValueExpr(v.Left)
		if err != nil {
			return catalog.Value{}, err
		}
		right, err := evalValueExpr(v.Right)
		if err != nil {
			return catalog.Value{}, err
		}
		return evalBinary(left, v.Op, right)
	case *sql.ColumnRef:
		return catalog.Value{}, &TypeError{Reason: "column reference not allowed in a value literal"}
	}
	return catalog.Value{}, &TypeError{Reason: "unsupported value expression"}
}

// evalCond evaluates a WHERE predicate against a row context with
// short-circuit boolean semantics.
func evalCond(ctx rowContext, c sql.Cond) (bool, error) {
	switch v := c.(type) {
	case *sql.IsNullCond:
		idx := ctx.table.ColumnIndex(v.Column)
		if idx < 0 {
			return false, &UnknownColumnError{Column: v.Column}
		}
		isNull := ctx.row[idx].IsNull()
		if v.Not {
			return !isNull, nil
		}
		return isNull, nil

	case *sql.CompareCond:
		left, err := eval(ctx, v.Left)
		if err != nil {
			return false, err
		}
		right, err := eval(ctx, v.Right)
		if err != nil {
			return false, err
		}
		return compareValues(left, v.Op, right)

	case *sql.AndCond:
		left, err := evalCond(ctx, v.Left)
		if err != nil {
			return false, err
		}
		if !left {
			return false, nil
		}
		return evalCond(ctx, v.Right)

	case *sql.OrCond:
		left, err := evalCond(ctx, v.Left)
		if err != nil {
			return false, err
		}
		if left {
			return true, nil
		}
		return evalCond(ctx, v.Right)
	}
	return false, &TypeError{Reason: "unrecognized condition"}
}

func compareValues(left catalog.Value, op sql.Token, right catalog.Value) (bool, error) {
	if op == sql.EQ || op == sql.NEQ {
		eq := left.Equal(right)
		if op == sql.NEQ {
			return !eq, nil
		}
		return eq, nil
	}

	cmp, ok := left.Compare(right)
	if !ok {
		return false, &TypeError{Reason: "values are not ordering-compatible"}
	}
	switch op {
	case sql.LT:
		return cmp < 0, nil
	case sql.LTE:
		return cmp <= 0, nil
	case sql.GT:
		return cmp > 0, nil
	case sql.GTE:
		return cmp >= 0, nil
	}
	return false, &TypeError{Reason: "unsupported comparison operator"}
}
