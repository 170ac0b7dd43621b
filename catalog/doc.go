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

package catalog

import "fmt"

// The persisted representation is a self-describing document: every value
// carries an explicit tag, so a NULL is never confused with the three
// character string "NULL" on disk, which the in-memory formatter
// deliberately does not distinguish (see engine/format.go).

type docValue struct {
	Tag string      `json:"tag"`
	Val interface{} `json:"val,omitempty"`
}

type docColumn struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Bits       int    `json:"bits,omitempty"`
	N          int    `json:"n,omitempty"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key"`
}

type docTable struct {
	Name    string      `json:"name"`
	Columns []docColumn `json:"columns"`
	Rows    [][]docValue `json:"rows"`
}

func valueToDoc(v Value) docValue {
	switch v.Kind {
	case KindNull:
		return docValue{Tag: "null"}
	case KindInt:
		return docValue{Tag: "int", Val: v.Int}
	case KindFloat:
		return docValue{Tag: "float", Val: v.Flt}
	case KindString:
		return docValue{Tag: "string", Val: v.Str}
	}
	return docValue{Tag: "null"}
}

func docToValue(d docValue) (Value, error) {
	switch d.Tag {
	case "null", "":
		return Null, nil
	case "int":
		return NewInt(int32(toFloat(d.Val))), nil
	case "float":
		return NewFloat(toFloat(d.Val)), nil
	case "string":
		s, _ := d.Val.(string)
		return NewString(s), nil
	default:
		return Value{}, &SerializationError{Reason: fmt.Sprintf("unknown value tag %q", d.Tag)}
	}
}

// toFloat normalizes a decoded JSON number (float64 from hjson, or a
// float32, int or int64) down to a float64; any other type yields 0.
func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func typeToDoc(t Type) (kind string, bits, n int) {
	switch t.Kind {
	case TypeInt:
		return "INT", t.Bits, 0
	case TypeFloat:
		return "FLOAT", 0, 0
	case TypeVarchar:
		return "VARCHAR", 0, t.N
	}
	return "INT", 0, 0
}

func docToType(kind string, bits, n int) (Type, error) {
	switch kind {
	case "INT":
		return IntType(bits), nil
	case "FLOAT":
		return FloatType(), nil
	case "VARCHAR":
		return VarcharType(n), nil
	default:
		return Type{}, &SerializationError{Reason: fmt.Sprintf("unknown column type %q", kind)}
	}
}

func tableToDoc(t *Table) docTable {
	d := docTable{Name: t.Name}
	for _, c := range t.Columns {
		kind, bits, n := typeToDoc(c.Type)
		d.Columns = append(d.Columns, docColumn{
			Name: c.Name, Type: kind, Bits: bits, N: n,
			Nullable: c.Nullable, PrimaryKey: c.PrimaryKey,
		})
	}
	for _, row := range t.Rows {
		var dr []docValue
		for _, v := range row {
			dr = append(dr, valueToDoc(v))
		}
		d.Rows = append(d.Rows, dr)
	}
	return d
}

func docToTable(d docTable) (*Table, error) {
	cols := make([]Column, 0, len(d.Columns))
	for _, dc := range d.Columns {
		typ, err := docToType(dc.Type, dc.Bits, dc.N)
		if err != nil {
			return nil, err
		}
		cols = append(cols, Column{Name: dc.Name, Type: typ, Nullable: dc.Nullable, PrimaryKey: dc.PrimaryKey})
	}
	t := NewTable(d.Name, cols)
	for _, dr := range d.Rows {
		row := make(Row, 0, len(dr))
		for _, dv := range dr {
			v, err := docToValue(dv)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// IOError wraps a failure from the underlying storage medium.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error during %s of %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// SerializationError occurs when a persisted table document is malformed.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("malformed table document: %s", e.Reason)
}
