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

// Package catalog holds the data model of the engine: values, columns,
// tables, and the catalog/store abstraction that owns them.
package catalog

import (
	"fmt"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	// KindNull marks the absence of a value.
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
)

// Value is a tagged union over the four data types the engine understands.
// The zero Value is NULL.
type Value struct {
	Kind Kind
	Int  int32
	Flt  float64
	Str  string
}

// Null is the canonical NULL value.
var Null = Value{Kind: KindNull}

// NewInt wraps an int32 as a Value.
func NewInt(v int32) Value { return Value{Kind: KindInt, Int: v} }

// NewFloat wraps a float64 as a Value.
func NewFloat(v float64) Value { return Value{Kind: KindFloat, Flt: v} }

// NewString wraps a string as a Value.
func NewString(v string) Value { return Value{Kind: KindString, Str: v} }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Numeric reports whether v is an INT or FLOAT and returns it widened to
// float64, for use by arithmetic and ordering that mixes the two.
func (v Value) Numeric() (f float64, ok bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Flt, true
	default:
		return 0, false
	}
}

// Equal compares two values variant-wise. NULL equals only NULL.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		// Allow numeric cross-variant equality after widening.
		if vf, ok := v.Numeric(); ok {
			if of, ok2 := o.Numeric(); ok2 {
				return vf == of
			}
		}
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Flt == o.Flt
	case KindString:
		return v.Str == o.Str
	}
	return false
}

// Compare orders two values of the same variant, or two numeric values
// after widening. ok is false when the pair cannot be ordered.
func (v Value) Compare(o Value) (cmp int, ok bool) {
	if v.Kind == KindString && o.Kind == KindString {
		switch {
		case v.Str < o.Str:
			return -1, true
		case v.Str > o.Str:
			return 1, true
		default:
			return 0, true
		}
	}
	if vf, okv := v.Numeric(); okv {
		if of, oko := o.Numeric(); oko {
			switch {
			case vf < of:
				return -1, true
			case vf > of:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	return 0, false
}

// String renders the value the way it is displayed in query results. NULL
// renders as the literal text "NULL", indistinguishable at this layer from
// an actual string value spelled "NULL" — the formatter (engine.Format)
// conflates the two on purpose, matching the behavior this engine is
// modeled on.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "NULL"
	case KindInt:
		return strconv.FormatInt(int64(v.Int), 10)
	case KindFloat:
		return strconv.FormatFloat(v.Flt, 'f', -1, 64)
	case KindString:
		return v.Str
	}
	return ""
}

func (v Value) GoString() string {
	return fmt.Sprintf("Value(%s)", v.String())
}
