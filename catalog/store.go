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

// Store is the catalog/store contract: a set of named tables
// that can be enumerated, looked up, mutated and persisted. The executor
// borrows a Store mutably for the duration of one statement and never holds
// a reference across calls.
type Store interface {
	// CreateTable inserts a new table and persists it. Fails if the name
	// is already present.
	CreateTable(t *Table) error

	// DropTable removes a table and persists the removal. Fails if the
	// name is absent.
	DropTable(name string) error

	// GetTable returns a shared view of a table, or nil if absent.
	GetTable(name string) *Table

	// GetTableMut returns an exclusive view of a table, or nil if absent.
	// For every implementation shipped here this is the same pointer as
	// GetTable returns — the distinction exists to document intent (read
	// vs. mutate) rather than to enforce borrowing, since Go has no
	// compile-time borrow checker.
	GetTableMut(name string) *Table

	// ListTables returns table names in unspecified order.
	ListTables() []string

	// Save flushes every dirty table to durable storage. A no-op for
	// in-memory stores.
	Save() error

	// Load discards the in-memory catalog and rebuilds it from durable
	// storage. A no-op for in-memory stores.
	Load() error
}

// TableExistsError occurs when CreateTable names a table already present.
type TableExistsError struct {
	Name string
}

func (e *TableExistsError) Error() string {
	return fmt.Sprintf("table '%s' already exists", e.Name)
}

// TableNotFoundError occurs when an operation names an absent table.
type TableNotFoundError struct {
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table '%s' does not exist", e.Name)
}
