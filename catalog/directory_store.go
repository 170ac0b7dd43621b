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

import (
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go"
)

const tableFileExt = ".hjson"

// DirectoryStore persists each table as a human-readable hjson document
// under <dir>/tables/<name>.hjson, one file per table under a tables/
// subdirectory.
type DirectoryStore struct {
	dir    string
	tables map[string]*Table
}

// NewDirectoryStore creates (if needed) dir/tables and loads any tables
// already present there.
func NewDirectoryStore(dir string) (*DirectoryStore, error) {
	s := &DirectoryStore{dir: dir, tables: make(map[string]*Table)}
	if err := os.MkdirAll(s.tablesDir(), 0o755); err != nil {
		return nil, &IOError{Op: "mkdir", Path: s.tablesDir(), Err: err}
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *DirectoryStore) tablesDir() string {
	return filepath.Join(s.dir, "tables")
}

func (s *DirectoryStore) tablePath(name string) string {
	return filepath.Join(s.tablesDir(), name+tableFileExt)
}

func (s *DirectoryStore) CreateTable(t *Table) error {
	if _, ok := s.tables[t.Name]; ok {
		return &TableExistsError{Name: t.Name}
	}
	s.tables[t.Name] = t
	return s.saveTable(t)
}

func (s *DirectoryStore) DropTable(name string) error {
	if _, ok := s.tables[name]; !ok {
		return &TableNotFoundError{Name: name}
	}
	delete(s.tables, name)
	path := s.tablePath(name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &IOError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

func (s *DirectoryStore) GetTable(name string) *Table    { return s.tables[name] }
func (s *DirectoryStore) GetTableMut(name string) *Table { return s.tables[name] }

func (s *DirectoryStore) ListTables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	return names
}

// Save rewrites every table that has been mutated since it was last
// flushed. Tables present in memory but untouched are left alone, matching
// a "rewrite in place" scheme (non-atomic, a crash
// mid-write may leave a table file truncated).
func (s *DirectoryStore) Save() error {
	for _, t := range s.tables {
		if !t.Dirty() {
			continue
		}
		if err := s.saveTable(t); err != nil {
			return err
		}
	}
	return nil
}

func (s *DirectoryStore) saveTable(t *Table) error {
	data, err := hjson.Marshal(tableToDoc(t))
	if err != nil {
		return &SerializationError{Reason: err.Error()}
	}
	path := s.tablePath(t.Name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	t.MarkClean()
	return nil
}

// Load discards the in-memory catalog and rebuilds it from every table
// file in dir/tables. Table files whose names do not match existing tables
// are picked up here, keyed by the name embedded in the document
// rather than by file name.
func (s *DirectoryStore) Load() error {
	s.tables = make(map[string]*Table)

	entries, err := os.ReadDir(s.tablesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &IOError{Op: "readdir", Path: s.tablesDir(), Err: err}
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), tableFileExt) {
			continue
		}
		path := filepath.Join(s.tablesDir(), entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return &IOError{Op: "read", Path: path, Err: err}
		}

		var d docTable
		if err := hjson.Unmarshal(data, &d); err != nil {
			return &SerializationError{Reason: err.Error()}
		}
		if d.Name == "" {
			d.Name = strings.TrimSuffix(entry.Name(), tableFileExt)
		}

		t, err := docToTable(d)
		if err != nil {
			return err
		}
		t.MarkClean()
		s.tables[t.Name] = t
	}

	return nil
}
