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

// Package cnf holds the database's runtime configuration as a nested
// Options-of-concerns shape, trimmed to the concerns an embeddable engine
// with no network surface actually has.
package cnf

// Options groups every flag and environment-derived setting the CLI can
// set before the database handle is constructed.
type Options struct {
	DB      DB
	Logging Logging
}

// DB selects between the directory store and the memory store, and where
// the directory store keeps its table files.
type DB struct {
	Path   string
	Memory bool
}

// Logging controls the log package facade's level and sink.
type Logging struct {
	Level  string
	Output string
}

// Context is the process-wide configuration instance, created once by the
// cli package's init (defaults plus flag bindings) and read by its root
// command.
type Context struct {
	Options *Options
}

// New returns a Context populated with defaults.
func New() *Context {
	return &Context{
		Options: &Options{
			DB: DB{
				Path:   "./data",
				Memory: false,
			},
			Logging: Logging{
				Level:  "info",
				Output: "stderr",
			},
		},
	}
}
