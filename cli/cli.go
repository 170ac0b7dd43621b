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

// Package cli is the external collaborator: a single executable that
// either runs a script file or drives an interactive REPL, on top of
// the engine and catalog packages.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/relsql/miniql/catalog"
	"github.com/relsql/miniql/cnf"
	"github.com/relsql/miniql/engine"
	"github.com/relsql/miniql/log"
)

var opts *cnf.Context

var rootCmd = &cobra.Command{
	Use:   "miniql [script]",
	Short: "An embeddable relational micro-database driven by a restricted SQL dialect",
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetLevel(opts.Options.Logging.Level)
		log.SetOutput(opts.Options.Logging.Output)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		db := engine.New(store)

		if len(args) == 1 {
			return RunScript(db, args[0])
		}
		return RunREPL(db)
	},
}

func init() {
	opts = cnf.New()

	rootCmd.PersistentFlags().StringVarP(&opts.Options.DB.Path, "db", "d", opts.Options.DB.Path, "Directory holding the persisted tables")
	rootCmd.PersistentFlags().BoolVarP(&opts.Options.DB.Memory, "memory", "m", false, "Run with an in-memory catalog; nothing is persisted")
	rootCmd.PersistentFlags().StringVarP(&opts.Options.Logging.Level, "log-level", "", opts.Options.Logging.Level, "Logging level: debug, info, warn, error")
}

func openStore() (catalog.Store, error) {
	if opts.Options.DB.Memory {
		return catalog.NewMemoryStore(), nil
	}
	return catalog.NewDirectoryStore(opts.Options.DB.Path)
}

// Run runs the CLI; it is the sole entry point main.go calls.
func Run() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
