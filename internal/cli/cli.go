// Copyright 2025 go-doublesort Authors
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

// Package cli implements the doublesort command-line interface.
//
// # Commands
//
//   - sort: sort values given as arguments, in a file or on stdin
//   - check: run randomized property trials against slices.Sort
//   - bench: time both strategies and the standard library sort
//
// All commands support --verbose (-v) for debug logging and --config for a
// TOML configuration file. The logger is passed to commands through
// context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-doublesort/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is set at build time via -ldflags.
var version = "dev"

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	cfg        config.Config
	configPath string
	verbose    bool
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "doublesort",
		Short:        "Sort values by pairing them into self-ordering nodes",
		Long:         `doublesort sorts values by grouping them into pairs, ordering each pair, and exchanging values between neighbouring pairs until the whole sequence is in order.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file (default $XDG_CONFIG_HOME/doublesort/config.toml)")

	root.AddCommand(c.sortCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.benchCommand())

	return root
}

// setup loads the configuration, applies its log level unless --verbose
// was given and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	switch {
	case c.verbose:
		c.SetLogLevel(LogDebug)
	case cfg.LogLevel != "":
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		c.SetLogLevel(level)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
