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

// Package config loads the doublesort CLI configuration from TOML.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-doublesort/doublesort"
)

const appName = "doublesort"

// Config is the on-disk configuration. Command-line flags take precedence
// over every field.
type Config struct {
	// Strategy is "commit" or "drain".
	Strategy string `toml:"strategy"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`

	Check Check `toml:"check"`
	Bench Bench `toml:"bench"`
}

// Check configures randomized property trials.
type Check struct {
	Trials   int   `toml:"trials"`
	MaxLen   int   `toml:"max_len"`
	MaxValue int   `toml:"max_value"`
	Seed     int64 `toml:"seed"`
	Workers  int   `toml:"workers"`
}

// Bench configures benchmark runs.
type Bench struct {
	Sizes   []int `toml:"sizes"`
	Rounds  int   `toml:"rounds"`
	Workers int   `toml:"workers"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Strategy: doublesort.StrategyCommit.String(),
		LogLevel: "info",
		Check: Check{
			Trials:   1000,
			MaxLen:   512,
			MaxValue: 100,
			Workers:  0,
		},
		Bench: Bench{
			Sizes:  []int{100, 1000, 10000, 100000},
			Rounds: 5,
		},
	}
}

// Load reads path on top of Default. An empty path means DefaultPath; a
// missing default file is not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "load config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if _, err := doublesort.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Check.Trials <= 0 {
		return errors.New("check.trials must be positive")
	}
	if c.Check.MaxLen <= 0 {
		return errors.New("check.max_len must be positive")
	}
	if c.Check.MaxValue <= 0 {
		return errors.New("check.max_value must be positive")
	}
	if len(c.Bench.Sizes) == 0 {
		return errors.New("bench.sizes must not be empty")
	}
	for _, n := range c.Bench.Sizes {
		if n <= 0 {
			return errors.Errorf("bench.sizes: size %d must be positive", n)
		}
	}
	if c.Bench.Rounds <= 0 {
		return errors.New("bench.rounds must be positive")
	}
	return nil
}

// StrategyValue parses Strategy. It assumes Validate passed.
func (c Config) StrategyValue() doublesort.Strategy {
	s, _ := doublesort.ParseStrategy(c.Strategy)
	return s
}

// DefaultPath returns the XDG config location
// (~/.config/doublesort/config.toml).
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
