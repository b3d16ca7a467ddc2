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

package cli

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-doublesort/doublesort"
	"github.com/ajroetker/go-doublesort/internal/trial"
	"github.com/ajroetker/go-doublesort/internal/workerpool"
)

type checkOptions struct {
	trials   int
	maxLen   int
	maxValue int
	seed     int64
	workers  int
	strategy string
}

func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare both strategies with slices.Sort on random input",
		Long: `Run randomized trials: each trial sorts a random slice with every strategy
and compares the result element by element with slices.Sort. The inputs are
reproducible for a given --seed.`,
		Example: `  doublesort check --trials 5000 --max-len 1000 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyCheckDefaults(cmd, &opts)
			return c.runCheck(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.trials, "trials", "n", 0, "number of trials (default from config)")
	cmd.Flags().IntVar(&opts.maxLen, "max-len", 0, "maximum slice length (default from config)")
	cmd.Flags().IntVar(&opts.maxValue, "max-value", 0, "values are drawn from [0, max-value) (default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "concurrent trials, 0 for GOMAXPROCS (default from config)")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "all", "strategy to check: all, commit or drain")

	return cmd
}

// applyCheckDefaults fills options the user did not set from the config.
func (c *CLI) applyCheckDefaults(cmd *cobra.Command, opts *checkOptions) {
	flags := cmd.Flags()
	if !flags.Changed("trials") {
		opts.trials = c.cfg.Check.Trials
	}
	if !flags.Changed("max-len") {
		opts.maxLen = c.cfg.Check.MaxLen
	}
	if !flags.Changed("max-value") {
		opts.maxValue = c.cfg.Check.MaxValue
	}
	if !flags.Changed("seed") {
		opts.seed = c.cfg.Check.Seed
	}
	if !flags.Changed("workers") {
		opts.workers = c.cfg.Check.Workers
	}
}

func (c *CLI) runCheck(ctx context.Context, out io.Writer, opts checkOptions) error {
	logger := loggerFromContext(ctx)

	strategies, err := parseStrategies(opts.strategy)
	if err != nil {
		return err
	}

	pool := workerpool.New(opts.workers)
	defer pool.Close()

	logger.Debug("Running trials",
		"trials", opts.trials, "max_len", opts.maxLen, "max_value", opts.maxValue,
		"seed", opts.seed, "workers", pool.NumWorkers())

	prog := newProgress(logger)
	report, err := trial.Check(ctx, pool, trial.CheckOptions{
		Trials:     opts.trials,
		MaxLen:     opts.maxLen,
		MaxValue:   opts.maxValue,
		Seed:       uint64(opts.seed),
		Strategies: strategies,
	})
	if err != nil {
		var mm *trial.Mismatch
		if errors.As(err, &mm) {
			printError(out, "%s", mm.Error())
			logger.Debug("Mismatch", "input", mm.Input, "got", mm.Got, "want", mm.Want)
			return errors.New("check failed")
		}
		return err
	}
	prog.done("Checked trials")

	printSuccess(out, "%d trials passed (%d elements)", report.Trials, report.Elements)
	for _, s := range strategies {
		st := report.Stats[s]
		printTitle(out, s.String())
		printDetail(out, "reads", st.Reads)
		printDetail(out, "exchanges", st.Exchanges)
		printDetail(out, "comparisons", st.Comparisons)
		if s == doublesort.StrategyDrain {
			printDetail(out, "passes", st.Passes)
		}
	}
	return nil
}

// parseStrategies maps "all" to every strategy and anything else to the one
// strategy it names.
func parseStrategies(name string) ([]doublesort.Strategy, error) {
	if name == "" || name == "all" {
		return doublesort.Strategies(), nil
	}
	s, err := doublesort.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return []doublesort.Strategy{s}, nil
}
