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
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-doublesort/internal/cpuinfo"
	"github.com/ajroetker/go-doublesort/internal/trial"
	"github.com/ajroetker/go-doublesort/internal/workerpool"
)

type benchOptions struct {
	sizes      []int
	rounds     int
	workers    int
	seed       int64
	strategy   string
	noBaseline bool
}

func (c *CLI) benchCommand() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time both strategies against slices.Sort",
		Long: `Time every strategy on the same random int64 input for each size, next to
slices.Sort. Rounds run one at a time unless --workers is above 1.`,
		Example: `  doublesort bench --sizes 1000,10000 --rounds 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("sizes") {
				opts.sizes = c.cfg.Bench.Sizes
			}
			if !flags.Changed("rounds") {
				opts.rounds = c.cfg.Bench.Rounds
			}
			if !flags.Changed("workers") {
				opts.workers = c.cfg.Bench.Workers
			}
			return c.runBench(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.sizes, "sizes", nil, "comma-separated input sizes (default from config)")
	cmd.Flags().IntVarP(&opts.rounds, "rounds", "r", 0, "rounds per size (default from config)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 1, "concurrent rounds")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "all", "strategy to time: all, commit or drain")
	cmd.Flags().BoolVar(&opts.noBaseline, "no-baseline", false, "skip the slices.Sort baseline")

	return cmd
}

func (c *CLI) runBench(ctx context.Context, out io.Writer, opts benchOptions) error {
	logger := loggerFromContext(ctx)

	strategies, err := parseStrategies(opts.strategy)
	if err != nil {
		return err
	}

	// Bench workers default to one so rounds do not compete for CPU.
	workers := max(opts.workers, 1)
	pool := workerpool.New(workers)
	defer pool.Close()

	host := cpuinfo.Host()
	logger.Debug("Host", "cpu", host.String())

	prog := newProgress(logger)
	results, err := trial.Bench(ctx, pool, trial.BenchOptions{
		Sizes:      opts.sizes,
		Rounds:     opts.rounds,
		Seed:       uint64(opts.seed),
		Strategies: strategies,
		Baseline:   !opts.noBaseline,
	})
	if err != nil {
		return err
	}
	prog.done("Benchmark finished")

	printTitle(out, host.String())
	fmt.Fprintln(out, renderBench(results))
	return nil
}

// renderBench formats results as a table, one row per algorithm and size.
func renderBench(results []trial.BenchResult) string {
	rows := lo.Map(results, func(r trial.BenchResult, _ int) []string {
		reads, exchanges := "-", "-"
		if r.Algorithm != trial.Stdlib {
			reads = strconv.Itoa(r.Stats.Reads)
			exchanges = strconv.Itoa(r.Stats.Exchanges)
		}
		return []string{
			r.Algorithm,
			strconv.Itoa(r.Size),
			r.Min.String(),
			r.Mean.String(),
			strconv.FormatFloat(r.NsPerElement(), 'f', 1, 64),
			reads,
			exchanges,
		}
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("algorithm", "n", "min", "mean", "ns/elem", "reads", "exchanges").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})
	return t.String()
}
