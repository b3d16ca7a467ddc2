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
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-doublesort/doublesort"
)

// Value kinds accepted by the sort command.
const (
	kindInt    = "int"
	kindFloat  = "float"
	kindString = "string"
	kindRune   = "rune"
)

type sortOptions struct {
	kind     string
	file     string
	strategy string
	sep      string
	stats    bool
}

func (c *CLI) sortCommand() *cobra.Command {
	var opts sortOptions

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort values from arguments, a file or stdin",
		Long: `Sort whitespace-separated values and print them in ascending order.

Values are read from the arguments if any are given, otherwise from --file,
otherwise from stdin. With --type rune every non-space character is a value.`,
		Example: `  doublesort sort 48 23 78 67 89 22 33 44
  doublesort sort --type float --file data.txt
  echo qwertyuiop | doublesort sort --type rune --sep ""`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSort(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "type", "t", kindInt, "value type: int, float, string or rune")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read values from this file instead of stdin")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "drain strategy: commit or drain (default from config)")
	cmd.Flags().StringVar(&opts.sep, "sep", " ", "separator between output values")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "log sort statistics")

	return cmd
}

func (c *CLI) runSort(ctx context.Context, in io.Reader, out io.Writer, args []string, opts sortOptions) error {
	logger := loggerFromContext(ctx)

	strategy, err := c.strategy(opts.strategy)
	if err != nil {
		return err
	}

	tokens, err := readTokens(in, args, opts.file, opts.kind == kindRune)
	if err != nil {
		return err
	}
	logger.Debug("Read values", "count", len(tokens), "type", opts.kind, "strategy", strategy)

	sortOpts := []doublesort.Option{doublesort.WithStrategy(strategy), doublesort.WithTiming()}

	var (
		sorted []string
		st     doublesort.Stats
	)
	switch opts.kind {
	case kindInt:
		sorted, st, err = sortValues(tokens, parseInt, formatInt, sortOpts...)
	case kindFloat:
		sorted, st, err = sortValues(tokens, parseFloat, formatFloat, sortOpts...)
	case kindString:
		sorted, st, err = sortValues(tokens, parseString, formatString, sortOpts...)
	case kindRune:
		sorted, st, err = sortValues(tokens, parseRune, formatRune, sortOpts...)
	default:
		return errors.Errorf("unknown value type %q (want int, float, string or rune)", opts.kind)
	}
	if err != nil {
		return err
	}

	logger.Debug("Built nodes", "nodes", st.Nodes, "elapsed", st.BuildTime)
	logger.Debug("Resolved nodes", "reads", st.Reads, "elapsed", st.LoopTime)
	if opts.stats {
		logger.Info("Sorted",
			"elements", st.Elements,
			"nodes", st.Nodes,
			"reads", st.Reads,
			"exchanges", st.Exchanges,
			"idle", st.Idle(),
			"comparisons", st.Comparisons,
			"passes", st.Passes,
			"elapsed", st.BuildTime+st.LoopTime,
		)
	}

	_, err = fmt.Fprintln(out, strings.Join(sorted, opts.sep))
	return err
}

// strategy resolves the --strategy flag, falling back to the config.
func (c *CLI) strategy(flag string) (doublesort.Strategy, error) {
	if flag == "" {
		return c.cfg.StrategyValue(), nil
	}
	return doublesort.ParseStrategy(flag)
}

// readTokens splits the input into value tokens. With perRune every
// non-space character is its own token.
func readTokens(in io.Reader, args []string, file string, perRune bool) ([]string, error) {
	var text string
	switch {
	case len(args) > 0:
		text = strings.Join(args, " ")
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "read values")
		}
		text = string(b)
	default:
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		text = string(b)
	}

	fields := strings.Fields(text)
	if !perRune {
		return fields, nil
	}
	return lo.FlatMap(fields, func(f string, _ int) []string {
		return lo.Map([]rune(f), func(r rune, _ int) string { return string(r) })
	}), nil
}

// sortValues parses tokens, sorts them and formats them back.
func sortValues[T cmp.Ordered](tokens []string, parse func(string) (T, error), format func(T) string,
	opts ...doublesort.Option) ([]string, doublesort.Stats, error) {
	values := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, doublesort.Stats{}, errors.Wrapf(err, "value %d (%q)", i+1, tok)
		}
		values[i] = v
	}

	st, err := doublesort.SortWithStats(values, opts...)
	if err != nil {
		return nil, st, errors.Wrap(err, "no values to sort")
	}
	return lo.Map(values, func(v T, _ int) string { return format(v) }), st, nil
}

func parseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
func formatInt(v int64) string         { return strconv.FormatInt(v, 10) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
func formatFloat(v float64) string         { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseString(s string) (string, error) { return s, nil }
func formatString(v string) string         { return v }

func parseRune(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, errors.Errorf("want a single character, got %d", len(r))
	}
	return r[0], nil
}

func formatRune(v rune) string { return string(v) }
