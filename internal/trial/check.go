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

// Package trial runs randomized property checks and timing runs of the
// doublesort strategies. Every trial sorts its own slice; the worker pool
// only runs independent trials side by side.
package trial

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-doublesort/doublesort"
	"github.com/ajroetker/go-doublesort/internal/workerpool"
)

// CheckOptions configures Check.
type CheckOptions struct {
	Trials     int
	MaxLen     int
	MaxValue   int
	Seed       uint64
	Strategies []doublesort.Strategy
}

// Mismatch describes a trial whose output differed from slices.Sort.
type Mismatch struct {
	Trial    int
	Strategy doublesort.Strategy
	Input    []int
	Got      []int
	Want     []int
	// Index is the first position where Got and Want differ.
	Index int
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("trial %d (%s, n=%d): got %d at index %d, want %d",
		m.Trial, m.Strategy, len(m.Input), m.Got[m.Index], m.Index, m.Want[m.Index])
}

// CheckReport summarizes a Check run.
type CheckReport struct {
	Trials   int
	Elements int
	// Stats holds the summed counters per strategy.
	Stats map[doublesort.Strategy]doublesort.Stats
}

// Check sorts Trials random slices with each strategy and compares the
// result with slices.Sort. Trial i always uses the same input for a given
// Seed. The first mismatch is returned as a *Mismatch error.
func Check(ctx context.Context, pool *workerpool.Pool, opts CheckOptions) (CheckReport, error) {
	if len(opts.Strategies) == 0 {
		opts.Strategies = doublesort.Strategies()
	}
	if opts.Trials <= 0 || opts.MaxLen <= 0 || opts.MaxValue <= 0 {
		return CheckReport{}, errors.Errorf("trials, max length and max value must be positive (got %d, %d, %d)",
			opts.Trials, opts.MaxLen, opts.MaxValue)
	}

	var (
		mu     sync.Mutex
		totals = make(map[doublesort.Strategy][]doublesort.Stats, len(opts.Strategies))
		elems  int
	)

	err := pool.Run(ctx, opts.Trials, func(_ context.Context, i int) error {
		input := RandomInts(opts.Seed, i, opts.MaxLen, opts.MaxValue)
		want := slices.Clone(input)
		slices.Sort(want)

		stats := make([]doublesort.Stats, 0, len(opts.Strategies))
		for _, s := range opts.Strategies {
			got := slices.Clone(input)
			st, err := doublesort.SortWithStats(got, doublesort.WithStrategy(s))
			if err != nil {
				return errors.Wrapf(err, "trial %d", i)
			}
			if idx := firstDiff(got, want); idx >= 0 {
				return &Mismatch{Trial: i, Strategy: s, Input: input, Got: got, Want: want, Index: idx}
			}
			stats = append(stats, st)
		}

		mu.Lock()
		defer mu.Unlock()
		elems += len(input)
		for j, s := range opts.Strategies {
			totals[s] = append(totals[s], stats[j])
		}
		return nil
	})
	if err != nil {
		return CheckReport{}, err
	}

	return CheckReport{
		Trials:   opts.Trials,
		Elements: elems,
		Stats:    lo.MapValues(totals, func(all []doublesort.Stats, _ doublesort.Strategy) doublesort.Stats { return sumStats(all) }),
	}, nil
}

// RandomInts returns the input for trial i: a slice of 1..maxLen values in
// [0, maxValue). It is deterministic in (seed, i).
func RandomInts(seed uint64, i, maxLen, maxValue int) []int {
	rng := rand.New(rand.NewPCG(seed, uint64(i)))
	data := make([]int, 1+rng.IntN(maxLen))
	for j := range data {
		data[j] = rng.IntN(maxValue)
	}
	return data
}

func firstDiff(got, want []int) int {
	for i := range want {
		if got[i] != want[i] {
			return i
		}
	}
	return -1
}

func sumStats(all []doublesort.Stats) doublesort.Stats {
	return doublesort.Stats{
		Elements:    lo.SumBy(all, func(s doublesort.Stats) int { return s.Elements }),
		Nodes:       lo.SumBy(all, func(s doublesort.Stats) int { return s.Nodes }),
		Comparisons: lo.SumBy(all, func(s doublesort.Stats) int { return s.Comparisons }),
		Reads:       lo.SumBy(all, func(s doublesort.Stats) int { return s.Reads }),
		Exchanges:   lo.SumBy(all, func(s doublesort.Stats) int { return s.Exchanges }),
		Commits:     lo.SumBy(all, func(s doublesort.Stats) int { return s.Commits }),
		Passes:      lo.SumBy(all, func(s doublesort.Stats) int { return s.Passes }),
	}
}
