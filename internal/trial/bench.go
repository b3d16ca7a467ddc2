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

package trial

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-doublesort/doublesort"
	"github.com/ajroetker/go-doublesort/internal/workerpool"
)

// Stdlib is the label used for the slices.Sort baseline in bench results.
const Stdlib = "stdlib"

// BenchOptions configures Bench.
type BenchOptions struct {
	Sizes      []int
	Rounds     int
	Seed       uint64
	Strategies []doublesort.Strategy
	// Baseline adds a slices.Sort row per size.
	Baseline bool
}

// BenchResult is the timing of one algorithm at one size.
type BenchResult struct {
	Algorithm string
	Size      int
	Rounds    int
	Min       time.Duration
	Mean      time.Duration
	// Stats is taken from the first round; every round sorts the same input.
	Stats doublesort.Stats
}

// NsPerElement is the mean time per element.
func (r BenchResult) NsPerElement() float64 {
	if r.Size == 0 {
		return 0
	}
	return float64(r.Mean.Nanoseconds()) / float64(r.Size)
}

// Bench times every strategy on the same random int64 input for each size.
// Rounds of one algorithm run through pool, so with more than one worker
// the timings include contention between rounds.
func Bench(ctx context.Context, pool *workerpool.Pool, opts BenchOptions) ([]BenchResult, error) {
	if len(opts.Strategies) == 0 {
		opts.Strategies = doublesort.Strategies()
	}
	if opts.Rounds <= 0 {
		return nil, errors.Errorf("rounds must be positive, got %d", opts.Rounds)
	}

	var results []BenchResult
	for _, size := range opts.Sizes {
		if size <= 0 {
			return nil, errors.Errorf("size must be positive, got %d", size)
		}
		input := randomInt64s(opts.Seed, size)

		for _, s := range opts.Strategies {
			r, err := benchOne(ctx, pool, s.String(), input, opts.Rounds, func(data []int64) (doublesort.Stats, error) {
				return doublesort.SortWithStats(data, doublesort.WithStrategy(s))
			})
			if err != nil {
				return nil, errors.Wrapf(err, "%s n=%d", s, size)
			}
			results = append(results, r)
		}

		if opts.Baseline {
			r, err := benchOne(ctx, pool, Stdlib, input, opts.Rounds, func(data []int64) (doublesort.Stats, error) {
				slices.Sort(data)
				return doublesort.Stats{Elements: len(data)}, nil
			})
			if err != nil {
				return nil, errors.Wrapf(err, "%s n=%d", Stdlib, size)
			}
			results = append(results, r)
		}
	}
	return results, nil
}

func benchOne(ctx context.Context, pool *workerpool.Pool, name string, input []int64, rounds int,
	sortFn func([]int64) (doublesort.Stats, error)) (BenchResult, error) {
	times := make([]time.Duration, rounds)
	stats := make([]doublesort.Stats, rounds)

	err := pool.Run(ctx, rounds, func(_ context.Context, i int) error {
		data := slices.Clone(input)
		start := time.Now()
		st, err := sortFn(data)
		times[i] = time.Since(start)
		if err != nil {
			return err
		}
		if !doublesort.IsSorted(data) {
			return errors.Errorf("round %d produced unsorted output", i)
		}
		stats[i] = st
		return nil
	})
	if err != nil {
		return BenchResult{}, err
	}

	return BenchResult{
		Algorithm: name,
		Size:      len(input),
		Rounds:    rounds,
		Min:       lo.Min(times),
		Mean:      lo.Sum(times) / time.Duration(rounds),
		Stats:     stats[0],
	}, nil
}

func randomInt64s(seed uint64, n int) []int64 {
	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	data := make([]int64, n)
	for i := range data {
		data[i] = rng.Int64N(10000) - 5000
	}
	return data
}
