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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-doublesort/doublesort"
	"github.com/ajroetker/go-doublesort/internal/workerpool"
)

func newPool(t *testing.T) *workerpool.Pool {
	t.Helper()
	pool := workerpool.New(4)
	t.Cleanup(pool.Close)
	return pool
}

func TestCheck(t *testing.T) {
	report, err := Check(context.Background(), newPool(t), CheckOptions{
		Trials:   1000,
		MaxLen:   200,
		MaxValue: 50,
		Seed:     7,
	})
	require.NoError(t, err)
	assert.Equal(t, 1000, report.Trials)
	assert.Positive(t, report.Elements)
	require.Len(t, report.Stats, 2)

	commit := report.Stats[doublesort.StrategyCommit]
	drain := report.Stats[doublesort.StrategyDrain]
	assert.Equal(t, report.Elements, commit.Elements)
	assert.Equal(t, commit.Nodes, commit.Commits)
	assert.Equal(t, drain.Nodes, drain.Commits)
	assert.Zero(t, commit.Passes)
	assert.Positive(t, drain.Passes)
}

func TestCheckSingleStrategy(t *testing.T) {
	report, err := Check(context.Background(), newPool(t), CheckOptions{
		Trials:     20,
		MaxLen:     10,
		MaxValue:   5,
		Strategies: []doublesort.Strategy{doublesort.StrategyDrain},
	})
	require.NoError(t, err)
	assert.Len(t, report.Stats, 1)
	assert.Contains(t, report.Stats, doublesort.StrategyDrain)
}

func TestCheckInvalid(t *testing.T) {
	_, err := Check(context.Background(), newPool(t), CheckOptions{Trials: 0, MaxLen: 1, MaxValue: 1})
	assert.Error(t, err)
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Check(ctx, newPool(t), CheckOptions{Trials: 10, MaxLen: 10, MaxValue: 10})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRandomIntsDeterministic(t *testing.T) {
	a := RandomInts(1, 5, 100, 10)
	b := RandomInts(1, 5, 100, 10)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
	assert.LessOrEqual(t, len(a), 100)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestMismatchError(t *testing.T) {
	m := &Mismatch{
		Trial:    3,
		Strategy: doublesort.StrategyDrain,
		Input:    []int{2, 1},
		Got:      []int{2, 1},
		Want:     []int{1, 2},
		Index:    0,
	}
	assert.Equal(t, "trial 3 (drain, n=2): got 2 at index 0, want 1", m.Error())
}

func TestBench(t *testing.T) {
	results, err := Bench(context.Background(), newPool(t), BenchOptions{
		Sizes:    []int{10, 100},
		Rounds:   3,
		Seed:     1,
		Baseline: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 6)

	assert.Equal(t, "commit", results[0].Algorithm)
	assert.Equal(t, "drain", results[1].Algorithm)
	assert.Equal(t, Stdlib, results[2].Algorithm)
	for _, r := range results {
		assert.Equal(t, 3, r.Rounds)
		assert.LessOrEqual(t, r.Min, r.Mean)
		assert.Equal(t, r.Size, r.Stats.Elements)
	}
	assert.Equal(t, 100, results[3].Size)
}

func TestBenchInvalid(t *testing.T) {
	_, err := Bench(context.Background(), newPool(t), BenchOptions{Sizes: []int{10}, Rounds: 0})
	assert.Error(t, err)

	_, err = Bench(context.Background(), newPool(t), BenchOptions{Sizes: []int{-1}, Rounds: 1})
	assert.Error(t, err)
}
