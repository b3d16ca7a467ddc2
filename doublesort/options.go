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

package doublesort

import (
	"fmt"
	"strings"
)

// Strategy selects how the resolver is drained.
type Strategy int

const (
	// StrategyCommit writes a node to the output as soon as a read proves
	// it cannot be displaced. This is the default.
	StrategyCommit Strategy = iota

	// StrategyDrain never commits early. It reinserts both nodes after each
	// read, holds proven nodes back in a second heap and writes the output
	// in one confirmation pass at the end.
	StrategyDrain
)

// String returns the name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyCommit:
		return "commit"
	case StrategyDrain:
		return "drain"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name ("commit" or "drain") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "commit":
		return StrategyCommit, nil
	case "drain":
		return StrategyDrain, nil
	}
	return 0, fmt.Errorf("doublesort: unknown strategy %q", name)
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyCommit, StrategyDrain}
}

type options struct {
	strategy Strategy
	timing   bool
}

// Option configures SortWithStats.
type Option func(*options)

// WithStrategy selects how the resolver is drained.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithTiming records Stats.BuildTime and Stats.LoopTime.
func WithTiming() Option {
	return func(o *options) {
		o.timing = true
	}
}
