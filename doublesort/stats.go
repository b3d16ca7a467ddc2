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
	"time"
)

// Stats describes the work done by one sort call. It is diagnostic only;
// ignoring it never changes the result.
type Stats struct {
	// Elements is the length of the sorted slice.
	Elements int
	// Nodes is the number of nodes built from the input.
	Nodes int
	// Comparisons counts every element comparison, including the ones a
	// node makes to order itself.
	Comparisons int
	// Reads counts comparisons between a node's boundary and its
	// neighbour's lead.
	Reads int
	// Exchanges counts reads that swapped a value between two nodes.
	Exchanges int
	// Commits counts nodes written to the output.
	Commits int
	// Passes counts confirmation passes. Only StrategyDrain makes them,
	// one per call under a total order.
	Passes int

	// BuildTime and LoopTime are only set with WithTiming.
	BuildTime time.Duration
	LoopTime  time.Duration
}

// Idle is the number of reads that did not exchange anything.
func (s Stats) Idle() int {
	return s.Reads - s.Exchanges
}

func (s Stats) String() string {
	return fmt.Sprintf("elements=%d nodes=%d comparisons=%d reads=%d exchanges=%d commits=%d passes=%d",
		s.Elements, s.Nodes, s.Comparisons, s.Reads, s.Exchanges, s.Commits, s.Passes)
}
