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
	"cmp"
	"time"
)

// Sort sorts data in place in non-decreasing order.
// It returns ErrEmptyInput, without touching data, if data is empty.
func Sort[T cmp.Ordered](data []T) error {
	_, err := SortWithStats(data)
	return err
}

// SortWithStats sorts data like Sort and reports the work it did.
func SortWithStats[T cmp.Ordered](data []T, opts ...Option) (Stats, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	st := Stats{Elements: len(data)}
	switch len(data) {
	case 0:
		return st, ErrEmptyInput
	case 1:
		st.Nodes, st.Commits = 1, 1
		return st, nil
	case 2:
		n := newPair(data[0], data[1])
		n.order()
		n.emit(data)
		st.Nodes, st.Commits, st.Comparisons = 1, 1, 1
		return st, nil
	}

	var start time.Time
	if o.timing {
		start = time.Now()
	}

	r := newResolver(buildNodes(data, &st))

	if o.timing {
		st.BuildTime = time.Since(start)
		start = time.Now()
	}

	switch o.strategy {
	case StrategyDrain:
		drain(data, r, &st)
	default:
		commit(data, r, &st)
	}

	if o.timing {
		st.LoopTime = time.Since(start)
	}
	return st, nil
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// buildNodes pairs up data, ordering each pair. An odd element at the end
// becomes a single node. The values are copied, so data may be overwritten
// afterwards.
func buildNodes[T cmp.Ordered](data []T, st *Stats) []node[T] {
	nodes := make([]node[T], 0, (len(data)+1)/2)
	i := 0
	for ; i+1 < len(data); i += 2 {
		n := newPair(data[i], data[i+1])
		n.order()
		st.Comparisons++
		nodes = append(nodes, n)
	}
	if i < len(data) {
		nodes = append(nodes, newSingle(data[i]))
	}
	st.Nodes = len(nodes)
	return nodes
}

// exchange swaps left's boundary value with right's lead and reorders both
// nodes.
func exchange[T cmp.Ordered](left, right *node[T], st *Stats) {
	b := left.boundary()
	left.setBoundary(right.lead)
	right.lead = b
	st.Exchanges++

	reorder(left, st)
	reorder(right, st)
}

func reorder[T cmp.Ordered](n *node[T], st *Stats) {
	if n.hasTrail {
		st.Comparisons++
	}
	n.order()
}
