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

import "cmp"

// maxDrainRounds bounds settle/confirm rounds. Under a total order the
// first confirmation pass never exchanges, so only orders that are not
// total (NaN) reach a second round.
const maxDrainRounds = 3

// drain sorts without early commits. Nothing is written to data until the
// whole resolver has been settled: each read reinserts both nodes, and a
// node whose boundary proved to be in order moves to a second heap instead
// of the output. A final confirmation pass pops that heap in order, checks
// every boundary with no exchange and writes the result.
//
// Each node is settled once and pushed and popped once more than with
// commit, so the cost stays O(n log n) with about twice the heap work.
func drain[T cmp.Ordered](data []T, r *resolver[T], st *Stats) {
	for round := 1; ; round++ {
		settled := settle(r, st)

		exchanges := st.Exchanges
		next := confirm(data, settled, st)
		if st.Exchanges == exchanges || round >= maxDrainRounds {
			st.Commits += next.size()
			return
		}
		r = next
	}
}

// settle empties r into a new resolver. Every value in a settled node is
// <= every value still in r when it is settled.
func settle[T cmp.Ordered](r *resolver[T], st *Stats) *resolver[T] {
	settled := &resolver[T]{heap: make([]node[T], 0, r.size())}

	// See commit for why a second exchange in a row is skipped.
	exchanged := false
	for r.size() > 1 {
		left := r.popMin()
		right := r.popMin()

		st.Reads++
		st.Comparisons++
		if !exchanged && left.boundary() > right.lead {
			exchange(&left, &right, st)
			exchanged = true
			r.push(left)
			r.push(right)
			continue
		}
		exchanged = false

		settled.push(left)
		r.push(right)
	}
	settled.push(r.popMin())
	return settled
}

// confirm pops every node of r in order, compares it with the node popped
// before it and writes the values to data. Any exchange it has to make
// means the writes are not final; the nodes are returned for another round.
func confirm[T cmp.Ordered](data []T, r *resolver[T], st *Stats) *resolver[T] {
	st.Passes++
	next := &resolver[T]{heap: make([]node[T], 0, r.size())}

	cursor := 0
	held := r.popMin()
	for !r.empty() {
		cur := r.popMin()

		st.Reads++
		st.Comparisons++
		if held.boundary() > cur.lead {
			exchange(&held, &cur, st)
		}

		cursor += held.emit(data[cursor:])
		next.push(held)
		held = cur
	}
	held.emit(data[cursor:])
	next.push(held)
	return next
}
