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

// commit drains r into data using the early-commit rule.
//
// Each step pops the two nodes with the smallest leads. If the left node's
// boundary is not greater than the right node's lead, every value in the
// left node is <= every value still in r, so it is written out. Otherwise
// the two values are exchanged and both nodes go back into r.
func commit[T cmp.Ordered](data []T, r *resolver[T], st *Stats) {
	cursor := 0
	emit := func(n node[T]) {
		cursor += n.emit(data[cursor:])
		st.Commits++
	}

	// Under a total order the step after an exchange never exchanges again,
	// since the left node then holds the two smallest remaining values.
	// Tracking it keeps the loop finite for orders that are not total (NaN).
	exchanged := false
	for {
		if r.size() == 1 {
			emit(r.popMin())
			return
		}

		left := r.popMin()
		right := r.popMin()

		st.Reads++
		st.Comparisons++
		if !exchanged && left.boundary() > right.lead {
			exchange(&left, &right, st)
			exchanged = true

			if r.empty() {
				emit(left)
				emit(right)
				return
			}
			r.push(left)
			r.push(right)
			continue
		}
		exchanged = false

		emit(left)
		if r.empty() {
			emit(right)
			return
		}
		r.push(right)
	}
}
