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

// resolver is a min-heap of nodes. The root is always the uncommitted node
// with the smallest lead, so popping twice yields a node and its right-hand
// neighbour in sorted order.
type resolver[T cmp.Ordered] struct {
	heap []node[T]
}

// newResolver takes ownership of nodes and heapifies them in place.
func newResolver[T cmp.Ordered](nodes []node[T]) *resolver[T] {
	r := &resolver[T]{heap: nodes}
	n := len(nodes)
	for i := n/2 - 1; i >= 0; i-- {
		r.siftDown(i, n)
	}
	return r
}

func (r *resolver[T]) size() int {
	return len(r.heap)
}

func (r *resolver[T]) empty() bool {
	return len(r.heap) == 0
}

// push inserts n in O(log k).
func (r *resolver[T]) push(n node[T]) {
	r.heap = append(r.heap, n)
	r.siftUp(len(r.heap) - 1)
}

// popMin removes and returns the smallest node.
// It panics if the resolver is empty.
func (r *resolver[T]) popMin() node[T] {
	last := len(r.heap) - 1
	if last < 0 {
		panic("doublesort: popMin on empty resolver")
	}
	top := r.heap[0]
	r.heap[0] = r.heap[last]
	r.heap = r.heap[:last]
	r.siftDown(0, last)
	return top
}

func (r *resolver[T]) siftUp(i int) {
	h := r.heap
	for i > 0 {
		parent := (i - 1) / 2
		if !h[i].less(h[parent]) {
			break
		}
		h[i], h[parent] = h[parent], h[i]
		i = parent
	}
}

func (r *resolver[T]) siftDown(i, n int) {
	h := r.heap
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h[left].less(h[smallest]) {
			smallest = left
		}
		if right < n && h[right].less(h[smallest]) {
			smallest = right
		}

		if smallest == i {
			break
		}

		h[i], h[smallest] = h[smallest], h[i]
		i = smallest
	}
}
