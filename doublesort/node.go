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

// node holds one or two elements. When both are present, lead <= trail.
// A node without a trail only exists for the last element of odd-length input.
type node[T cmp.Ordered] struct {
	lead     T
	trail    T
	hasTrail bool
}

// newPair builds a two-element node. Callers run order afterwards.
func newPair[T cmp.Ordered](a, b T) node[T] {
	return node[T]{lead: a, trail: b, hasTrail: true}
}

// newSingle builds the trailing node for odd-length input.
func newSingle[T cmp.Ordered](a T) node[T] {
	return node[T]{lead: a}
}

// order swaps lead and trail if they are out of order and reports whether
// it did.
func (n *node[T]) order() bool {
	if n.hasTrail && n.lead > n.trail {
		n.lead, n.trail = n.trail, n.lead
		return true
	}
	return false
}

// single reports whether the node has no trail.
func (n node[T]) single() bool {
	return !n.hasTrail
}

// boundary is the value compared against the next node's lead.
func (n node[T]) boundary() T {
	if n.hasTrail {
		return n.trail
	}
	return n.lead
}

// setBoundary replaces the value returned by boundary.
func (n *node[T]) setBoundary(v T) {
	if n.hasTrail {
		n.trail = v
		return
	}
	n.lead = v
}

// width is the number of elements emit writes.
func (n node[T]) width() int {
	if n.hasTrail {
		return 2
	}
	return 1
}

// emit writes the node's values to dst and returns how many were written.
// dst must have room for width() elements.
func (n node[T]) emit(dst []T) int {
	dst[0] = n.lead
	if n.hasTrail {
		dst[1] = n.trail
		return 2
	}
	return 1
}

// less orders nodes for the resolver: by lead, then nodes without a trail
// first, then by trail.
func (n node[T]) less(o node[T]) bool {
	if n.lead != o.lead {
		return n.lead < o.lead
	}
	if n.hasTrail != o.hasTrail {
		return !n.hasTrail
	}
	return n.hasTrail && n.trail < o.trail
}
