// Package doublesort provides an in-place comparison sort that works on
// pairs of elements.
//
// # Algorithm
//
// The input is split into nodes of two elements, and each node orders
// itself with a single compare/swap. An odd-length input leaves one node
// with a single element. The nodes go into a min-heap keyed on their smaller
// ("lead") value, which decides which node is the right-hand neighbour of
// which.
//
// The driver repeatedly pops the two nodes with the smallest leads and
// compares the larger value of the left node with the lead of the right
// node:
//   - If they are in order, the left node holds the smallest values still
//     pending and is written to the output.
//   - Otherwise the two values are exchanged, both nodes reorder themselves
//     and go back into the heap.
//
// A value moves one node per exchange, and every heap operation costs
// O(log n), so the total cost stays close to O(n log n) rather than the
// O(n²) of a plain neighbour pass.
//
// # Strategies
//
// StrategyCommit (the default) writes nodes out as soon as they are proven
// final. StrategyDrain never commits early: proven nodes are held in a
// second heap and written out by a single confirmation pass that checks
// every boundary. Both run in O(n log n) and produce the same output.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-doublesort/doublesort"
//
//	func Process(data []int) error {
//	    return doublesort.Sort(data)
//	}
//
//	func Inspect(data []float64) (doublesort.Stats, error) {
//	    return doublesort.SortWithStats(data, doublesort.WithStrategy(doublesort.StrategyDrain))
//	}
//
// # Ordering
//
// Elements are ordered with the built-in < and > operators of cmp.Ordered
// types. Equal elements may be reordered. With values that are not totally
// ordered, such as NaN floats, the output order is unspecified but the call
// still returns.
package doublesort
