// Package kway merges multiple sorted sequences into one sorted stream
// using a tournament tree (also known as a loser tree). Each internal node
// of the tree holds the "loser" of a comparison between its children and
// the root holds the overall "winner", so emitting an item and advancing
// its source replays only the log(k) games along one leaf-to-root path.
//
// Key features:
//   - Generic implementation over any item type and ordering
//   - Iterator-based interface using Go's iter.Seq
//   - O(log k) comparisons per emitted item for k sequences
//   - Exhausted sequences drop out of the tournament on their own; no
//     sentinel "maximum value" has to be supplied
//
// Basic usage:
//
//	a := kway.SeqSource(slices.Values([]int{1, 4, 7}))
//	b := kway.SeqSource(slices.Values([]int{2, 5, 8}))
//	c := kway.SeqSource(slices.Values([]int{3, 6, 9}))
//
//	tree := kway.New(func(x, y int) bool { return x < y }, a, b, c)
//	for v := range tree.All() {
//	    fmt.Println(v) // 1, 2, 3, 4, 5, 6, 7, 8, 9
//	}
//
// The package pairs naturally with skew.Heap: Descending drains a heap in
// priority order, so the descending streams of several heaps built with
// the same ordering merge into one globally sorted stream:
//
//	tree := kway.New(
//	    func(a, b int) bool { return a > b },
//	    kway.SeqSource(h1.Descending()),
//	    kway.SeqSource(h2.Descending()),
//	)
package kway
