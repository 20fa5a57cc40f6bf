// Package skew implements a mergeable priority queue backed by a skew heap:
// a self-adjusting binary tree that keeps no balance metadata and instead
// swaps the children of every node touched by a merge. The unconditional
// swap is what yields amortized O(log n) insertion, removal and, unlike
// array-backed binary heaps, amortized O(log n) union of two whole heaps.
//
// The ordering is determined by a user-provided comparison function that
// defines the priority relationship between items; NewOrdered builds the
// natural max-heap for ordered types.
//
// Key features:
//   - Generic implementation supporting any item type
//   - Amortized O(log n) push, pop and union (Append)
//   - O(1) peek and length
//   - PushPop and Replace reuse the extracted node, allocating nothing
//   - Iterator-based traversal using Go's iter.Seq
//   - No recursion anywhere: merge, traversal and consumption are all
//     iterative, so arbitrarily deep trees never grow the call stack
//
// Basic usage:
//
//	// Create a max-heap of ints
//	h := skew.NewOrdered[int]()
//
//	h.Push(4)
//	h.Push(2)
//	h.Push(3)
//
//	// Peek at the greatest item
//	if top, ok := h.Peek(); ok {
//	    fmt.Println(top) // 4
//	}
//
//	// Union a second heap in O(log n)
//	other := skew.NewOrdered[int]()
//	other.Extend(1, 8)
//	h.Append(other) // other is now empty, h holds all five items
//
//	// Remove items greatest-first
//	for {
//	    top, ok := h.Pop()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(top) // 8, 4, 3, 2, 1
//	}
//
// A Heap is not safe for concurrent use. Mutating methods require exclusive
// access; read-only methods (Peek, Len, IsEmpty, All, String) may run
// concurrently with each other but not with any mutation. A Heap may be
// handed between goroutines whenever its item type may be; the container
// adds no guarantee or restriction of its own.
package skew
