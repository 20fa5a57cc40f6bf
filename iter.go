package skew

import (
	"fmt"
	"iter"
	"strings"
)

// All returns an iterator over the heap's items in arbitrary order without
// modifying the heap. The sequence may be ranged over any number of times
// and yields every item present at that moment exactly once; Len gives the
// exact count up front. The heap must not be mutated while a range is in
// progress.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if h.root == nil {
			return
		}
		stack := []*node[T]{h.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.item) {
				return
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
		}
	}
}

// Drain empties the heap immediately and returns a single-use iterator
// over the removed items in arbitrary order. The heap is valid and empty
// as soon as Drain returns; the detached tree is dismantled lazily, one
// rotation at a time, so consumption never recurses no matter how deep the
// tree is. Items not ranged over are dropped.
func (h *Heap[T]) Drain() iter.Seq[T] {
	root := h.root
	h.root = nil
	h.length = 0
	return func(yield func(T) bool) {
		for root != nil {
			n := takeNode(&root)
			if !yield(n.item) {
				return
			}
		}
	}
}

// Descending empties the heap in priority order: the returned single-use
// iterator pops repeatedly, yielding the greatest remaining item each
// time. It is the sorted counterpart of Drain at O(log n) amortized per
// item instead of O(1), and is the natural sorted source for kway.New.
func (h *Heap[T]) Descending() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := h.Pop()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// String lists the heap's items in arbitrary order. Diagnostic only.
func (h *Heap[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for item := range h.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteByte(']')
	return b.String()
}

// takeNode detaches one node from the tree rooted at *root and repoints
// *root at the remainder. It walks the left spine and rotates each node it
// passes underneath its left child, flattening the spine as it goes, so
// every call does work bounded by the nodes it touches and a full teardown
// totals O(n) with no recursion. The order in which nodes surface is
// arbitrary.
func takeNode[T any](root **node[T]) *node[T] {
	n := *root
	for {
		l := n.left
		if l == nil {
			*root = n.right
			n.right = nil
			return n
		}
		n.left = l.right
		l.right = n
		n = l
	}
}
