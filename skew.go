package skew

import (
	"cmp"
	"iter"

	"github.com/skewheap/skew/internal/invariants"
)

// node is a skew heap tree node. There is deliberately no balance or size
// metadata: shape is whatever the meld rotations leave behind.
type node[T any] struct {
	item        T
	left, right *node[T]
}

// Heap is a skew-heap priority queue. The zero Heap is not usable;
// construct one with New, NewOrdered, From or Collect.
type Heap[T any] struct {
	root   *node[T]
	length int
	before func(a, b T) bool
}

// New returns an empty heap ordered by before, which reports whether a
// must pop before b (a has strictly higher priority). Items for which
// neither before(a, b) nor before(b, a) holds are interchangeable and pop
// in an unspecified relative order.
func New[T any](before func(a, b T) bool) *Heap[T] {
	return &Heap[T]{before: before}
}

// NewOrdered returns an empty max-heap over T's natural ordering: Pop
// removes the greatest item first.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

// From returns a heap ordered by before containing items.
func From[T any](before func(a, b T) bool, items ...T) *Heap[T] {
	h := New(before)
	h.Extend(items...)
	return h
}

// Collect returns a heap ordered by before containing every item yielded
// by seq.
func Collect[T any](before func(a, b T) bool, seq iter.Seq[T]) *Heap[T] {
	h := New(before)
	for item := range seq {
		h.Push(item)
	}
	return h
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return h.length }

// IsEmpty reports whether the heap contains no items.
func (h *Heap[T]) IsEmpty() bool { return h.root == nil }

// Peek returns the greatest item without removing it. It reports false
// when the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if h.root == nil {
		var zero T
		return zero, false
	}
	return h.root.item, true
}

// Push inserts item into the heap.
func (h *Heap[T]) Push(item T) {
	h.pushNode(&node[T]{item: item})
}

// Extend pushes each item in turn. To add the contents of another heap,
// use Append instead: it splices the whole tree in with a single meld.
func (h *Heap[T]) Extend(items ...T) {
	for _, item := range items {
		h.Push(item)
	}
}

// Pop removes and returns the greatest item. It reports false when the
// heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	n := h.popNode()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.item, true
}

// PushPop pushes item and then pops the greatest item, as one operation
// that allocates nothing. When the heap is empty, or item would be the new
// maximum, item is returned unchanged and the heap is untouched; otherwise
// the displaced maximum is returned and the extracted node is reused to
// hold item. Len is unchanged in every case.
func (h *Heap[T]) PushPop(item T) T {
	if h.root == nil || !h.before(h.root.item, item) {
		return item
	}
	n := h.popNode()
	n.item, item = item, n.item
	h.pushNode(n)
	return item
}

// Replace pops the greatest item and then pushes item, as one operation.
// On an empty heap it pushes item and reports false. When item would be
// the new maximum the root's item slot is overwritten in place; otherwise
// the extracted node is reused as in PushPop. Len grows by one only in the
// empty case.
func (h *Heap[T]) Replace(item T) (T, bool) {
	switch {
	case h.root == nil:
		h.Push(item)
		var zero T
		return zero, false
	case !h.before(h.root.item, item):
		// item is >= the old maximum and therefore >= everything below
		// it, so the root slot can take it directly.
		prev := h.root.item
		h.root.item = item
		return prev, true
	default:
		n := h.popNode()
		prev := n.item
		n.item = item
		h.pushNode(n)
		return prev, true
	}
}

// Append moves every item of other into h with a single meld. After the
// call other is a valid empty heap. Both heaps must have been built with
// the same ordering. Appending a heap to itself is a no-op.
func (h *Heap[T]) Append(other *Heap[T]) {
	if other == nil || other == h {
		return
	}
	h.root = h.meld(h.root, other.root)
	h.length += other.length
	other.root = nil
	other.length = 0
}

// Clear removes every item. The unreachable tree is left to the garbage
// collector, which reclaims it without touching the goroutine stack.
func (h *Heap[T]) Clear() {
	h.root = nil
	h.length = 0
}

// Clone returns an independent deep copy of h: same ordering, same items,
// same tree shape, no shared nodes.
func (h *Heap[T]) Clone() *Heap[T] {
	c := &Heap[T]{before: h.before, length: h.length}
	if h.root == nil {
		return c
	}
	type frame struct {
		src *node[T]
		dst **node[T]
	}
	stack := []frame{{h.root, &c.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &node[T]{item: f.src.item}
		*f.dst = n
		if f.src.left != nil {
			stack = append(stack, frame{f.src.left, &n.left})
		}
		if f.src.right != nil {
			stack = append(stack, frame{f.src.right, &n.right})
		}
	}
	return c
}

// meld combines two heap-ordered trees into one, consuming both. It is
// iterative on purpose: one meld can walk a chain as long as the tree is
// tall, and only the total cost across a sequence of operations is
// logarithmic, so recursing here could grow the call stack linearly in the
// item count.
//
// Each round keeps the higher-priority root, swaps its children (the skew
// step that self-adjusts the tree), and descends into the vacated left
// slot with the other tree still in hand. When one side runs out, the
// remainder hangs off the deepest left slot reached.
func (h *Heap[T]) meld(a, b *node[T]) *node[T] {
	var root *node[T]
	slot := &root
	for a != nil && b != nil {
		if h.before(b.item, a.item) {
			a, b = b, a
		}
		a.left, a.right = a.right, a.left
		*slot = a
		slot = &a.left
		// The swap parked a's old right child in the left slot; that
		// child and b are the contenders for the next level down.
		a = a.left
	}
	if a == nil {
		*slot = b
	} else {
		*slot = a
	}
	return root
}

// pushNode melds a detached singleton node into the heap. PushPop and
// Replace route recycled nodes through here, so the precondition is that
// both child links are clear.
func (h *Heap[T]) pushNode(n *node[T]) {
	if invariants.Enabled && (n.left != nil || n.right != nil) {
		panic("skew: pushed node still has children")
	}
	h.root = h.meld(h.root, n)
	h.length++
}

// popNode detaches the root node, melds its children into the new root and
// returns it with both child links cleared, or nil if the heap is empty.
func (h *Heap[T]) popNode() *node[T] {
	n := h.root
	if n == nil {
		return nil
	}
	h.root = h.meld(n.left, n.right)
	h.length--
	n.left, n.right = nil, nil
	return n
}
