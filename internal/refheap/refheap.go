// Package refheap provides a plain array-backed binary max-heap. It exists
// only as the oracle for the skew heap's differential tests and favours
// obviousness over speed: items live in a slice, sift-up and sift-down are
// the textbook loops, and duplicates are kept rather than coalesced.
package refheap

// Heap is an array-backed priority queue ordered by a comparison function.
type Heap[T any] struct {
	items  []T
	before func(a, b T) bool // reports whether a pops before b
}

// New returns an empty reference heap ordered by before.
func New[T any](before func(a, b T) bool) *Heap[T] {
	return &Heap[T]{before: before}
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Push inserts item.
func (h *Heap[T]) Push(item T) {
	h.items = append(h.items, item)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the highest-priority item. It reports false when
// the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	h.down(0)
	return top, true
}

// Peek returns the highest-priority item without removing it. It reports
// false when the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// PushPop is push followed by pop, the composition the skew heap's PushPop
// must be observably equal to.
func (h *Heap[T]) PushPop(item T) T {
	h.Push(item)
	top, _ := h.Pop()
	return top
}

// Replace is pop followed by push, the composition the skew heap's Replace
// must be observably equal to.
func (h *Heap[T]) Replace(item T) (T, bool) {
	top, ok := h.Pop()
	h.Push(item)
	return top, ok
}

// Items returns a copy of the heap's contents in arbitrary order.
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}

// up moves the element at index i up to its proper position.
func (h *Heap[T]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !h.before(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (h *Heap[T]) down(i int) {
	for {
		top := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(h.items) && h.before(h.items[left], h.items[top]) {
			top = left
		}
		if right < len(h.items) && h.before(h.items[right], h.items[top]) {
			top = right
		}

		if top == i {
			break
		}

		h.items[i], h.items[top] = h.items[top], h.items[i]
		i = top
	}
}
