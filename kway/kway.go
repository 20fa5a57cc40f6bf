package kway

import (
	"iter"
)

// Sequence is a source of items already sorted under the ordering passed
// to New.
type Sequence[E any] interface {
	All() iter.Seq[E]
}

// SeqSource wraps a bare iter.Seq as a Sequence, for sources such as
// skew.Heap.Descending that hand out iterators rather than implementing
// the interface themselves.
func SeqSource[E any](seq iter.Seq[E]) Sequence[E] {
	return seqSource[E]{seq}
}

type seqSource[E any] struct{ seq iter.Seq[E] }

func (s seqSource[E]) All() iter.Seq[E] { return s.seq }

// New returns a tree that merges seqs into one stream sorted by before,
// which reports whether a must be emitted before b. Every sequence must
// already be sorted by the same ordering.
func New[E any](before func(a, b E) bool, seqs ...Sequence[E]) *Tree[E] {
	return &Tree[E]{
		before:    before,
		nodes:     make([]node[E], len(seqs)*2),
		sequences: seqs,
	}
}

// A Tree is a tournament (loser) tree laid out in an array such that nodes
// N and N+1 have parent N/2. For M sequences the leaves sit in positions
// M..2M-1 and the internal nodes in 1..M-1; node 0 holds the winner of the
// whole contest. Each internal node records the loser of the game played
// there, so advancing the winner replays only the games along one path.
type Tree[E any] struct {
	before    func(a, b E) bool
	nodes     []node[E]
	sequences []Sequence[E]
}

type node[E any] struct {
	index int              // loser leaf for internal nodes, winner leaf for node 0
	value E                // value copied from that leaf
	ok    bool             // false once the leaf's sequence is exhausted
	next  func() (E, bool) // only populated for leaf nodes
}

// All returns the merged stream. The tree is single-use: once the stream
// has been ranged over, or abandoned part way, the underlying sequences
// are partially consumed and the tree must not be reused.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		k := len(t.sequences)
		if k == 0 {
			return
		}
		for i, s := range t.sequences {
			next, stop := iter.Pull(s.All())
			defer stop()
			leaf := &t.nodes[k+i]
			leaf.next = next
			leaf.ok = true
			t.advance(k + i)
		}
		t.initialize()
		for t.nodes[0].ok && yield(t.nodes[0].value) {
			t.advance(t.nodes[0].index)
			t.replay(t.nodes[0].index)
		}
	}
}

// advance pulls the next value into the leaf at index i, marking the leaf
// exhausted when its sequence ends.
func (t *Tree[E]) advance(i int) {
	n := &t.nodes[i]
	if v, ok := n.next(); ok {
		n.value = v
		return
	}
	var zero E
	n.value = zero
	n.ok = false
}

func (t *Tree[E]) initialize() {
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
	t.nodes[0].ok = t.nodes[winner].ok
}

// playGame finds the winning leaf below pos, storing the loser at each
// internal node on the way back up. Recursion depth is log of the sequence
// count. pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	loser, winner := left, right
	if t.beats(t.nodes[left].value, t.nodes[left].ok, t.nodes[right].value, t.nodes[right].ok) {
		loser, winner = right, left
	}
	n := &t.nodes[pos]
	n.index = loser
	n.value = t.nodes[loser].value
	n.ok = t.nodes[loser].ok
	return winner
}

// replay re-runs the games on the path from the freshly advanced leaf at
// pos up to the root, then records the new overall winner in node 0.
func (t *Tree[E]) replay(pos int) {
	winVal := t.nodes[pos].value
	winOK := t.nodes[pos].ok
	for i := parent(pos); i != 0; i = parent(i) {
		n := &t.nodes[i]
		if t.beats(n.value, n.ok, winVal, winOK) {
			// The stored loser wins this game; the old winner stays
			// here as the new loser.
			n.index, pos = pos, n.index
			n.value, winVal = winVal, n.value
			n.ok, winOK = winOK, n.ok
		}
	}
	t.nodes[0].index = pos
	t.nodes[0].value = winVal
	t.nodes[0].ok = winOK
}

// beats reports whether contender a wins against contender b. An
// exhausted contender always loses, so finished sequences sink out of the
// tournament without needing a sentinel value.
func (t *Tree[E]) beats(aVal E, aOK bool, bVal E, bOK bool) bool {
	switch {
	case !aOK:
		return false
	case !bOK:
		return true
	default:
		return t.before(aVal, bVal)
	}
}

func parent(i int) int { return i >> 1 }
