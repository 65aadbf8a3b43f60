package avl

import (
	"cmp"
	"slices"
)

// Tree is an ordered set of unique values held in a contiguous arena of
// node slots. The zero value is not usable; construct with New or NewFunc.
type Tree[T any] struct {
	compare func(a, b T) int
	nodes   []node[T]
	free    []Index
	root    Index
	size    int
}

// New creates an empty tree over a naturally ordered value type.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc creates an empty tree ordered by compare, which must define a
// total order: negative for a < b, zero for equal, positive for a > b.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare, root: NoIndex}
}

// Len is the number of values in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty is true when the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Cap is the number of allocated slots, occupied or vacant. It is the
// high-water mark of the arena less any trimmed tail.
func (t *Tree[T]) Cap() int {
	return len(t.nodes)
}

// Height is the number of levels in the tree, 0 when empty. The AVL
// invariant bounds it by 1.44*log2(Len()+1).
func (t *Tree[T]) Height() int {
	if t.root == NoIndex {
		return 0
	}
	return int(t.nodes[t.root].height) + 1
}

// Clear removes every value and empties the free list. Slot capacity is
// retained for reuse.
func (t *Tree[T]) Clear() {
	// clear releases any references held by the stored values.
	clear(t.nodes)
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.root = NoIndex
	t.size = 0
}

// Clone returns a structural copy sharing no storage with the original.
// Values are copied by assignment. Slot indices in the clone are identical
// to those in the original at the moment of the copy.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		compare: t.compare,
		nodes:   slices.Clone(t.nodes),
		free:    slices.Clone(t.free),
		root:    t.root,
		size:    t.size,
	}
}
