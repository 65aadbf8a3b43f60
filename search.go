package avl

// lookup descends from the root comparing values, returning the slot
// holding value or NoIndex.
func (t *Tree[T]) lookup(value T) Index {
	i := t.root
	for i != NoIndex {
		switch c := t.compare(value, t.nodes[i].value); {
		case c < 0:
			i = t.nodes[i].left
		case c > 0:
			i = t.nodes[i].right
		default:
			return i
		}
	}
	return NoIndex
}

// Contains reports whether value is in the tree and, when it is, the index
// of the slot holding it. O(log n). The index is subject to the lifetime
// contract on Index.
func (t *Tree[T]) Contains(value T) (Index, bool) {
	i := t.lookup(value)
	return i, i != NoIndex
}

// Get returns the value stored in slot i. Direct slot access, O(1), no
// traversal. A vacant or out-of-range index returns false, never fails;
// indices go stale naturally after mutating operations.
func (t *Tree[T]) Get(i Index) (T, bool) {
	if !t.valid(i) {
		var zero T
		return zero, false
	}
	return t.nodes[i].value, true
}
