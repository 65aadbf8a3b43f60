package avl

// alloc claims a slot for value, reusing a vacated slot when one is
// available and growing the backing slice otherwise. The new node is
// unlinked with leaf height; the caller wires it into the tree.
//
// Growing the slice may move the backing array, so any node addresses
// taken before alloc are stale afterwards. Indices are unaffected.
func (t *Tree[T]) alloc(value T) Index {
	fresh := node[T]{value: value, parent: NoIndex, left: NoIndex, right: NoIndex, occupied: true}
	if n := len(t.free); n > 0 {
		i := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[i] = fresh
		return i
	}
	t.nodes = append(t.nodes, fresh)
	return Index(len(t.nodes) - 1)
}

// dealloc vacates slot i and pushes it onto the free list. The node must
// already be unlinked: nothing else in the tree may still reference i,
// because a later alloc can hand the slot straight back out.
func (t *Tree[T]) dealloc(i Index) {
	t.nodes[i] = node[T]{parent: NoIndex, left: NoIndex, right: NoIndex}
	t.free = append(t.free, i)
}

// trimTail pops vacant slots from the end of the backing slice and purges
// their indices from the free list, keeping the slice length at the live
// high-water mark.
func (t *Tree[T]) trimTail() {
	n := len(t.nodes)
	for n > 0 && !t.nodes[n-1].occupied {
		n--
	}
	if n == len(t.nodes) {
		return
	}
	t.nodes = t.nodes[:n]

	kept := t.free[:0]
	for _, i := range t.free {
		if int(i) < n {
			kept = append(kept, i)
		}
	}
	t.free = kept
}

// valid reports whether i names a currently occupied slot.
func (t *Tree[T]) valid(i Index) bool {
	return i >= 0 && int(i) < len(t.nodes) && t.nodes[i].occupied
}
