package avl

// Ordered stepping over slots using the parent links, one neighbour at a
// time. No traversal stack is needed: Next and Prev climb parent links
// when a subtree is exhausted.

// First returns the slot holding the lowest value, false when empty.
func (t *Tree[T]) First() (Index, bool) {
	if t.root == NoIndex {
		return NoIndex, false
	}
	return t.leftmost(t.root), true
}

// Last returns the slot holding the highest value, false when empty.
func (t *Tree[T]) Last() (Index, bool) {
	if t.root == NoIndex {
		return NoIndex, false
	}
	return t.rightmost(t.root), true
}

// Next returns the slot holding the in-order neighbour above slot i.
// Returns false at the highest value, and for a vacant or out-of-range i.
func (t *Tree[T]) Next(i Index) (Index, bool) {
	if !t.valid(i) {
		return NoIndex, false
	}
	if r := t.nodes[i].right; r != NoIndex {
		return t.leftmost(r), true
	}
	// climb until arriving from a left child
	up := t.nodes[i].parent
	for up != NoIndex && t.nodes[up].right == i {
		i = up
		up = t.nodes[up].parent
	}
	if up == NoIndex {
		return NoIndex, false
	}
	return up, true
}

// Prev returns the slot holding the in-order neighbour below slot i.
// Returns false at the lowest value, and for a vacant or out-of-range i.
func (t *Tree[T]) Prev(i Index) (Index, bool) {
	if !t.valid(i) {
		return NoIndex, false
	}
	if l := t.nodes[i].left; l != NoIndex {
		return t.rightmost(l), true
	}
	up := t.nodes[i].parent
	for up != NoIndex && t.nodes[up].left == i {
		i = up
		up = t.nodes[up].parent
	}
	if up == NoIndex {
		return NoIndex, false
	}
	return up, true
}

func (t *Tree[T]) leftmost(i Index) Index {
	for t.nodes[i].left != NoIndex {
		i = t.nodes[i].left
	}
	return i
}

func (t *Tree[T]) rightmost(i Index) Index {
	for t.nodes[i].right != NoIndex {
		i = t.nodes[i].right
	}
	return i
}
