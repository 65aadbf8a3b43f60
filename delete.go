package avl

// Remove deletes value from the tree, returning the removed value and
// whether a removal occurred. An absent value is a normal negative result,
// not an error.
//
// A node with two children is reduced to the at-most-one-child case by
// copying its in-order successor's value into its slot and splicing out
// the successor instead. The reduction is a loop, not recursion, so call
// depth is constant.
func (t *Tree[T]) Remove(value T) (T, bool) {
	i := t.lookup(value)
	if i == NoIndex {
		var zero T
		return zero, false
	}
	removed := t.nodes[i].value

	if t.nodes[i].left != NoIndex && t.nodes[i].right != NoIndex {
		// The successor is the leftmost node of the right subtree. Its
		// value migrates into slot i; the successor's slot is the one
		// spliced out below.
		s := t.nodes[i].right
		for t.nodes[s].left != NoIndex {
			s = t.nodes[s].left
		}
		t.nodes[i].value = t.nodes[s].value
		i = s
	}

	// i has at most one child: splice its parent directly to that child.
	child := t.nodes[i].left
	if child == NoIndex {
		child = t.nodes[i].right
	}
	p := t.nodes[i].parent

	if child != NoIndex {
		t.nodes[child].parent = p
	}
	switch {
	case p == NoIndex:
		t.root = child
	case t.nodes[p].left == i:
		t.nodes[p].left = child
	default:
		t.nodes[p].right = child
	}

	// All links referencing i are fixed up; only now may the slot be
	// recycled.
	t.dealloc(i)
	t.size--

	t.retrace(p)
	t.trimTail()
	return removed, true
}
