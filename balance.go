package avl

// height of the subtree rooted at i, -1 for an absent child.
func (t *Tree[T]) height(i Index) int8 {
	if i == NoIndex {
		return -1
	}
	return t.nodes[i].height
}

// updateHeight refreshes the stored height of slot i from its children and
// returns the balance factor, right height minus left height.
func (t *Tree[T]) updateHeight(i Index) int8 {
	l := t.height(t.nodes[i].left)
	r := t.height(t.nodes[i].right)
	t.nodes[i].height = max(l, r) + 1
	return r - l
}

// rotateLeft pivots the right child of i up into i's place:
//
//	  i               r
//	 / \             / \
//	a   r    =>     i   c
//	   / \         / \
//	  b   c       a   b
//
// Link fix-ups touch only i, r and b, plus the parent link of the new
// subtree root; the caller reattaches it to the grandparent (or root).
// Returns the new subtree root r.
func (t *Tree[T]) rotateLeft(i Index) Index {
	r := t.nodes[i].right
	b := t.nodes[r].left

	t.nodes[i].right = b
	if b != NoIndex {
		t.nodes[b].parent = i
	}

	t.nodes[r].left = i
	t.nodes[r].parent = t.nodes[i].parent
	t.nodes[i].parent = r

	t.updateHeight(i)
	t.updateHeight(r)
	return r
}

// rotateRight is the mirror of rotateLeft: the left child of i pivots up.
func (t *Tree[T]) rotateRight(i Index) Index {
	l := t.nodes[i].left
	b := t.nodes[l].right

	t.nodes[i].left = b
	if b != NoIndex {
		t.nodes[b].parent = i
	}

	t.nodes[l].right = i
	t.nodes[l].parent = t.nodes[i].parent
	t.nodes[i].parent = l

	t.updateHeight(i)
	t.updateHeight(l)
	return l
}

// retrace walks from slot i up to the root along parent links, refreshing
// stored heights and rotating wherever sibling heights differ by two. A
// double rotation is applied when the taller child leans the opposite way.
// Removal can require a rotation at every level, so the walk never stops
// early. The root index is updated when a rotation pivots at the root.
func (t *Tree[T]) retrace(i Index) {
	for i != NoIndex {
		up := t.nodes[i].parent
		sub := i

		switch bf := t.updateHeight(i); {
		case bf < -1:
			l := t.nodes[i].left
			if t.height(t.nodes[l].right) > t.height(t.nodes[l].left) {
				// left child leans right: LR double rotation
				t.nodes[i].left = t.rotateLeft(l)
			}
			sub = t.rotateRight(i)
		case bf > 1:
			r := t.nodes[i].right
			if t.height(t.nodes[r].left) > t.height(t.nodes[r].right) {
				// right child leans left: RL double rotation
				t.nodes[i].right = t.rotateRight(r)
			}
			sub = t.rotateLeft(i)
		}

		if sub != i {
			switch {
			case up == NoIndex:
				t.root = sub
			case t.nodes[up].left == i:
				t.nodes[up].left = sub
			default:
				t.nodes[up].right = sub
			}
		}
		i = up
	}
}
