package avl

// Insert adds value to the tree if it is not already present. It returns
// the index of the slot holding value and whether a new node was created;
// inserting a duplicate is a no-op reporting the existing slot and false.
func (t *Tree[T]) Insert(value T) (Index, bool) {
	if t.root == NoIndex {
		i := t.alloc(value)
		t.root = i
		t.size = 1
		return i, true
	}

	// Descend to the node that will become the parent, remembering which
	// side the new value belongs on.
	p := t.root
	var c int
	for {
		c = t.compare(value, t.nodes[p].value)
		if c == 0 {
			return p, false
		}
		next := t.nodes[p].right
		if c < 0 {
			next = t.nodes[p].left
		}
		if next == NoIndex {
			break
		}
		p = next
	}

	i := t.alloc(value)
	t.nodes[i].parent = p
	if c < 0 {
		t.nodes[p].left = i
	} else {
		t.nodes[p].right = i
	}
	t.size++

	t.retrace(p)
	return i, true
}
