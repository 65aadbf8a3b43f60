package avl

import "fmt"

// Check audits every structural invariant and returns nil or an error
// wrapping the sentinel for the first violation found: slot and size
// accounting, free-list agreement with vacancy, parent/child link
// symmetry, stored heights, AVL balance, and binary search ordering.
//
// A non-nil result always indicates an implementation bug, never a misuse
// of the public API. Check exists for tests and debugging; no production
// code path calls it.
func (t *Tree[T]) Check() error {
	occupied := 0
	for i := range t.nodes {
		if t.nodes[i].occupied {
			occupied++
		}
	}
	if occupied != t.size {
		return fmt.Errorf("%w: %d occupied slots but size %d", ErrAccounting, occupied, t.size)
	}
	if vacant := len(t.nodes) - occupied; vacant != len(t.free) {
		return fmt.Errorf("%w: %d vacant slots but free list holds %d", ErrAccounting, vacant, len(t.free))
	}
	for _, i := range t.free {
		if i < 0 || int(i) >= len(t.nodes) {
			return fmt.Errorf("%w: free list entry %d out of range", ErrAccounting, i)
		}
		if t.nodes[i].occupied {
			return fmt.Errorf("%w: free list entry %d is occupied", ErrAccounting, i)
		}
	}

	if t.root == NoIndex {
		if t.size != 0 {
			return fmt.Errorf("%w: no root but size %d", ErrAccounting, t.size)
		}
		return nil
	}
	if !t.valid(t.root) {
		return fmt.Errorf("%w: root %d is not an occupied slot", ErrAccounting, t.root)
	}
	if up := t.nodes[t.root].parent; up != NoIndex {
		return fmt.Errorf("%w: root %d has parent %d", ErrParentLink, t.root, up)
	}

	_, reachable, err := t.audit(t.root)
	if err != nil {
		return err
	}
	if reachable != t.size {
		return fmt.Errorf("%w: %d slots reachable from root but size %d", ErrAccounting, reachable, t.size)
	}

	// Local edge checks cannot see a value misplaced deeper in the wrong
	// subtree, so ordering is verified by a full in-order walk.
	i, _ := t.First()
	for {
		next, ok := t.Next(i)
		if !ok {
			break
		}
		if t.compare(t.nodes[i].value, t.nodes[next].value) >= 0 {
			return fmt.Errorf("%w: slot %d does not precede slot %d", ErrOrdering, i, next)
		}
		i = next
	}
	return nil
}

// audit recursively verifies links, heights and balance below slot i,
// returning the computed height and the number of nodes in the subtree.
// Recursion depth is bounded by the tree height.
func (t *Tree[T]) audit(i Index) (int8, int, error) {
	if i == NoIndex {
		return -1, 0, nil
	}
	for _, c := range [2]Index{t.nodes[i].left, t.nodes[i].right} {
		if c == NoIndex {
			continue
		}
		if !t.valid(c) {
			return 0, 0, fmt.Errorf("%w: slot %d links to vacant or out-of-range slot %d", ErrParentLink, i, c)
		}
		if up := t.nodes[c].parent; up != i {
			return 0, 0, fmt.Errorf("%w: slot %d is a child of %d but has parent %d", ErrParentLink, c, i, up)
		}
	}

	lh, ln, err := t.audit(t.nodes[i].left)
	if err != nil {
		return 0, 0, err
	}
	rh, rn, err := t.audit(t.nodes[i].right)
	if err != nil {
		return 0, 0, err
	}

	if bf := rh - lh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: slot %d has balance factor %d", ErrBalance, i, bf)
	}
	h := max(lh, rh) + 1
	if t.nodes[i].height != h {
		return 0, 0, fmt.Errorf("%w: slot %d stores height %d, computed %d", ErrHeight, i, t.nodes[i].height, h)
	}
	return h, ln + rn + 1, nil
}
