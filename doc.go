package avl

/*

# Arena-backed AVL tree (contiguous storage, index links)

This package provides an ordered set built on an AVL balanced binary search
tree whose nodes all live in one contiguous backing slice. Parent and child
relations are expressed as integer slot indices rather than pointers.

It follows the same style as the other go-merklelog structures:

- a flat sequence of fixed-size records addressed by index
- navigation by index arithmetic and index links, never by pointer
- a burden of knowledge on the caller for index lifetimes

## Why an arena instead of a pointer graph

The classic AVL tree allocates one heap object per node and links them by
address. Here a node is one slot in a single slice:

	+--------+--------+--------+-- ... --+
	| slot 0 | slot 1 | slot 2 |         |
	+--------+--------+--------+-- ... --+
	  value, height, parent/left/right Index

This removes per-node allocation and keeps neighbouring nodes close in
memory. The trade is that an Index is a slot handle, not an identity:
removal vacates slots and later insertions reuse them, so an Index obtained
from one operation is only meaningful until the next mutating operation.
That contract is documented, not enforced; there are no generation counters.

Vacated slots are tracked on a free list and reused before the backing
slice grows. When removals leave vacant slots at the tail of the slice, the
tail is trimmed and those indices leave the free list, so the slice length
stays at the high-water mark of the live tree plus interior vacancies.

## Balancing

Standard AVL: every node records the height of its subtree, and sibling
subtree heights may differ by at most one. Insertion and removal retrace
from the mutation point to the root along parent links, refreshing heights
and rotating where the invariant is violated. Insertion needs at most one
(possibly double) rotation; removal may rotate at every level of the
ascent. All operations are iterative, so call depth is constant no matter
the tree size.

The parent links also give ordered stepping (First/Last/Next/Prev) without
a traversal stack.

## Concurrency

An individual tree is not safe for concurrent use. Confine it to a single
goroutine or serialize access externally; rotations transiently break every
structural invariant mid-operation, so a reader is not safe even alongside
one writer.

*/
