package avl

import "errors"

// Index is a slot handle into a tree's backing slice. It is an offset, not
// a pointer: the slot it names may be vacated and reused by later
// mutations. An Index returned by Insert, Contains, First, Last, Next or
// Prev is valid only until the next mutating operation on the tree.
type Index int

// NoIndex is the sentinel for an absent link or a failed lookup.
const NoIndex Index = -1

// Sentinel errors reported by Check. Each names the first invariant class
// found violated; the wrapping error carries the offending slot detail.
var (
	ErrOrdering   = errors.New("avl: binary search order violated")
	ErrBalance    = errors.New("avl: sibling subtree heights differ by more than one")
	ErrHeight     = errors.New("avl: stored height incorrect")
	ErrParentLink = errors.New("avl: parent and child links disagree")
	ErrAccounting = errors.New("avl: slot or size accounting incorrect")
)

// node is one backing slot. height is the height of the subtree rooted at
// the slot: 0 for a leaf, with an absent child contributing -1. A vacant
// slot has occupied false and keeps no other meaningful state.
type node[T any] struct {
	value    T
	parent   Index
	left     Index
	right    Index
	height   int8
	occupied bool
}
