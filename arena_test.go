package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotReuse(t *testing.T) {
	tree := New[int]()
	tree.Insert(5)
	tree.Insert(3)
	tree.Insert(8)

	freed, ok := tree.Contains(3)
	require.True(t, ok)

	_, removed := tree.Remove(3)
	require.True(t, removed)
	require.Equal(t, 2, tree.Len())

	// the vacated slot is handed straight back out
	reused, added := tree.Insert(4)
	require.True(t, added)
	require.Equal(t, freed, reused)
	require.Equal(t, 3, tree.Len())
	require.NoError(t, tree.Check())
}

func TestTailTrim(t *testing.T) {
	tree := New[int]()
	tree.Insert(1)
	tree.Insert(2)
	tree.Insert(3)
	require.Equal(t, 3, tree.Cap())

	// slot 2 holds the value 3 and is the tail of the arena; removing it
	// shrinks the arena instead of growing the free list
	_, removed := tree.Remove(3)
	require.True(t, removed)
	require.Equal(t, 2, tree.Cap())
	require.Empty(t, tree.free)
	require.NoError(t, tree.Check())
}

func TestTailTrimPurgesFreeList(t *testing.T) {
	tree := New[int]()
	for v := 0; v < 8; v++ {
		tree.Insert(v)
	}
	// vacate an interior slot first, then the tail; the tail trim must
	// remove only tail indices from the free list
	interior, _ := tree.Contains(0)
	tree.Remove(0)
	tree.Remove(7)

	require.Equal(t, 6, tree.Len())
	require.Contains(t, tree.free, interior)
	require.NoError(t, tree.Check())
}

func TestGetInvalidIndex(t *testing.T) {
	tree := New[int]()
	tree.Insert(10)

	_, ok := tree.Get(NoIndex)
	require.False(t, ok)
	_, ok = tree.Get(Index(99))
	require.False(t, ok)

	// a stale index to a vacated, untrimmed slot reads as absent
	tree.Insert(5)
	tree.Insert(20)
	stale, _ := tree.Contains(5)
	tree.Remove(5)
	_, ok = tree.Get(stale)
	require.False(t, ok)
}

func TestIndexStaleAfterReuse(t *testing.T) {
	tree := New[int]()
	tree.Insert(5)
	tree.Insert(3)
	tree.Insert(8)

	i, _ := tree.Contains(3)
	tree.Remove(3)
	tree.Insert(6)

	// the slot was recycled: the old index now reads the new occupant
	v, ok := tree.Get(i)
	require.True(t, ok)
	require.Equal(t, 6, v)
}

func TestCapHighWaterMark(t *testing.T) {
	tree := New[int]()
	for v := 0; v < 100; v++ {
		tree.Insert(v)
	}
	require.Equal(t, 100, tree.Cap())

	// interior removals leave the arena length alone
	for v := 10; v < 50; v++ {
		tree.Remove(v)
	}
	require.Equal(t, 60, tree.Len())
	require.LessOrEqual(t, tree.Cap(), 100)
	require.GreaterOrEqual(t, tree.Cap(), 60)

	// refilling reuses every vacancy before growing
	for v := 10; v < 50; v++ {
		tree.Insert(v)
	}
	require.Equal(t, 100, tree.Len())
	require.Equal(t, 100, tree.Cap())
	require.NoError(t, tree.Check())
}
