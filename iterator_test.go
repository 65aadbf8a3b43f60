package avl

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSteppingEmpty(t *testing.T) {
	tree := New[int]()
	_, ok := tree.First()
	require.False(t, ok)
	_, ok = tree.Last()
	require.False(t, ok)
	_, ok = tree.Next(0)
	require.False(t, ok)
	_, ok = tree.Prev(NoIndex)
	require.False(t, ok)
}

func TestSteppingSingle(t *testing.T) {
	tree := New[int]()
	tree.Insert(42)

	first, ok := tree.First()
	require.True(t, ok)
	last, ok := tree.Last()
	require.True(t, ok)
	require.Equal(t, first, last)

	_, ok = tree.Next(first)
	require.False(t, ok)
	_, ok = tree.Prev(first)
	require.False(t, ok)
}

func TestSteppingForwardBack(t *testing.T) {
	values := []int{50, 20, 80, 10, 30, 70, 90, 25, 35, 75}
	tree := New[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	want := slices.Clone(values)
	slices.Sort(want)

	// forward with Next
	require.Equal(t, want, collect(t, tree))

	// backward with Prev
	var back []int
	i, ok := tree.Last()
	for ok {
		v, _ := tree.Get(i)
		back = append(back, v)
		i, ok = tree.Prev(i)
	}
	slices.Reverse(back)
	require.Equal(t, want, back)
}

func TestSteppingVacantSlot(t *testing.T) {
	tree := New[int]()
	tree.Insert(2)
	tree.Insert(1)
	tree.Insert(3)

	dead, _ := tree.Contains(1)
	tree.Remove(1)

	_, ok := tree.Next(dead)
	require.False(t, ok)
	_, ok = tree.Prev(dead)
	require.False(t, ok)
}

// stepping stays ordered across interleaved inserts and removals
func TestSteppingAfterMutation(t *testing.T) {
	tree := New[int]()
	for v := 0; v < 40; v++ {
		tree.Insert(v)
	}
	for v := 0; v < 40; v += 3 {
		tree.Remove(v)
	}

	prev := -1
	n := 0
	i, ok := tree.First()
	for ok {
		v, _ := tree.Get(i)
		require.Greater(t, v, prev)
		require.NotZero(t, v%3)
		prev = v
		n++
		i, ok = tree.Next(i)
	}
	require.Equal(t, tree.Len(), n)
}
