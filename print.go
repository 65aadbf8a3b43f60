package avl

import (
	"fmt"
	"io"
)

// to control the dump layout
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Dump writes an ASCII rendering of the tree to w, one slot per line with
// its value, slot index, stored height and parent index. Returns the
// maximum depth reached. Intended for debugging and test failure output.
func (t *Tree[T]) Dump(w io.Writer) int {
	return t.dump(w, t.root, "", rootBranch)
}

func (t *Tree[T]) dump(w io.Writer, i Index, prefix string, br branch) int {
	if i == NoIndex {
		return 0
	}
	rd := 0
	ld := 0
	if r := t.nodes[i].right; r != NoIndex {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = t.dump(w, r, prefix+pad, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v [slot %d h %d ^%d]\n", t.nodes[i].value, i, t.nodes[i].height, t.nodes[i].parent)
	if l := t.nodes[i].left; l != NoIndex {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = t.dump(w, l, prefix+pad, leftBranch)
	}
	return 1 + max(rd, ld)
}
