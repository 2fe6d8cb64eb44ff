package dat

import (
	"cmp"
	"slices"
)

// successor describes one child to be placed under a parent.
// Active successors carry an existing subtree moved during relocation.
type successor struct {
	c        uint16
	base     int32
	son      int32
	terminal bool
	active   bool
}

// staging collects the pending successors of one divergence node.
type staging struct {
	succ *Array[successor]
}

func newStaging() *staging {
	return &staging{succ: NewArray[successor](0)}
}

func (st *staging) reset() { st.succ.Reset() }

func (st *staging) len() int { return st.succ.Len() }

func (st *staging) items() []successor { return st.succ.Items() }

func (st *staging) push(s successor) {
	*st.succ.At(st.succ.Append(1)) = s
}

func (st *staging) contains(c uint16) bool {
	for _, s := range st.items() {
		if s.c == c {
			return true
		}
	}
	return false
}

// collect stages the distinct code units found at position depth in every
// input from index from on which shares word[:depth] and is longer than depth.
func (st *staging) collect(word []uint16, depth int, inputs [][]uint16, from int) {
	assert(from >= 0 && from < len(inputs), "successor search start out of range")
	st.reset()
	prefix := word[:depth]
	for _, w := range inputs[from:] {
		if len(w) <= depth || !slices.Equal(w[:depth], prefix) {
			continue
		}
		if c := w[depth]; !st.contains(c) {
			st.push(successor{c: c})
		}
	}
}

// dropExisting removes successors whose code unit is already a child of
// parent.
func (st *staging) dropExisting(ring siblingRing) {
	items := st.items()
	keep := 0
	for _, s := range items {
		if !ring.has(s.c) {
			items[keep] = s
			keep++
		}
	}
	for i := keep; i < len(items); i++ {
		items[i] = successor{}
	}
	st.succ.n = keep
}

func (st *staging) sort() {
	slices.SortFunc(st.items(), func(a, b successor) int {
		return cmp.Compare(a.c, b.c)
	})
}

// bounds returns the smallest and largest staged code unit.
func (st *staging) bounds() (lo, hi uint16) {
	items := st.items()
	assert(len(items) > 0, "no successors staged")
	lo, hi = items[0].c, items[0].c
	for _, s := range items[1:] {
		lo = min(lo, s.c)
		hi = max(hi, s.c)
	}
	return lo, hi
}

func sortCodes(cs []uint16) {
	slices.Sort(cs)
}
