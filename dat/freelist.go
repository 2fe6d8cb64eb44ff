package dat

// freeList is the circular list of unused slots, anchored at slot 0.
//
// It uses the Prev/Next fields of free slots only. Slots are linked in
// ascending index order, which the base resolver depends on for its
// left-to-right scan.
type freeList struct {
	d *DAT
}

func (d *DAT) free() freeList { return freeList{d: d} }

// release zeroes slot i and links it after the nearest lower free slot.
func (fl freeList) release(i int32) {
	assert(i > 0 && int(i) < fl.d.nodes.Len(), "release of slot out of range")
	assert(i != Root, "release of root slot")
	n := fl.d.node(i)
	*n = Node{}
	p := i - 1
	for ; p >= 0; p-- {
		if fl.d.node(p).isFree() {
			fl.linkAfter(p, i)
			return
		}
	}
	panic("free list anchor missing")
}

func (fl freeList) linkAfter(at, i int32) {
	a, n := fl.d.node(at), fl.d.node(i)
	n.Next = a.Next
	n.Prev = at
	fl.d.node(n.Next).Prev = i
	a.Next = i
}

// take unlinks free slot i so that it may be occupied.
func (fl freeList) take(i int32) {
	n := fl.d.node(i)
	assert(i > 0 && n.isFree(), "take of occupied slot")
	fl.d.node(n.Prev).Next = n.Next
	fl.d.node(n.Next).Prev = n.Prev
	n.Prev, n.Next = i, i
}

// after returns the free slot following free slot i. If the list wraps
// around to the anchor, the node array is extended by one slot.
func (fl freeList) after(i int32) int32 {
	n := fl.d.node(i)
	assert(n.isFree(), "free list walk from occupied slot")
	if n.Next != 0 {
		return n.Next
	}
	fl.grow(1)
	return int32(fl.d.nodes.Len() - 1)
}

// grow appends count slots and releases each of them.
func (fl freeList) grow(count int) {
	first := fl.d.nodes.Append(count)
	for i := first; i < fl.d.nodes.Len(); i++ {
		fl.release(int32(i))
	}
	tracer().Debugf("node array grown by %d to %d slots", count, fl.d.nodes.Len())
}

// ensure grows the node array so that slot i exists.
func (fl freeList) ensure(i int) {
	if i >= fl.d.nodes.Len() {
		fl.grow(i + 1 - fl.d.nodes.Len())
	}
}

// count returns the number of slots on the free list, the anchor excluded.
func (fl freeList) count() int {
	c := 0
	for i := fl.d.node(0).Next; i != 0; i = fl.d.node(i).Next {
		c++
	}
	return c
}
