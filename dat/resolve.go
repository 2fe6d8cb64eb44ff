package dat

// resolve finds a base for the staged successors such that every target cell
// base+c is free. Candidates are derived from the free list in ascending
// order: for free slot f, base = f - min(c). Candidates <= 0 or equal to
// forbidden are skipped. If a target cell lies beyond the node array, the
// array is grown to cover the largest target and the candidate is accepted.
func (d *DAT) resolve(st *staging, forbidden int32) int32 {
	lo, hi := st.bounds()
	fl := d.free()
	f := int32(0)
	for {
		f = fl.after(f)
		base := f - int32(lo)
		if base <= 0 || base == forbidden {
			continue
		}
		if d.fits(st, base, hi) {
			return base
		}
	}
}

// fits reports whether all successors can be placed at base, growing the
// node array if the highest target lies beyond it.
func (d *DAT) fits(st *staging, base int32, hi uint16) bool {
	for _, s := range st.items() {
		t := int(base) + int(s.c)
		if t >= d.nodes.Len() {
			continue
		}
		if !d.nodes.At(t).isFree() {
			return false
		}
	}
	d.free().ensure(int(base) + int(hi))
	return true
}

// place occupies the target cells of all staged successors under parent,
// using base as the parent's new offset.
func (d *DAT) place(st *staging, base int32, parent int32) {
	assert(base > 0, "non-positive base")
	d.node(parent).Base = base
	fl := d.free()
	ring := d.children(parent)
	for _, s := range st.items() {
		t := base + int32(s.c)
		fl.take(t)
		n := d.node(t)
		n.Check = parent
		n.Base = t
		if s.active {
			n.Son = s.son
			n.Terminal = s.terminal
			if s.son != 0 {
				n.Base = s.base
				d.adopt(t)
			}
		}
		ring.add(t)
	}
}

// adopt re-parents every child of node i to i.
func (d *DAT) adopt(i int32) {
	d.children(i).each(func(child int32) {
		d.node(child).Check = i
	})
}

// relocate stages all children of parent as active successors and returns
// their slots to the free list. The staged set is sorted afterwards.
func (d *DAT) relocate(st *staging, parent int32) {
	p := d.node(parent)
	if p.Son == 0 {
		st.sort()
		return
	}
	tracer().Debugf("relocating children of node %d", parent)
	ring := d.children(parent)
	for p.Son != 0 {
		child := p.Son
		n := d.node(child)
		assert(child > p.Base, "child below parent base")
		st.push(successor{
			c:        uint16(child - p.Base),
			base:     n.Base,
			son:      n.Son,
			terminal: n.Terminal,
			active:   true,
		})
		ring.remove(child)
		d.free().release(child)
	}
	st.sort()
}

// canPlaceAt reports whether all (non-active) staged successors can be placed
// under parent's current base without moving anything. Targets beyond the
// node array are acceptable; the array is grown to cover them.
func (d *DAT) canPlaceAt(st *staging, parent int32) bool {
	if !d.hasChildren(parent) {
		return false
	}
	base := d.node(parent).Base
	_, hi := st.bounds()
	return d.fits(st, base, hi)
}
