package dat

// siblingRing is the circular list of the children of one parent node.
//
// It uses the Prev/Next fields of occupied slots only; the parent's Son
// field points to one member of the ring.
type siblingRing struct {
	d      *DAT
	parent int32
}

func (d *DAT) children(parent int32) siblingRing {
	return siblingRing{d: d, parent: parent}
}

// add links occupied slot i into the ring, creating the ring if the parent
// has no children yet.
func (r siblingRing) add(i int32) {
	p := r.d.node(r.parent)
	n := r.d.node(i)
	assert(n.Check == r.parent, "sibling does not belong to parent")
	if p.Son == 0 {
		p.Son = i
		n.Prev, n.Next = i, i
		return
	}
	s := r.d.node(p.Son)
	n.Next = s.Next
	n.Prev = p.Son
	r.d.node(s.Next).Prev = i
	s.Next = i
}

// remove unlinks child i from the ring. If i was the last child, the
// parent's Son is cleared; if it was Son, Son moves to the next child.
func (r siblingRing) remove(i int32) {
	p := r.d.node(r.parent)
	n := r.d.node(i)
	if n.Next == i {
		assert(p.Son == i, "single child is not parent's son")
		p.Son = 0
	} else {
		r.d.node(n.Prev).Next = n.Next
		r.d.node(n.Next).Prev = n.Prev
		if p.Son == i {
			p.Son = n.Next
		}
	}
	n.Prev, n.Next = i, i
}

// each calls f for every child of the parent. f must not modify the ring.
func (r siblingRing) each(f func(child int32)) {
	son := r.d.node(r.parent).Son
	if son == 0 {
		return
	}
	i := son
	for {
		assert(i > 0, "broken sibling ring")
		next := r.d.node(i).Next
		f(i)
		i = next
		if i == son {
			return
		}
	}
}

// has reports whether the parent has a child for code unit c.
func (r siblingRing) has(c uint16) bool {
	base := r.d.node(r.parent).Base
	found := false
	r.each(func(child int32) {
		if child-base == int32(c) {
			found = true
		}
	})
	return found
}

// labels returns the code units of all children in ascending order.
func (r siblingRing) labels() []uint16 {
	base := r.d.node(r.parent).Base
	var cs []uint16
	r.each(func(child int32) {
		cs = append(cs, uint16(child-base))
	})
	sortCodes(cs)
	return cs
}
