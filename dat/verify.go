package dat

import (
	"fmt"
)

// Verify checks the structural invariants of d:
//
//   - slot 0 is free, slot 1 is the root
//   - every link field is a valid slot index
//   - the free list is circular, ascending, and holds every free slot
//   - every sibling ring is circular and holds exactly the slots whose
//     Check names its parent, each at Base+c of that parent
//   - every leaf other than the root is a word end
//
// It is meant for tries restored from untrusted bytes and for tests.
func (d *DAT) Verify() error {
	n := int32(d.nodes.Len())
	if n < 2 {
		return fmt.Errorf("node array has %d slots", n)
	}
	nodes := d.nodes.Items()
	if nodes[0].Check != 0 || nodes[0].Base != 0 {
		return fmt.Errorf("anchor slot 0 is occupied")
	}
	if nodes[Root].Check != RootCheck {
		return fmt.Errorf("slot %d is not the root", Root)
	}
	inRange := func(i int32) bool { return i >= 0 && i < n }
	free := 0
	kids := make([]int32, n)
	for i := range n {
		nd := &nodes[i]
		if !inRange(nd.Prev) || !inRange(nd.Next) || !inRange(nd.Son) {
			return fmt.Errorf("slot %d: link out of range", i)
		}
		switch {
		case nd.Check == 0:
			if nd.Base != 0 || nd.Son != 0 || nd.Terminal {
				return fmt.Errorf("slot %d: free slot carries data", i)
			}
			free++
		case i == Root:
			if nd.Base <= 0 || nd.Base >= n {
				return fmt.Errorf("root: base %d out of range", nd.Base)
			}
		case nd.Check == RootCheck:
			return fmt.Errorf("slot %d: second root", i)
		default:
			if !inRange(nd.Check) || nd.Check == i || nodes[nd.Check].Check == 0 {
				return fmt.Errorf("slot %d: invalid parent %d", i, nd.Check)
			}
			if nd.Base <= 0 || nd.Base >= n {
				return fmt.Errorf("slot %d: base %d out of range", i, nd.Base)
			}
			kids[nd.Check]++
		}
	}
	if err := d.verifyFreeList(free); err != nil {
		return err
	}
	for i := int32(1); i < n; i++ {
		if nodes[i].Check == 0 {
			continue
		}
		if err := d.verifyRing(i, kids[i]); err != nil {
			return err
		}
	}
	return nil
}

func (d *DAT) verifyFreeList(free int) error {
	count := 0
	prev := int32(0)
	for i := d.node(0).Next; i != 0; i = d.node(i).Next {
		if i <= prev {
			return fmt.Errorf("free list not ascending at slot %d", i)
		}
		if d.node(i).Check != 0 {
			return fmt.Errorf("occupied slot %d on free list", i)
		}
		if d.node(i).Prev != prev {
			return fmt.Errorf("free list back link broken at slot %d", i)
		}
		prev = i
		count++
	}
	if d.node(0).Prev != prev {
		return fmt.Errorf("free list anchor back link broken")
	}
	if count != free-1 {
		return fmt.Errorf("free list holds %d of %d free slots", count, free-1)
	}
	return nil
}

func (d *DAT) verifyRing(parent int32, kids int32) error {
	p := d.node(parent)
	if p.Son == 0 {
		if kids != 0 {
			return fmt.Errorf("slot %d: %d children but no son", parent, kids)
		}
		if parent != Root && !p.Terminal {
			return fmt.Errorf("slot %d: leaf is not a word end", parent)
		}
		return nil
	}
	count := int32(0)
	i := p.Son
	for {
		c := d.node(i)
		if c.Check != parent {
			return fmt.Errorf("slot %d: sibling ring of %d holds foreign slot %d", parent, parent, i)
		}
		if cu := i - p.Base; cu <= 0 || cu > 0xFFFF {
			return fmt.Errorf("slot %d: child %d not reachable from base %d", parent, i, p.Base)
		}
		if d.node(c.Next).Prev != i {
			return fmt.Errorf("slot %d: sibling back link broken at %d", parent, i)
		}
		count++
		if count > kids {
			return fmt.Errorf("slot %d: sibling ring longer than %d", parent, kids)
		}
		i = c.Next
		if i == p.Son {
			break
		}
	}
	if count != kids {
		return fmt.Errorf("slot %d: sibling ring holds %d of %d children", parent, count, kids)
	}
	return nil
}
