package dat

// Root is the slot index of the root node. Slot 0 is the free list anchor.
const Root = 1

// RootCheck is the Check value of the root node. It is not a valid slot index.
const RootCheck = -1

// Node is one slot of the double array.
//
//   - Check == 0 marks a free slot. Otherwise Check is the parent's index
//     (RootCheck for the root).
//   - Base is the offset for child transitions: a child for code unit c lives
//     at Base+c. A leaf has Base equal to its own index.
//   - Prev/Next link the slot into a ring. Free slots are members of the
//     free list, occupied slots are members of their parent's sibling ring.
//   - Son is the index of one child, or 0.
//   - Terminal marks the end of a stored word.
type Node struct {
	Base     int32
	Check    int32
	Prev     int32
	Next     int32
	Son      int32
	Terminal bool
}

func (n *Node) isFree() bool {
	if n.Check == 0 {
		assert(n.Base == 0, "free slot with non-zero base")
		return true
	}
	return false
}

// DAT is a mutable double-array trie.
type DAT struct {
	nodes *Array[Node]
}

// New creates an empty trie consisting of the free list anchor and the root.
func New() *DAT {
	d := &DAT{nodes: NewArray[Node](2)}
	root := d.nodes.At(Root)
	root.Check = RootCheck
	root.Base = Root
	return d
}

// NStates returns number of allocated slots/states in the node array.
func (d *DAT) NStates() int { return d.nodes.Len() }

// Capacity returns the number of slots the node array has storage for.
func (d *DAT) Capacity() int { return d.nodes.Cap() }

func (d *DAT) node(i int32) *Node {
	return d.nodes.At(int(i))
}

// hasChildren reports whether node i has committed transitions.
// Leaves keep Base equal to their own index, but a relocated subtree may
// land on its own base, so Son is authoritative.
func (d *DAT) hasChildren(i int32) bool {
	return d.node(i).Son != 0
}

// Transition returns (nextState, ok) for code unit c from state.
func (d *DAT) Transition(state int32, c uint16) (int32, bool) {
	if state <= 0 || int(state) >= d.nodes.Len() {
		return 0, false
	}
	n := d.node(state)
	if n.Check == 0 || n.Son == 0 {
		return 0, false
	}
	t := int(n.Base) + int(c)
	if t >= d.nodes.Len() {
		return 0, false
	}
	if d.nodes.At(t).Check != state {
		return 0, false
	}
	return int32(t), true
}

// markWord flags node i as the end of a stored word.
func (d *DAT) markWord(i int32) {
	assert(i > Root, "cannot mark root as word end")
	n := d.node(i)
	assert(n.Check != 0, "cannot mark free slot as word end")
	n.Terminal = true
}
