package dat

import (
	"fmt"
	"io"
	"slices"
	"unicode/utf16"
)

// Walk calls f for every stored word in ascending code-unit order. The
// slice passed to f is reused between calls. Walk stops early if f returns
// false.
//
// The traversal uses an explicit stack, so deep tries do not grow the
// goroutine stack.
func (d *DAT) Walk(f func(word []uint16) bool) {
	type frame struct {
		node  int32
		depth int
	}
	var word []uint16
	stack := []frame{{node: Root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := d.node(top.node)
		word = word[:top.depth]
		if top.node != Root {
			parent := d.node(n.Check)
			word = append(word, uint16(top.node-parent.Base))
			if n.Terminal && !f(word) {
				return
			}
		}
		labels := d.children(top.node).labels()
		for _, c := range slices.Backward(labels) {
			stack = append(stack, frame{node: n.Base + int32(c), depth: len(word)})
		}
	}
}

// Words returns copies of all stored words in ascending code-unit order.
func (d *DAT) Words() [][]uint16 {
	var words [][]uint16
	d.Walk(func(w []uint16) bool {
		words = append(words, slices.Clone(w))
		return true
	})
	return words
}

// Fprint writes all stored words to w, each followed by "; ".
func (d *DAT) Fprint(w io.Writer) error {
	var err error
	d.Walk(func(word []uint16) bool {
		_, err = fmt.Fprintf(w, "%s; ", string(utf16.Decode(word)))
		return err == nil
	})
	return err
}

// Stats reports density metrics for a trie.
type Stats struct {
	UsedSlots  int // occupied slots, root included
	FreeSlots  int // slots on the free list, anchor excluded
	TotalSlots int // length of the node array
	Capacity   int // allocated storage in slots
	Words      int // number of stored words
	MaxStateID int // highest occupied slot
}

// FillRatio returns the share of occupied slots.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats computes density metrics of d.
func (d *DAT) Stats() Stats {
	stats := Stats{
		TotalSlots: d.nodes.Len(),
		Capacity:   d.nodes.Cap(),
		MaxStateID: Root,
		FreeSlots:  d.free().count(),
	}
	for i, n := range d.nodes.Items() {
		if n.Check == 0 {
			continue
		}
		stats.UsedSlots++
		stats.MaxStateID = max(stats.MaxStateID, i)
		if n.Terminal {
			stats.Words++
		}
	}
	return stats
}

func (d *DAT) String() string {
	s := d.Stats()
	return fmt.Sprintf("DAT(states=%d,words=%d,fill=%.2f)", s.TotalSlots, s.Words, s.FillRatio())
}
