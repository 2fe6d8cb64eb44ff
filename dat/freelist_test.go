package dat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func freeSlots(d *DAT) []int32 {
	var slots []int32
	for i := d.node(0).Next; i != 0; i = d.node(i).Next {
		slots = append(slots, i)
	}
	return slots
}

func TestNewTrie(t *testing.T) {
	d := New()
	require.Equal(t, 2, d.NStates())
	require.Equal(t, int32(RootCheck), d.node(Root).Check)
	require.Equal(t, int32(Root), d.node(Root).Base)
	require.Empty(t, freeSlots(d))
	require.NoError(t, d.Verify())
}

func TestFreeListStaysAscending(t *testing.T) {
	d := New()
	fl := d.free()
	fl.grow(5)
	require.Equal(t, []int32{2, 3, 4, 5, 6}, freeSlots(d))

	fl.take(4)
	fl.take(2)
	require.Equal(t, []int32{3, 5, 6}, freeSlots(d))
	d.node(4).Check, d.node(4).Base = Root, 4
	fl.release(4)
	require.Equal(t, []int32{3, 4, 5, 6}, freeSlots(d))
	d.node(2).Check, d.node(2).Base = Root, 2
	fl.release(2)
	require.Equal(t, []int32{2, 3, 4, 5, 6}, freeSlots(d))
	require.Equal(t, 5, fl.count())
	require.NoError(t, d.Verify())
}

func TestFreeListAfterExtendsArray(t *testing.T) {
	d := New()
	fl := d.free()
	require.Equal(t, int32(2), fl.after(0))
	require.Equal(t, 3, d.NStates())
	require.Equal(t, int32(3), fl.after(2))
	require.Equal(t, 4, d.NStates())
	require.Equal(t, int32(3), fl.after(2), "existing successor is not re-appended")
}

func TestReleaseZeroesSlot(t *testing.T) {
	d := New()
	d.free().grow(1)
	d.free().take(2)
	*d.node(2) = Node{Base: 9, Check: Root, Son: 3, Terminal: true}
	d.free().release(2)
	n := d.node(2)
	require.Equal(t, int32(0), n.Base)
	require.Equal(t, int32(0), n.Check)
	require.Equal(t, int32(0), n.Son)
	require.False(t, n.Terminal)
}

func TestRelocationMovesSubtree(t *testing.T) {
	d, err := Build(u16("a"))
	require.NoError(t, err)
	a, ok := d.Transition(Root, 'a')
	require.True(t, ok)
	require.Equal(t, int32(99), a) // first base accepted is 2, as base 1 is the root itself

	require.NoError(t, d.Insert(u16("ab")))
	ab, ok := d.Transition(a, 'b')
	require.True(t, ok)
	require.Equal(t, int32(100), ab)

	// 'b' under the root would land on slot 100, which belongs to "ab":
	// the root's children have to move.
	require.NoError(t, d.Insert(u16("b")))
	a2, ok := d.Transition(Root, 'a')
	require.True(t, ok)
	require.Equal(t, int32(101), a2)
	b, ok := d.Transition(Root, 'b')
	require.True(t, ok)
	require.Equal(t, int32(102), b)
	ab2, ok := d.Transition(a2, 'b')
	require.True(t, ok)
	require.Equal(t, ab, ab2, "grandchildren stay in place")
	require.Equal(t, a2, d.node(ab).Check, "grandchildren are re-parented")
	require.Equal(t, int32(0), d.node(a).Check, "vacated slot is free")

	require.Equal(t, WordPrefix, d.Lookup(u16("a")))
	require.Equal(t, Word, d.Lookup(u16("ab")))
	require.Equal(t, Word, d.Lookup(u16("b")))
	require.NoError(t, d.Verify())

	stats := d.Stats()
	require.Equal(t, 4, stats.UsedSlots)
	require.Equal(t, 3, stats.Words)
	require.Equal(t, 103, stats.TotalSlots)
	require.Equal(t, stats.TotalSlots-stats.UsedSlots-1, stats.FreeSlots)
}
