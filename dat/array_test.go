package dat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayGrowth(t *testing.T) {
	a := NewArray[int32](0)
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())

	require.Equal(t, 0, a.Append(2))
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2+0+32, a.Cap())

	*a.At(1) = 7
	require.Equal(t, 2, a.Append(32)) // reaches capacity 34
	require.Equal(t, 34, a.Len())
	require.Equal(t, 34+34*3/8+32, a.Cap())
	require.Equal(t, int32(7), *a.At(1), "elements survive reallocation")
}

func TestArrayAppendZeroes(t *testing.T) {
	a := NewArray[int32](4)
	*a.At(3) = 9
	a.n = 3 // simulate a truncated array with stale storage
	a.Append(1)
	require.Equal(t, int32(0), *a.At(3))
}

func TestArrayOutOfRange(t *testing.T) {
	a := NewArray[int32](3)
	require.Panics(t, func() { a.At(-1) })
	require.Panics(t, func() { a.At(3) })
	require.NotPanics(t, func() { a.At(2) })
}

func TestArrayReset(t *testing.T) {
	a := NewArray[int32](5)
	*a.At(4) = 1
	capacity := a.Cap()
	a.Reset()
	require.Equal(t, 0, a.Len())
	require.Equal(t, capacity, a.Cap())
	a.Append(5)
	require.Equal(t, int32(0), *a.At(4))
}
