package dat

// Array is a growable array with an explicit capacity.
//
// Capacity is tracked separately from the Go slice so that it follows a fixed
// growth rule: whenever an append reaches the current capacity, the new
// capacity is newLen + 3*newLen/8 + 32. Serialized tries record this
// capacity, which keeps the byte layout independent of the Go runtime's
// slice growth policy.
type Array[T any] struct {
	n    int // logical length
	data []T // len(data) is the capacity
}

// NewArray creates an array with n zero-valued elements.
func NewArray[T any](n int) *Array[T] {
	a := &Array[T]{}
	if n > 0 {
		a.Append(n)
	}
	return a
}

// Len returns the logical length.
func (a *Array[T]) Len() int { return a.n }

// Cap returns the allocated capacity.
func (a *Array[T]) Cap() int { return len(a.data) }

// Append extends the array by n zero-valued elements and returns the
// index of the first of them, i.e. the length before the append.
func (a *Array[T]) Append(n int) int {
	assert(n >= 0, "append of negative element count")
	index := a.n
	a.n += n
	if a.n >= len(a.data) {
		capacity := a.n + 3*a.n/8 + 32
		data := make([]T, capacity)
		copy(data, a.data[:index])
		a.data = data
		return index
	}
	var zero T
	for i := index; i < a.n; i++ {
		a.data[i] = zero
	}
	return index
}

// At returns a pointer to element i. Out of range access panics.
func (a *Array[T]) At(i int) *T {
	if i < 0 || i >= a.n {
		panic("array index out of range")
	}
	return &a.data[i]
}

// Items returns the elements [0, Len()). The slice aliases the array.
func (a *Array[T]) Items() []T {
	return a.data[:a.n]
}

// Reset truncates the array to length 0, keeping its storage.
func (a *Array[T]) Reset() {
	var zero T
	for i := range a.data[:a.n] {
		a.data[i] = zero
	}
	a.n = 0
}

// withCapacity creates an array of length n backed by storage of exactly
// capacity elements. Used when restoring serialized tries.
func withCapacity[T any](n, capacity int) *Array[T] {
	assert(n <= capacity, "array length exceeds capacity")
	return &Array[T]{n: n, data: make([]T, capacity)}
}
