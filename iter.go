package vector

import "iter"

// Slice returns the live elements as a slice sharing v's buffer. Its capacity
// is clipped to Len(), so appending to it never writes into v's vacant slots.
// The slice is invalidated by any operation that reallocates or shifts elements.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// All returns an iterator over index-value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.slots[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}
