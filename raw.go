package vector

import (
	"fmt"
	"unsafe"
)

// noCopy may be embedded into structs which must not be copied after first use.
// go vet's copylocks checker reports by-value copies of such structs.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawBuffer owns storage for exactly Cap() values of T.
//
// A RawBuffer never treats its slots as live elements: it does not construct,
// copy or destroy anything it holds. That is the job of its owner.
// Slots the owner considers vacant are expected to hold the zero value of T.
type RawBuffer[T any] struct {
	_     noCopy
	slots []T // len(slots) == capacity
}

// NewRawBuffer reserves n slots. For n == 0 nothing is allocated.
// Panics if n < 0.
func NewRawBuffer[T any](n int) *RawBuffer[T] {
	b := &RawBuffer[T]{}
	b.allocate(n)
	return b
}

func (b *RawBuffer[T]) allocate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative buffer capacity %d", n))
	}
	if n == 0 {
		b.slots = nil
		return
	}
	b.slots = make([]T, n)
}

// Cap returns the number of slots in the buffer.
func (b *RawBuffer[T]) Cap() int {
	return len(b.slots)
}

// Slot returns the address of slot i. Panics unless 0 <= i < Cap().
func (b *RawBuffer[T]) Slot(i int) *T {
	if uint(i) >= uint(len(b.slots)) {
		panic(fmt.Sprintf("vector: slot %d out of range [0:%d)", i, len(b.slots)))
	}
	return &b.slots[i]
}

// Slots returns the slot range [from, to). to may equal Cap(), the one-past-end
// bound. The result's capacity is clipped to its length.
func (b *RawBuffer[T]) Slots(from, to int) []T {
	if from < 0 || from > to || to > len(b.slots) {
		panic(fmt.Sprintf("vector: slot range [%d:%d] out of range [0:%d]", from, to, len(b.slots)))
	}
	return b.slots[from:to:to]
}

// Swap exchanges the allocations of b and other.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveFrom releases b's allocation and takes ownership of src's.
// src is left empty with capacity 0.
func (b *RawBuffer[T]) MoveFrom(src *RawBuffer[T]) {
	if b == src {
		return
	}
	b.slots = src.slots
	src.slots = nil
}

// Release drops the allocation without touching its contents.
func (b *RawBuffer[T]) Release() {
	b.slots = nil
}

// SizeBytes returns the size of the allocation in bytes.
func (b *RawBuffer[T]) SizeBytes() int {
	return len(b.slots) * elemSize[T]()
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
