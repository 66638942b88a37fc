package vector

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned by the checked accessors.
var ErrIndexOutOfRange = errors.New("vector: index out of range")

// Vector is a growable array of T stored in a single contiguous RawBuffer.
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are vacant.
//
// The zero value is an empty vector ready to use. A Vector must not be copied
// by value: use Clone for a copy and Take or MoveAssign for a transfer.
// Not goroutine-safe.
type Vector[T any] struct {
	data RawBuffer[T]
	size int

	stats relocationStats
}

type relocationStats struct {
	reallocations int
	moved         int
	copied        int
}

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector holding n zero values, with capacity n.
func NewSized[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	v.data.allocate(n)
	v.size = n
	return v
}

// Take returns a vector that owns src's buffer and elements. src is left empty
// with capacity 0. Relocation counters are not transferred: they start at zero
// on the new vector and src keeps its own.
func Take[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{}
	v.data.MoveFrom(&src.data)
	v.size = src.size
	src.size = 0
	return v
}

// Clone returns an independent copy of v with capacity v.Len().
// If copying an element panics, the partial copy is destroyed and v is unchanged.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{}
	nb := NewRawBuffer[T](v.size)
	uninitializedCopy(nb.Slots(0, v.size), v.live())
	out.data.MoveFrom(nb)
	out.size = v.size
	return out
}

// Assign replaces the contents of v with a copy of src's elements.
//
// When src does not fit into v's capacity, a full copy is built first and then
// swapped in, so a panic while copying leaves v unchanged. That path counts as
// a reallocation and its elements as copied. Otherwise elements are copied in
// place and the capacity is kept.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	if src.size > v.data.Cap() {
		tmp := src.Clone()
		v.swapStorage(tmp)
		v.stats.reallocations++
		v.stats.copied += src.size
		tmp.Release()
		return
	}

	shared := min(src.size, v.size)
	for i := range shared {
		assignCopy(v.data.Slot(i), src.data.Slot(i))
	}
	if src.size < v.size {
		destroyRange(v.data.Slots(src.size, v.size))
	} else {
		uninitializedCopy(v.data.Slots(v.size, src.size), src.data.Slots(v.size, src.size))
	}
	v.size = src.size
}

// MoveAssign transfers src's elements into v. The previous contents of v are
// destroyed and src is left empty. Each vector keeps its own relocation
// counters.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if v == src {
		return
	}
	v.swapStorage(src)
	src.Release()
}

// Swap exchanges the contents of v and other without touching any element.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.swapStorage(other)
}

func (v *Vector[T]) swapStorage(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Release destroys every live element and drops the buffer. The vector stays
// usable as an empty vector.
func (v *Vector[T]) Release() {
	destroyRange(v.live())
	v.size = 0
	v.data.Release()
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the current buffer.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// Empty reports whether v has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at index i. i must be in [0, Len()).
func (v *Vector[T]) At(i int) T {
	return *v.Ref(i)
}

// Ref returns a pointer to the element at index i. i must be in [0, Len()).
// The pointer is invalidated by any operation that reallocates or shifts elements.
func (v *Vector[T]) Ref(i int) *T {
	if debugChecks && uint(i) >= uint(v.size) {
		panic(fmt.Sprintf("vector: index %d out of range [0:%d)", i, v.size))
	}
	return &v.data.slots[i]
}

// Get returns the element at index i, or ErrIndexOutOfRange.
func (v *Vector[T]) Get(i int) (T, error) {
	if uint(i) >= uint(v.size) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, v.size)
	}
	return v.data.slots[i], nil
}

// Set copy-assigns value to the element at index i, or returns ErrIndexOutOfRange.
func (v *Vector[T]) Set(i int, value T) error {
	if uint(i) >= uint(v.size) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, v.size)
	}
	assignCopy(v.data.Slot(i), &value)
	return nil
}

// Front returns a pointer to the first element. v must not be empty.
func (v *Vector[T]) Front() *T {
	v.mustNotBeEmpty()
	return v.data.Slot(0)
}

// Back returns a pointer to the last element. v must not be empty.
func (v *Vector[T]) Back() *T {
	v.mustNotBeEmpty()
	return v.data.Slot(v.size - 1)
}

// PushBack appends a copy of value and returns a pointer to the stored element.
func (v *Vector[T]) PushBack(value T) *T {
	return v.EmplaceBack(func(p *T) { *p = copyOf(&value) })
}

// PushBackMove transfers *src to the end of v, leaving *src as the zero value.
func (v *Vector[T]) PushBackMove(src *T) *T {
	return v.EmplaceBack(func(p *T) { *p = moveOut(src) })
}

// EmplaceBack constructs a new last element in place by calling init on its
// zeroed slot.
func (v *Vector[T]) EmplaceBack(init func(*T)) *T {
	if v.size == v.data.Cap() {
		v.emplaceRealloc(v.size, init)
	} else {
		constructAt(v.data.Slot(v.size), init)
		v.size++
	}
	return v.data.Slot(v.size - 1)
}

// Insert places a copy of value at pos and returns its index. pos must be in
// [0, Len()]; Len() appends.
func (v *Vector[T]) Insert(pos int, value T) int {
	return v.Emplace(pos, func(p *T) { *p = copyOf(&value) })
}

// InsertMove transfers *src into v at pos, leaving *src as the zero value.
func (v *Vector[T]) InsertMove(pos int, src *T) int {
	return v.Emplace(pos, func(p *T) { *p = moveOut(src) })
}

// Emplace constructs a new element at pos by calling init on a zeroed value and
// returns its index. pos must be in [0, Len()].
func (v *Vector[T]) Emplace(pos int, init func(*T)) int {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0:%d]", pos, v.size))
	}
	switch {
	case v.size == v.data.Cap():
		v.emplaceRealloc(pos, init)
	case pos == v.size:
		v.EmplaceBack(init)
	default:
		v.emplaceInPlace(pos, init)
	}
	return pos
}

// emplaceInPlace inserts into spare capacity. The new element is built before
// anything moves, so a panicking init leaves v unchanged. A panicking Move
// while shifting truncates v to the elements still in order in front of the
// gap and destroys the rest.
func (v *Vector[T]) emplaceInPlace(pos int, init func(*T)) {
	var tmp T
	constructAt(&tmp, init)
	placed, shifted := false, false
	defer func() {
		if placed {
			return
		}
		destroy(&tmp)
		if shifted {
			destroyRange(v.data.Slots(pos+1, v.size+1))
			v.size = pos
		}
	}()
	v.shiftRight(pos)
	shifted = true
	*v.data.Slot(pos) = moveOut(&tmp)
	placed = true
	v.size++
}

// Erase destroys the element at pos, shifts the following elements left and
// returns pos, which now indexes the next element or equals Len().
// If an element's Move panics during the shift, the elements from the gap on
// are destroyed and v keeps only those in front of it.
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0:%d)", pos, v.size))
	}
	destroy(v.data.Slot(pos))
	v.shiftLeft(pos)
	v.size--
	return pos
}

// PopBack destroys the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	destroy(v.data.Slot(v.size - 1))
	v.size--
}

// Reserve grows the buffer to exactly n slots if n exceeds Cap().
// It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.data.Cap() {
		return
	}
	nb := NewRawBuffer[T](n)
	moved := v.relocate(nb, v.size, 0)
	v.adopt(nb, moved)
}

// Resize sets the length to n, destroying trailing elements or appending zero
// values. Growing reserves exactly n slots.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative length %d", n))
	}
	switch {
	case n < v.size:
		destroyRange(v.data.Slots(n, v.size))
	case n > v.size:
		v.Reserve(n)
		clear(v.data.Slots(v.size, n))
	}
	v.size = n
}

// grownCap is the capacity used when a full buffer needs one more slot.
func (v *Vector[T]) grownCap() int {
	return max(1, 2*v.data.Cap())
}

// emplaceRealloc handles insertion into a full buffer: the new element is built
// in its final slot of a fresh buffer and the existing elements are relocated
// around it. A panic at any point leaves v unchanged.
func (v *Vector[T]) emplaceRealloc(pos int, init func(*T)) {
	nb := NewRawBuffer[T](v.grownCap())
	constructAt(nb.Slot(pos), init)

	committed := false
	defer func() {
		if !committed {
			destroy(nb.Slot(pos))
		}
	}()
	moved := v.relocate(nb, pos, 1)
	committed = true

	v.adopt(nb, moved)
	v.size++
}

// relocate moves or copies the live elements into dst, leaving gap vacant
// slots at pos: [0, pos) goes to [0, pos) and [pos, Len()) to [pos+gap, Len()+gap).
// It reports whether the elements were moved.
func (v *Vector[T]) relocate(dst *RawBuffer[T], pos, gap int) bool {
	if relocatesByMove[T]() {
		uninitializedMove(dst.Slots(0, pos), v.data.Slots(0, pos))
		uninitializedMove(dst.Slots(pos+gap, v.size+gap), v.data.Slots(pos, v.size))
		v.stats.moved += v.size
		return true
	}

	uninitializedCopy(dst.Slots(0, pos), v.data.Slots(0, pos))
	ok := false
	defer func() {
		if !ok {
			destroyRange(dst.Slots(0, pos))
		}
	}()
	uninitializedCopy(dst.Slots(pos+gap, v.size+gap), v.data.Slots(pos, v.size))
	ok = true
	v.stats.copied += v.size
	return false
}

// adopt installs nb as v's buffer and tears down the old one. Copied-from
// elements are still live in the old buffer and get destroyed; moved-from slots
// are already vacant.
func (v *Vector[T]) adopt(nb *RawBuffer[T], moved bool) {
	v.data.Swap(nb)
	if !moved {
		destroyRange(nb.Slots(0, v.size))
	}
	nb.Release()
	v.stats.reallocations++
}

// shiftRight opens a vacant slot at pos by moving [pos, Len()) one slot right.
// Requires Len() < Cap(). If a Move panics, v is truncated to the prefix in
// front of the gap.
func (v *Vector[T]) shiftRight(pos int) {
	s := v.data.Slots(0, v.size+1)
	if !hasCustomMove[T]() {
		copy(s[pos+1:], s[pos:v.size])
		clear(s[pos : pos+1])
		return
	}
	// On a panicking Move, s[j] is vacant: keep [0, j) and drop what was
	// already shifted past it.
	j := v.size
	defer func() {
		if j > pos {
			destroyRange(s[j+1:])
			v.size = j
		}
	}()
	for ; j > pos; j-- {
		s[j] = moveOut(&s[j-1])
	}
}

// shiftLeft closes the vacant slot at pos by moving (pos, Len()) one slot left.
// If a Move panics, v is truncated to the prefix in front of the gap.
func (v *Vector[T]) shiftLeft(pos int) {
	s := v.data.Slots(0, v.size)
	if !hasCustomMove[T]() {
		copy(s[pos:], s[pos+1:])
		clear(s[v.size-1:])
		return
	}
	j := pos
	defer func() {
		if j < v.size-1 {
			destroyRange(s[j+1:])
			v.size = j
		}
	}()
	for ; j < v.size-1; j++ {
		s[j] = moveOut(&s[j+1])
	}
}

// assignCopy copy-assigns *src over the live element *dst. The copy is made
// before the old value is destroyed, so a panicking Clone leaves *dst intact.
func assignCopy[T any](dst, src *T) {
	nv := copyOf(src)
	destroy(dst)
	*dst = nv
}

func (v *Vector[T]) live() []T {
	return v.data.Slots(0, v.size)
}

func (v *Vector[T]) mustNotBeEmpty() {
	if v.size == 0 {
		panic("vector: access to element of empty vector")
	}
}
