package vector

import "reflect"

// Element types opt into lifetime hooks by implementing the interfaces below,
// on either T or *T. For pointer element types the methods are looked up on
// the pointee's pointer type, so Vector[*Node] uses the methods of *Node; nil
// elements skip every hook. Types implementing none of them are copied and
// moved as plain Go values and need no destruction.

// Cloner is implemented by element types whose copy must not share state with
// the original, e.g. types holding slices or maps.
type Cloner[T any] interface {
	Clone() T
}

// Mover is implemented by element types with a custom transfer. Move returns the
// value to store in the destination slot; the source slot is vacated afterwards
// without being destroyed.
type Mover[T any] interface {
	Move() T
}

// NothrowMover marks a Mover whose Move never panics.
type NothrowMover interface {
	NothrowMove()
}

// MoveOnly marks element types that cannot be copied.
type MoveOnly interface {
	MoveOnly()
}

// Destroyer is implemented by element types that release resources when their
// lifetime inside a vector ends.
type Destroyer interface {
	Destroy()
}

// relocatesByMove reports whether relocation into new storage should transfer
// elements rather than copy them. Copying keeps the old buffer intact if an
// element panics halfway through, so it is used unless a move cannot fail or
// a copy is impossible.
func relocatesByMove[T any]() bool {
	if !implements[Mover[T], T]() {
		return true
	}
	return implements[NothrowMover, T]() || implements[MoveOnly, T]()
}

// hasCustomMove reports whether T defines its own transfer. Without one, ranges
// can be shifted with copy().
func hasCustomMove[T any]() bool {
	return implements[Mover[T], T]()
}

func hasDestroy[T any]() bool {
	return implements[Destroyer, T]()
}

// implements reports whether *T or T has the method set of I. The second form
// covers pointer element types such as Vector[*Node].
func implements[I, T any]() bool {
	if _, ok := any((*T)(nil)).(I); ok {
		return true
	}
	var zero T
	_, ok := any(zero).(I)
	return ok
}

// hook returns the implementation of I for the element in *p, looking at *T
// first and at the element itself second. A nil element has no hooks.
func hook[I, T any](p *T) (I, bool) {
	if h, ok := any(p).(I); ok {
		return h, true
	}
	v := any(*p)
	if h, ok := v.(I); ok && !isNil(v) {
		return h, true
	}
	var none I
	return none, false
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// copyOf copy-constructs a new value from *p.
func copyOf[T any](p *T) T {
	if c, ok := hook[Cloner[T]](p); ok {
		return c.Clone()
	}
	if _, ok := hook[MoveOnly](p); ok {
		panic("vector: copy of move-only element")
	}
	return *p
}

// moveOut transfers the value out of *p and leaves the slot vacant.
func moveOut[T any](p *T) T {
	var v T
	if m, ok := hook[Mover[T]](p); ok {
		v = m.Move()
	} else {
		v = *p
	}
	var zero T
	*p = zero
	return v
}

// destroy ends the lifetime of *p and leaves the slot vacant.
func destroy[T any](p *T) {
	if d, ok := hook[Destroyer](p); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

func destroyRange[T any](s []T) {
	if hasDestroy[T]() {
		for i := range s {
			destroy(&s[i])
		}
		return
	}
	clear(s)
}

// constructAt runs init on a vacant slot. If init panics the slot is vacated
// again before the panic propagates.
func constructAt[T any](p *T, init func(*T)) {
	ok := false
	defer func() {
		if !ok {
			var zero T
			*p = zero
		}
	}()
	init(p)
	ok = true
}

// uninitializedCopy copy-constructs src into the vacant slots of dst. If a copy
// panics, the elements already constructed in dst are destroyed.
func uninitializedCopy[T any](dst, src []T) {
	i := 0
	defer func() {
		if i != len(src) {
			destroyRange(dst[:i])
		}
	}()
	for i < len(src) {
		dst[i] = copyOf(&src[i])
		i++
	}
}

// uninitializedMove transfers src into the vacant slots of dst, vacating src.
func uninitializedMove[T any](dst, src []T) {
	if !hasCustomMove[T]() {
		copy(dst, src)
		clear(src)
		return
	}
	for i := range src {
		dst[i] = moveOut(&src[i])
	}
}
