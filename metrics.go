package vector

// ElemSize returns the size in bytes of one slot.
func (v *Vector[T]) ElemSize() int {
	return elemSize[T]()
}

// SizeInUse returns the number of bytes occupied by live elements.
// Memory referenced by the elements themselves is not counted.
func (v *Vector[T]) SizeInUse() int {
	return v.size * elemSize[T]()
}

// CapacityBytes returns the size of the current buffer in bytes.
func (v *Vector[T]) CapacityBytes() int {
	return v.data.SizeBytes()
}

// Utilization returns the ratio of live slots to total slots (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	c := v.data.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Reallocations returns how many times v has replaced its buffer.
func (v *Vector[T]) Reallocations() int {
	return v.stats.reallocations
}

// MovedElements returns how many elements were relocated by transfer.
func (v *Vector[T]) MovedElements() int {
	return v.stats.moved
}

// CopiedElements returns how many elements were relocated by copy, including
// those copied by an Assign that had to reallocate.
func (v *Vector[T]) CopiedElements() int {
	return v.stats.copied
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Len:            v.Len(),
		Cap:            v.Cap(),
		ElemSize:       v.ElemSize(),
		SizeInUse:      v.SizeInUse(),
		CapacityBytes:  v.CapacityBytes(),
		Utilization:    v.Utilization(),
		Reallocations:  v.Reallocations(),
		MovedElements:  v.MovedElements(),
		CopiedElements: v.CopiedElements(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Len            int     // Live elements
	Cap            int     // Slots in the current buffer
	ElemSize       int     // Bytes per slot
	SizeInUse      int     // Bytes occupied by live elements
	CapacityBytes  int     // Bytes in the current buffer
	Utilization    float64 // Ratio of live to total slots (0.0-1.0)
	Reallocations  int     // Buffers replaced over the vector's lifetime
	MovedElements  int     // Elements relocated by transfer
	CopiedElements int     // Elements relocated by copy
}
