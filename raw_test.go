package vector

import (
	"fmt"
	"testing"
	"unsafe"
)

func TestNewRawBuffer(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{"empty", 0},
		{"single slot", 1},
		{"many slots", 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewRawBuffer[int64](tt.capacity)
			if b.Cap() != tt.capacity {
				t.Errorf("NewRawBuffer(%d) capacity = %d, want %d", tt.capacity, b.Cap(), tt.capacity)
			}
			if tt.capacity == 0 && b.slots != nil {
				t.Error("NewRawBuffer(0) should not allocate")
			}
			if b.SizeBytes() != tt.capacity*8 {
				t.Errorf("SizeBytes = %d, want %d", b.SizeBytes(), tt.capacity*8)
			}
		})
	}
}

func TestNewRawBufferNegative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for negative capacity")
		}
	}()
	NewRawBuffer[int](-1)
}

func TestRawBufferSlot(t *testing.T) {
	b := NewRawBuffer[int](4)

	for i := 0; i < b.Cap(); i++ {
		*b.Slot(i) = i * 10
	}
	for i := 0; i < b.Cap(); i++ {
		if *b.Slot(i) != i*10 {
			t.Errorf("Slot(%d) = %d, want %d", i, *b.Slot(i), i*10)
		}
	}

	// Slots are contiguous
	stride := uintptr(unsafe.Pointer(b.Slot(1))) - uintptr(unsafe.Pointer(b.Slot(0)))
	if stride != unsafe.Sizeof(int(0)) {
		t.Errorf("slot stride = %d, want %d", stride, unsafe.Sizeof(int(0)))
	}

	for _, i := range []int{-1, 4, 100} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Slot(%d) should panic", i)
				}
			}()
			b.Slot(i)
		}()
	}
}

func TestRawBufferSlots(t *testing.T) {
	b := NewRawBuffer[int](4)

	// The one-past-end bound is a valid range end
	end := b.Slots(4, 4)
	if len(end) != 0 || cap(end) != 0 {
		t.Errorf("Slots(4, 4) = len %d cap %d, want empty", len(end), cap(end))
	}

	mid := b.Slots(1, 3)
	if len(mid) != 2 || cap(mid) != 2 {
		t.Errorf("Slots(1, 3) = len %d cap %d, want 2/2", len(mid), cap(mid))
	}
	mid[0] = 7
	if *b.Slot(1) != 7 {
		t.Error("Slots should alias the buffer")
	}

	bad := [][2]int{{-1, 2}, {3, 2}, {0, 5}}
	for _, r := range bad {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Slots(%d, %d) should panic", r[0], r[1])
				}
			}()
			b.Slots(r[0], r[1])
		}()
	}

	empty := NewRawBuffer[int](0)
	if s := empty.Slots(0, 0); len(s) != 0 {
		t.Errorf("empty Slots(0, 0) length = %d, want 0", len(s))
	}
}

func TestRawBufferSwap(t *testing.T) {
	a := NewRawBuffer[string](2)
	b := NewRawBuffer[string](5)
	*a.Slot(0) = "a"
	*b.Slot(0) = "b"

	a.Swap(b)
	if a.Cap() != 5 || b.Cap() != 2 {
		t.Errorf("after Swap capacities = %d, %d, want 5, 2", a.Cap(), b.Cap())
	}
	if *a.Slot(0) != "b" || *b.Slot(0) != "a" {
		t.Error("Swap did not exchange allocations")
	}
}

func TestRawBufferMoveFrom(t *testing.T) {
	src := NewRawBuffer[int](3)
	*src.Slot(2) = 42
	addr := src.Slot(0)

	dst := NewRawBuffer[int](1)
	dst.MoveFrom(src)

	if dst.Cap() != 3 || dst.Slot(0) != addr || *dst.Slot(2) != 42 {
		t.Error("MoveFrom did not transfer the allocation")
	}
	if src.Cap() != 0 || src.slots != nil {
		t.Errorf("source capacity after MoveFrom = %d, want 0", src.Cap())
	}

	dst.MoveFrom(dst)
	if dst.Cap() != 3 {
		t.Error("MoveFrom self should be a no-op")
	}
}

func TestRawBufferRelease(t *testing.T) {
	b := NewRawBuffer[*int](8)
	x := 1
	*b.Slot(0) = &x

	b.Release()
	if b.Cap() != 0 {
		t.Errorf("Cap after Release = %d, want 0", b.Cap())
	}
	if b.SizeBytes() != 0 {
		t.Errorf("SizeBytes after Release = %d, want 0", b.SizeBytes())
	}
}

func BenchmarkRawBuffer(b *testing.B) {
	sizes := []int{16, 1024, 65536}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("New-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewRawBuffer[int](size)
			}
		})
	}
}
