// Package vector implements a growable array with explicit element lifetimes.
//
// # Overview
//
// A Vector keeps its elements in a single contiguous RawBuffer. The buffer is
// split into live slots, which hold constructed elements, and vacant slots,
// which are reserved but hold nothing. Unlike a plain Go slice, the vector
// decides exactly when an element is constructed, copied, transferred and
// destroyed, and it guarantees what happens when one of those steps panics.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	v.PushBack(1)
//	v.PushBack(3)
//	v.Insert(1, 2)   // [1 2 3]
//	v.Erase(0)       // [2 3]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Growth
//
// When an operation needs a slot and the buffer is full, the capacity doubles
// (1, 2, 4, ...). Every live element is relocated into the new buffer in order
// and the old buffer is dropped. Reserve and Resize grow to exactly the
// requested size instead.
//
// # Element Lifetimes
//
// Element types can hook into their lifetime by implementing Cloner, Mover,
// Destroyer, and the NothrowMover and MoveOnly markers:
//
//   - Cloner is used whenever an element is copied (PushBack, Insert, Clone, Assign)
//   - Mover is used whenever an element is transferred (relocation, shifting)
//   - Destroyer runs when a live element is removed or overwritten
//
// Relocation transfers elements when that cannot fail, and copies them
// otherwise, so a panic during growth leaves the vector exactly as it was.
//
// # Error Handling
//
//   - Out-of-range positions passed to Insert or Erase panic
//   - At and Ref check only the buffer bound; build with -tags vectordebug to
//     also check the live range
//   - Get and Set return ErrIndexOutOfRange instead of panicking
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. Concurrent reads are fine as long as
// no mutation is in flight.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//
// The vecprom package exposes the same numbers as Prometheus metrics.
package vector
