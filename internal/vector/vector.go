// Package vector implements the vector backend: memory laid out in fixed-width
// lanes so that kernels can process Width elements at a time. Cursors address
// single elements by lane and slot.
package vector

import (
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Width is the number of elements per lane.
const Width = 8

// Buffer stores n elements in ceil(n/Width) lanes. The tail of the last lane
// is padding and is never addressed by cursors.
type Buffer[T any] struct {
	lanes [][Width]T
	n     int
}

// NewBuffer allocates a zeroed buffer of n elements.
func NewBuffer[T any](n int) *Buffer[T] {
	return &Buffer[T]{lanes: make([][Width]T, (n+Width-1)/Width), n: n}
}

// FromSlice allocates a buffer holding a copy of vals.
func FromSlice[T any](vals []T) *Buffer[T] {
	b := NewBuffer[T](len(vals))
	for i, v := range vals {
		b.lanes[i/Width][i%Width] = v
	}
	return b
}

// Len returns the number of addressable elements.
func (b *Buffer[T]) Len() int { return b.n }

// Lanes returns the number of lanes.
func (b *Buffer[T]) Lanes() int { return len(b.lanes) }

// Lane returns lane i for whole-lane kernels.
func (b *Buffer[T]) Lane(i int) *[Width]T { return &b.lanes[i] }

// Begin returns a cursor at the first element.
func (b *Buffer[T]) Begin() Pointer[T] {
	return Pointer[T]{buf: b}
}

// Snapshot copies the addressable elements out.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, b.n)
	for i := range out {
		out[i] = b.lanes[i/Width][i%Width]
	}
	return out
}

// Ref references one slot of a lane.
type Ref[T any] struct {
	lane *[Width]T
	slot int
}

// Get returns the referenced element.
func (r Ref[T]) Get() T { return r.lane[r.slot] }

// Set overwrites the referenced element.
func (r Ref[T]) Set(v T) { r.lane[r.slot] = v }

// Slot returns the element's position within its lane.
func (r Ref[T]) Slot() int { return r.slot }

// Pointer is a cursor over a lane buffer.
type Pointer[T any] struct {
	cursor.Readable
	buf *Buffer[T]
	pos int
}

// Deref returns a reference to the current element.
func (p Pointer[T]) Deref() Ref[T] { return p.ref(p.pos) }

// DerefAt returns a reference to the element n positions away.
func (p Pointer[T]) DerefAt(n int) Ref[T] { return p.ref(p.pos + n) }

// Advance returns a copy of p moved n positions.
func (p Pointer[T]) Advance(n int) Pointer[T] {
	p.pos += n
	return p
}

// Position returns the index of the current element.
func (p Pointer[T]) Position() int { return p.pos }

// Backend returns backend.Vector.
func (Pointer[T]) Backend() backend.Tag { return backend.Vector{} }

func (p Pointer[T]) ref(i int) Ref[T] {
	if i < 0 || i >= p.buf.n {
		panic("vector: index out of range")
	}
	return Ref[T]{lane: &p.buf.lanes[i/Width], slot: i % Width}
}
