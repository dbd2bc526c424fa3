package adapt

import (
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Offset views base through a fixed addressing scheme: position p maps to
// base position start + p*stride. Offset reads yield base references; use
// OffsetSink over an output.
type Offset[C cursor.RandomAccess[R], R any] struct {
	base   C
	start  int
	stride int
	pos    int
}

// NewOffset returns an offset view of base.
func NewOffset[C cursor.RandomAccess[R], R any](base C, start, stride int) Offset[C, R] {
	return Offset[C, R]{base: base, start: start, stride: stride}
}

// Contiguous returns the identity view of base: start 0, stride 1.
func Contiguous[C cursor.RandomAccess[R], R any](base C) Offset[C, R] {
	return NewOffset[C, R](base, 0, 1)
}

// Category is inherited from C.
func (Offset[C, R]) Category() cursor.Category { return categoryOf[C]() }

// Deref reads base at the mapped current position.
func (o Offset[C, R]) Deref() R {
	return cursor.ReadAt[C, R](o.base, o.index(o.pos))
}

// DerefAt reads base at the mapped position pos+n.
func (o Offset[C, R]) DerefAt(n int) R {
	return cursor.ReadAt[C, R](o.base, o.index(o.pos+n))
}

// Advance returns a copy of o moved n positions.
func (o Offset[C, R]) Advance(n int) Offset[C, R] {
	o.pos += n
	return o
}

// Position returns the view position.
func (o Offset[C, R]) Position() int { return o.pos }

// Backend returns the backend of the underlying cursor.
func (o Offset[C, R]) Backend() backend.Tag { return backend.Of(o.base) }

func (o Offset[C, R]) index(p int) int {
	return o.start + p*o.stride
}

// OffsetSink is the Offset view of an output. Reading it yields the view
// itself; assigning through it writes base at the mapped position.
type OffsetSink[C cursor.Output[C, T], T any] struct {
	cursor.Sink
	base   C
	start  int
	stride int
	pos    int
}

// NewOffsetSink returns an offset view of the output base.
func NewOffsetSink[C cursor.Output[C, T], T any](base C, start, stride int) OffsetSink[C, T] {
	return OffsetSink[C, T]{base: base, start: start, stride: stride}
}

func (o OffsetSink[C, T]) Deref() OffsetSink[C, T]        { return cursor.Vend(o) }
func (o OffsetSink[C, T]) DerefAt(n int) OffsetSink[C, T] { return cursor.VendAt(o, n) }

// Set writes v to base at the mapped current position.
func (o OffsetSink[C, T]) Set(v T) {
	cursor.ReadAt[C, C](o.base, o.start+o.pos*o.stride).Set(v)
}

// Advance returns a copy of o moved n positions.
func (o OffsetSink[C, T]) Advance(n int) OffsetSink[C, T] {
	o.pos += n
	return o
}

// Position returns the view position.
func (o OffsetSink[C, T]) Position() int { return o.pos }

// Backend returns the backend of the underlying output.
func (o OffsetSink[C, T]) Backend() backend.Tag { return backend.Of(o.base) }
