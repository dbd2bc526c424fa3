package adapt

import (
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Reverse traverses backwards from end, which points one past the last
// element: position p reads end at offset -1-p.
type Reverse[C cursor.RandomAccess[R], R any] struct {
	end C
	pos int
}

// NewReverse returns a reverse view ending at end.
func NewReverse[C cursor.RandomAccess[R], R any](end C) Reverse[C, R] {
	return Reverse[C, R]{end: end}
}

// ReverseOf returns the reverse view of the length elements starting at begin.
func ReverseOf[C interface {
	cursor.RandomAccess[R]
	cursor.Advancer[C]
}, R any](begin C, length int) Reverse[C, R] {
	return NewReverse[C, R](begin.Advance(length))
}

// Category is inherited from C.
func (Reverse[C, R]) Category() cursor.Category { return categoryOf[C]() }

// Deref reads the mirrored current position.
func (r Reverse[C, R]) Deref() R {
	return cursor.ReadAt[C, R](r.end, -1-r.pos)
}

// DerefAt reads the mirrored position pos+n.
func (r Reverse[C, R]) DerefAt(n int) R {
	return cursor.ReadAt[C, R](r.end, -1-(r.pos+n))
}

// Advance returns a copy of r moved n positions towards the front.
func (r Reverse[C, R]) Advance(n int) Reverse[C, R] {
	r.pos += n
	return r
}

// Position returns the view position.
func (r Reverse[C, R]) Position() int { return r.pos }

// Backend returns the backend of the underlying cursor.
func (r Reverse[C, R]) Backend() backend.Tag { return backend.Of(r.end) }

// ReverseSink is the Reverse view of an output.
type ReverseSink[C cursor.Output[C, T], T any] struct {
	cursor.Sink
	end C
	pos int
}

// NewReverseSink returns a reverse view of an output, with end one past the
// last slot.
func NewReverseSink[C cursor.Output[C, T], T any](end C) ReverseSink[C, T] {
	return ReverseSink[C, T]{end: end}
}

// ReverseSinkOf returns the reverse view of the length slots starting at
// begin.
func ReverseSinkOf[C cursor.Output[C, T], T any](begin C, length int) ReverseSink[C, T] {
	return NewReverseSink[C, T](begin.Advance(length))
}

func (r ReverseSink[C, T]) Deref() ReverseSink[C, T]        { return cursor.Vend(r) }
func (r ReverseSink[C, T]) DerefAt(n int) ReverseSink[C, T] { return cursor.VendAt(r, n) }

// Set writes v to the mirrored slot.
func (r ReverseSink[C, T]) Set(v T) {
	cursor.ReadAt[C, C](r.end, -1-r.pos).Set(v)
}

func (r ReverseSink[C, T]) Advance(n int) ReverseSink[C, T] {
	r.pos += n
	return r
}

func (r ReverseSink[C, T]) Position() int { return r.pos }

func (r ReverseSink[C, T]) Backend() backend.Tag { return backend.Of(r.end) }
