package adapt

import (
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Tagged declares base as belonging to backend B without changing how it is
// read. Reads route straight to base.
type Tagged[C cursor.RandomAccess[R], R any, B backend.Tag] struct {
	base C
	pos  int
}

// Retag returns base tagged with backend B.
func Retag[B backend.Tag, C cursor.RandomAccess[R], R any](base C) Tagged[C, R, B] {
	return Tagged[C, R, B]{base: base}
}

// Category is inherited from C.
func (Tagged[C, R, B]) Category() cursor.Category { return categoryOf[C]() }

// Deref reads base at the current position.
func (t Tagged[C, R, B]) Deref() R {
	return cursor.ReadAt[C, R](t.base, t.pos)
}

// DerefAt reads base n positions away.
func (t Tagged[C, R, B]) DerefAt(n int) R {
	return cursor.ReadAt[C, R](t.base, t.pos+n)
}

// Advance returns a copy of t moved n positions.
func (t Tagged[C, R, B]) Advance(n int) Tagged[C, R, B] {
	t.pos += n
	return t
}

// Position returns the view position.
func (t Tagged[C, R, B]) Position() int { return t.pos }

// Backend returns B.
func (Tagged[C, R, B]) Backend() backend.Tag {
	var b B
	return b
}

// TaggedSink is the Tagged view of an output.
type TaggedSink[C cursor.Output[C, T], T any, B backend.Tag] struct {
	cursor.Sink
	base C
	pos  int
}

// RetagSink returns base declared as living on backend B.
func RetagSink[B backend.Tag, C cursor.Output[C, T], T any](base C) TaggedSink[C, T, B] {
	return TaggedSink[C, T, B]{base: base}
}

func (t TaggedSink[C, T, B]) Deref() TaggedSink[C, T, B]        { return cursor.Vend(t) }
func (t TaggedSink[C, T, B]) DerefAt(n int) TaggedSink[C, T, B] { return cursor.VendAt(t, n) }

// Set writes v to base at the current position.
func (t TaggedSink[C, T, B]) Set(v T) {
	cursor.ReadAt[C, C](t.base, t.pos).Set(v)
}

func (t TaggedSink[C, T, B]) Advance(n int) TaggedSink[C, T, B] {
	t.pos += n
	return t
}

func (t TaggedSink[C, T, B]) Position() int { return t.pos }

func (TaggedSink[C, T, B]) Backend() backend.Tag {
	var b B
	return b
}
