package adapt

import (
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Transform applies fn to every read of base. Results are values: the
// transformed element is not stored anywhere addressable.
type Transform[C cursor.RandomAccess[R], R, V any] struct {
	cursor.Readable
	base C
	fn   func(R) V
	pos  int
}

// NewTransform returns a view of base through fn. fn must be pure.
func NewTransform[C cursor.RandomAccess[R], R, V any](base C, fn func(R) V) Transform[C, R, V] {
	return Transform[C, R, V]{base: base, fn: fn}
}

// Values returns a view of base that loads each referenced element by value.
func Values[C cursor.RandomAccess[R], R cursor.Getter[V], V any](base C) Transform[C, R, V] {
	return NewTransform[C, R, V](base, func(r R) V { return r.Get() })
}

// Deref returns fn applied to the current element of base.
func (t Transform[C, R, V]) Deref() V {
	return t.fn(cursor.ReadAt[C, R](t.base, t.pos))
}

// DerefAt returns fn applied to the element n positions away.
func (t Transform[C, R, V]) DerefAt(n int) V {
	return t.fn(cursor.ReadAt[C, R](t.base, t.pos+n))
}

// Advance returns a copy of t moved n positions.
func (t Transform[C, R, V]) Advance(n int) Transform[C, R, V] {
	t.pos += n
	return t
}

// Position returns the view position.
func (t Transform[C, R, V]) Position() int { return t.pos }

// Backend returns the backend of the underlying cursor.
func (t Transform[C, R, V]) Backend() backend.Tag { return backend.Of(t.base) }
