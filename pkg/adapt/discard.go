package adapt

import (
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Discard is a sink that drops every value written through it. Only its
// position is tracked.
type Discard[T any] struct {
	cursor.Sink
	pos int
}

// NewDiscard returns a discard sink at position 0.
func NewDiscard[T any]() Discard[T] {
	return Discard[T]{}
}

// Deref returns a copy of d.
func (d Discard[T]) Deref() Discard[T] { return cursor.Vend(d) }

// DerefAt returns a copy of d advanced n positions.
func (d Discard[T]) DerefAt(n int) Discard[T] { return cursor.VendAt(d, n) }

// Advance returns a copy of d moved n positions.
func (d Discard[T]) Advance(n int) Discard[T] {
	d.pos += n
	return d
}

// Set drops v.
func (Discard[T]) Set(T) {}

// Position returns the sink position.
func (d Discard[T]) Position() int { return d.pos }

// Backend returns backend.Any.
func (Discard[T]) Backend() backend.Tag { return backend.Any{} }
