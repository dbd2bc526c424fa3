package adapt

import (
	"golang.org/x/exp/constraints"

	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Number is the element type of a counting sequence.
type Number interface {
	constraints.Integer | constraints.Float
}

// Counting is the sequence start, start+1, start+2, ... computed from the
// position. It has no storage.
type Counting[T Number] struct {
	cursor.Readable
	start T
	pos   int
}

// NewCounting returns a counting sequence beginning at start.
func NewCounting[T Number](start T) Counting[T] {
	return Counting[T]{start: start}
}

// Deref returns the value at the current position.
func (c Counting[T]) Deref() T { return c.start + T(c.pos) }

// DerefAt returns the value n positions away.
func (c Counting[T]) DerefAt(n int) T { return c.start + T(c.pos+n) }

// Advance returns a copy of c moved n positions.
func (c Counting[T]) Advance(n int) Counting[T] {
	c.pos += n
	return c
}

// Position returns the sequence position.
func (c Counting[T]) Position() int { return c.pos }

// Backend returns backend.Any.
func (Counting[T]) Backend() backend.Tag { return backend.Any{} }

// Constant repeats one stored value at every position.
type Constant[T any] struct {
	cursor.Readable
	value T
	pos   int
}

// NewConstant returns a constant sequence of v.
func NewConstant[T any](v T) Constant[T] {
	return Constant[T]{value: v}
}

// Deref returns the stored value.
func (c Constant[T]) Deref() T { return c.value }

// DerefAt returns the stored value.
func (c Constant[T]) DerefAt(int) T { return c.value }

// Advance returns a copy of c moved n positions.
func (c Constant[T]) Advance(n int) Constant[T] {
	c.pos += n
	return c
}

// Position returns the sequence position.
func (c Constant[T]) Position() int { return c.pos }

// Backend returns backend.Any.
func (Constant[T]) Backend() backend.Tag { return backend.Any{} }
