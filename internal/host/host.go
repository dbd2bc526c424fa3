// Package host implements the host backend: cursors over ordinary Go slices
// whose references alias the slice elements directly.
package host

import (
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Ref is a direct reference to a host element.
type Ref[T any] struct {
	p *T
}

// Get returns the referenced element.
func (r Ref[T]) Get() T { return *r.p }

// Set overwrites the referenced element.
func (r Ref[T]) Set(v T) { *r.p = v }

// Addr returns the address of the referenced element.
func (r Ref[T]) Addr() *T { return r.p }

// Pointer is a contiguous cursor over a host slice.
type Pointer[T any] struct {
	cursor.Readable
	data []T
	pos  int
}

// New returns a Pointer at the first element of data. The slice is shared,
// not copied.
func New[T any](data []T) Pointer[T] {
	return Pointer[T]{data: data}
}

// Deref returns a reference to the current element.
func (p Pointer[T]) Deref() Ref[T] {
	return Ref[T]{p: &p.data[p.pos]}
}

// DerefAt returns a reference to the element n positions from the current one.
// Out-of-range positions panic like slice indexing.
func (p Pointer[T]) DerefAt(n int) Ref[T] {
	return Ref[T]{p: &p.data[p.pos+n]}
}

// Advance returns a copy of p moved n positions.
func (p Pointer[T]) Advance(n int) Pointer[T] {
	p.pos += n
	return p
}

// Position returns the index of the current element.
func (p Pointer[T]) Position() int { return p.pos }

// Len returns the length of the underlying slice.
func (p Pointer[T]) Len() int { return len(p.data) }

// Backend returns backend.Host.
func (Pointer[T]) Backend() backend.Tag { return backend.Host{} }
