package multicore

import (
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Ref is a reference to one element of a shared Buffer. Get and Set lock the
// element's stripe.
type Ref[T any] struct {
	buf *Buffer[T]
	i   int
}

// Get returns the referenced element.
func (r Ref[T]) Get() T {
	mu := r.buf.stripe(r.i)
	mu.RLock()
	defer mu.RUnlock()
	return r.buf.data[r.i]
}

// Set overwrites the referenced element.
func (r Ref[T]) Set(v T) {
	mu := r.buf.stripe(r.i)
	mu.Lock()
	r.buf.data[r.i] = v
	mu.Unlock()
}

// Index returns the element's index within its buffer.
func (r Ref[T]) Index() int { return r.i }

// Pointer is a cursor over a shared Buffer.
type Pointer[T any] struct {
	cursor.Readable
	buf *Buffer[T]
	pos int
}

// Deref returns a reference to the current element.
func (p Pointer[T]) Deref() Ref[T] {
	return p.ref(p.pos)
}

// DerefAt returns a reference to the element n positions away.
func (p Pointer[T]) DerefAt(n int) Ref[T] {
	return p.ref(p.pos + n)
}

// Advance returns a copy of p moved n positions.
func (p Pointer[T]) Advance(n int) Pointer[T] {
	p.pos += n
	return p
}

// Position returns the index of the current element.
func (p Pointer[T]) Position() int { return p.pos }

// Backend returns backend.MultiCore.
func (Pointer[T]) Backend() backend.Tag { return backend.MultiCore{} }

func (p Pointer[T]) ref(i int) Ref[T] {
	if i < 0 || i >= len(p.buf.data) {
		panic("multicore: index out of range")
	}
	return Ref[T]{buf: p.buf, i: i}
}
