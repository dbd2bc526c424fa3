package accelerator

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

var order = binary.LittleEndian

// width returns the encoded size of T. int and uint travel as 64-bit values;
// every other type must have a fixed encoding/binary size.
func width[T any]() (int, error) {
	var zero T
	switch any(zero).(type) {
	case int, uint:
		return 8, nil
	}
	if n := binary.Size(zero); n > 0 {
		return n, nil
	}
	return 0, fmt.Errorf("%v: %w", reflect.TypeFor[T](), ErrElementType)
}

func encode[T any](dst []byte, v T) error {
	switch x := any(v).(type) {
	case int:
		order.PutUint64(dst, uint64(x))
		return nil
	case uint:
		order.PutUint64(dst, uint64(x))
		return nil
	}
	_, err := binary.Encode(dst, order, v)
	return err
}

func decode[T any](src []byte) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *int:
		*p = int(order.Uint64(src))
		return v, nil
	case *uint:
		*p = uint(order.Uint64(src))
		return v, nil
	}
	_, err := binary.Decode(src, order, &v)
	return v, err
}

// Buffer is an array of T resident on a Device.
type Buffer[T any] struct {
	dev   Device
	id    uuid.UUID
	n     int
	width int

	mu    sync.Mutex
	fault error
}

// NewBuffer allocates n zeroed elements on dev.
func NewBuffer[T any](dev Device, n int) (*Buffer[T], error) {
	w, err := width[T]()
	if err != nil {
		return nil, err
	}
	id, err := dev.Alloc(n, w)
	if err != nil {
		return nil, fmt.Errorf("allocate %d elements on %s: %w", n, dev.Name(), err)
	}
	return &Buffer[T]{dev: dev, id: id, n: n, width: w}, nil
}

// Upload allocates a buffer on dev and copies vals into it. A failed copy
// frees the allocation.
func Upload[T any](dev Device, vals []T) (*Buffer[T], error) {
	b, err := NewBuffer[T](dev, len(vals))
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if err := b.store(i, v); err != nil {
			return nil, errors.Join(err, b.Free())
		}
	}
	return b, nil
}

// ID returns the device allocation ID.
func (b *Buffer[T]) ID() uuid.UUID { return b.id }

// Len returns the number of elements.
func (b *Buffer[T]) Len() int { return b.n }

// Begin returns a cursor at the first element.
func (b *Buffer[T]) Begin() Pointer[T] {
	return Pointer[T]{buf: b}
}

// Download copies every element back to the host.
func (b *Buffer[T]) Download() ([]T, error) {
	out := make([]T, b.n)
	for i := range out {
		v, err := b.load(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Free releases the device allocation.
func (b *Buffer[T]) Free() error {
	return b.dev.Free(b.id)
}

// Err returns the first transfer fault raised through Ref.Get or Ref.Set.
func (b *Buffer[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fault
}

func (b *Buffer[T]) load(i int) (T, error) {
	stage := make([]byte, b.width)
	if err := b.dev.Load(b.id, i, stage); err != nil {
		var zero T
		return zero, err
	}
	return decode[T](stage)
}

func (b *Buffer[T]) store(i int, v T) error {
	stage := make([]byte, b.width)
	if err := encode(stage, v); err != nil {
		return err
	}
	return b.dev.Store(b.id, i, stage)
}

func (b *Buffer[T]) record(err error) {
	b.mu.Lock()
	if b.fault == nil {
		b.fault = err
	}
	b.mu.Unlock()
}

// Ref is a proxy for one device-resident element. Get transfers the element
// to the host and decodes it; Set encodes a value and transfers it back.
type Ref[T any] struct {
	buf *Buffer[T]
	i   int
}

// Load transfers and decodes the element.
func (r Ref[T]) Load() (T, error) { return r.buf.load(r.i) }

// Store encodes v and transfers it to the element.
func (r Ref[T]) Store(v T) error { return r.buf.store(r.i, v) }

// Get is Load with faults recorded on the buffer; it returns the zero value
// on failure.
func (r Ref[T]) Get() T {
	v, err := r.Load()
	if err != nil {
		r.buf.record(err)
	}
	return v
}

// Set is Store with faults recorded on the buffer.
func (r Ref[T]) Set(v T) {
	if err := r.Store(v); err != nil {
		r.buf.record(err)
	}
}

// Index returns the element index within its buffer.
func (r Ref[T]) Index() int { return r.i }

// Pointer is a cursor over a device Buffer. Reading it performs no transfer;
// transfers happen when the returned Ref is used.
type Pointer[T any] struct {
	cursor.Readable
	buf *Buffer[T]
	pos int
}

// Deref returns a proxy for the current element.
func (p Pointer[T]) Deref() Ref[T] { return Ref[T]{buf: p.buf, i: p.pos} }

// DerefAt returns a proxy for the element n positions away.
func (p Pointer[T]) DerefAt(n int) Ref[T] { return Ref[T]{buf: p.buf, i: p.pos + n} }

// Advance returns a copy of p moved n positions.
func (p Pointer[T]) Advance(n int) Pointer[T] {
	p.pos += n
	return p
}

// Position returns the index of the current element.
func (p Pointer[T]) Position() int { return p.pos }

// Backend returns backend.Accelerator.
func (Pointer[T]) Backend() backend.Tag { return backend.Accelerator{} }
