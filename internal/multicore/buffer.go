// Package multicore implements the multi-core backend: host memory shared by
// a pool of workers. Element access goes through striped locks so that
// references handed to concurrent workers stay race-free.
package multicore

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// stripeWidth is the number of consecutive elements guarded by one lock.
const stripeWidth = 64

// Buffer is a fixed-size array of T shared between workers.
type Buffer[T any] struct {
	data    []T
	stripes []sync.RWMutex
}

// NewBuffer allocates a zeroed buffer of n elements.
func NewBuffer[T any](n int) *Buffer[T] {
	return &Buffer[T]{
		data:    make([]T, n),
		stripes: make([]sync.RWMutex, (n+stripeWidth-1)/stripeWidth),
	}
}

// FromSlice allocates a buffer holding a copy of vals.
func FromSlice[T any](vals []T) *Buffer[T] {
	b := NewBuffer[T](len(vals))
	copy(b.data, vals)
	return b
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Begin returns a cursor at the first element.
func (b *Buffer[T]) Begin() Pointer[T] {
	return Pointer[T]{buf: b}
}

// Snapshot copies the buffer contents out, stripe by stripe.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, len(b.data))
	for s := range b.stripes {
		lo, hi := s*stripeWidth, min((s+1)*stripeWidth, len(b.data))
		b.stripes[s].RLock()
		copy(out[lo:hi], b.data[lo:hi])
		b.stripes[s].RUnlock()
	}
	return out
}

// Parallel splits [0, Len) into contiguous chunks and runs fn on each chunk
// from its own goroutine. workers <= 0 uses GOMAXPROCS. The first error
// cancels the context passed to the remaining chunks and is returned.
func (b *Buffer[T]) Parallel(ctx context.Context, workers int, fn func(ctx context.Context, lo, hi int) error) error {
	n := len(b.data)
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, lo, hi)
		})
	}
	return g.Wait()
}

func (b *Buffer[T]) stripe(i int) *sync.RWMutex {
	return &b.stripes[i/stripeWidth]
}
