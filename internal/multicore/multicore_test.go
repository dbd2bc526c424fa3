package multicore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

func TestPointer_ReadWrite(t *testing.T) {
	buf := FromSlice([]int{10, 20, 30})
	p := buf.Begin()

	ref := cursor.ReadAt(p, 1)
	assert.Equal(t, 20, ref.Get())
	ref.Set(99)
	assert.Equal(t, []int{10, 99, 30}, buf.Snapshot())

	assert.Equal(t, cursor.Read(p.Advance(2)), cursor.ReadAt(p, 2))
}

func TestPointer_OutOfRangePanics(t *testing.T) {
	p := FromSlice([]int{1}).Begin()
	assert.Panics(t, func() { cursor.ReadAt(p, 1) })
}

func TestBuffer_Parallel(t *testing.T) {
	const n = 1000
	buf := NewBuffer[int](n)
	begin := buf.Begin()

	err := buf.Parallel(context.Background(), 4, func(_ context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			cursor.ReadAt(begin, i).Set(i * 2)
		}
		return nil
	})
	require.NoError(t, err)

	snap := buf.Snapshot()
	for i, v := range snap {
		require.Equal(t, i*2, v)
	}
}

func TestBuffer_ParallelError(t *testing.T) {
	buf := NewBuffer[int](100)
	boom := errors.New("boom")

	err := buf.Parallel(context.Background(), 8, func(_ context.Context, lo, _ int) error {
		if lo == 0 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestBuffer_ParallelEmpty(t *testing.T) {
	called := false
	err := NewBuffer[int](0).Parallel(context.Background(), 0, func(context.Context, int, int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}
