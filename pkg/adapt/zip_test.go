package adapt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cursors/pkg/cursor"
	"github.com/mesh-intelligence/cursors/pkg/memory"
)

func TestZip2_WithDiscard(t *testing.T) {
	data := []int{1, 2, 3}
	z := NewZip2(memory.Host(data), NewDiscard[int]())

	pair := cursor.ReadAt(z, 1)
	assert.Equal(t, 2, pair.First.Get())
	assert.Equal(t, 1, pair.Second.Position())

	cursor.Store2(pair, 99, 5)
	assert.Equal(t, []int{1, 99, 3}, data)
}

func TestZip2_Category(t *testing.T) {
	type readable = Zip2[memory.HostPointer[int], memory.HostRef[int], Counting[int], int]
	type mixed = Zip2[memory.HostPointer[int], memory.HostRef[int], Discard[int], Discard[int]]

	assert.False(t, cursor.IsSink[readable]())
	assert.True(t, cursor.IsSink[mixed]())

	require.NoError(t, cursor.Verify[readable, cursor.Tuple2[memory.HostRef[int], int]]())
	require.NoError(t, cursor.Verify[mixed, cursor.Tuple2[memory.HostRef[int], Discard[int]]]())
}

func TestZip2_ReadableLoad(t *testing.T) {
	keys := []string{"a", "b", "c"}
	vals := []int{10, 20, 30}
	z := NewZip2(memory.Host(keys), memory.Host(vals))

	k, v := cursor.Load2(cursor.ReadAt(z, 2))
	assert.Equal(t, "c", k)
	assert.Equal(t, 30, v)

	k, v = cursor.Load2(cursor.Read(z.Advance(1)))
	assert.Equal(t, "b", k)
	assert.Equal(t, 20, v)
}

func TestZip3(t *testing.T) {
	a := []int{1, 2}
	b := []int{3, 4}
	z := NewZip3(memory.Host(a), memory.Host(b), NewDiscard[int]())
	assert.True(t, cursor.IsSink[Zip3[memory.HostPointer[int], memory.HostRef[int], memory.HostPointer[int], memory.HostRef[int], Discard[int], Discard[int]]]())

	tup := cursor.ReadAt(z, 1)
	cursor.Store3(tup, 20, 40, 0)
	assert.Equal(t, []int{1, 20}, a)
	assert.Equal(t, []int{3, 40}, b)
	assert.Equal(t, cursor.Read(z.Advance(1)), tup)
}
