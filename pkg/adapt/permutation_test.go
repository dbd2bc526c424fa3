package adapt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cursors/pkg/cursor"
	"github.com/mesh-intelligence/cursors/pkg/memory"
)

func TestPermutation_Gather(t *testing.T) {
	elems := []string{"a", "b", "c", "d"}
	index := []int{3, 0, 2}
	p := NewPermutation(memory.Host(elems), Values(memory.Host(index)))

	got := make([]string, 0, len(index))
	for n := range index {
		got = append(got, cursor.ReadAt(p, n).Get())
	}
	assert.Equal(t, []string{"d", "a", "c"}, got)
	assert.Equal(t, cursor.Read(p.Advance(1)), cursor.ReadAt(p, 1))
}

func TestPermutation_Scatter(t *testing.T) {
	elems := []int{0, 0, 0}
	p := NewPermutation(memory.Host(elems), NewConstant(uint8(1)))

	cursor.ReadAt(p, 4).Set(5)
	assert.Equal(t, []int{0, 5, 0}, elems)
}

func TestPermutationSink_IndexNeverWritten(t *testing.T) {
	index := []int{2, 0, 1}
	out := newTape()
	p := NewPermutationSink[tape, int](out, Values(memory.Host(index)))
	type view = PermutationSink[tape, int, Transform[memory.HostPointer[int], memory.HostRef[int], int], int]

	assert.True(t, cursor.IsSink[view]())
	require.NoError(t, cursor.Verify[view, view]())

	handle := cursor.ReadAt(p, 1)
	assert.Equal(t, p.Advance(1), handle)
	handle.Set(9)
	cursor.Read(p).Set(4)
	assert.Equal(t, map[int]int{0: 9, 2: 4}, out.written())
	assert.Equal(t, []int{2, 0, 1}, index)
}
