package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

func TestBuffer_LaneLayout(t *testing.T) {
	vals := make([]int, 2*Width+3)
	for i := range vals {
		vals[i] = i
	}
	buf := FromSlice(vals)

	assert.Equal(t, 3, buf.Lanes())
	assert.Equal(t, len(vals), buf.Len())
	assert.Equal(t, Width, buf.Lane(1)[0])
	assert.Equal(t, vals, buf.Snapshot())
}

func TestPointer_CrossesLanes(t *testing.T) {
	buf := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	p := buf.Begin().Advance(Width - 1)

	assert.Equal(t, 7, cursor.Read(p).Get())
	ref := cursor.ReadAt(p, 1)
	assert.Equal(t, 8, ref.Get())
	assert.Equal(t, 0, ref.Slot())

	ref.Set(80)
	assert.Equal(t, 80, buf.Lane(1)[0])
}

func TestPointer_PaddingNotAddressable(t *testing.T) {
	p := FromSlice([]int{1, 2, 3}).Begin()
	assert.Panics(t, func() { cursor.ReadAt(p, 3) })
	assert.Equal(t, backend.Vector{}, backend.Of(p))
}
