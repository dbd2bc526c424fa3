package adapt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
	"github.com/mesh-intelligence/cursors/pkg/memory"
)

func TestOffset_MapsPositions(t *testing.T) {
	data := []int{0, 10, 20, 30, 40, 50, 60}
	view := NewOffset(memory.Host(data), 1, 2)

	assert.Equal(t, 10, cursor.Read(view).Get())
	assert.Equal(t, 30, cursor.ReadAt(view, 1).Get())
	assert.Equal(t, 50, cursor.ReadAt(view.Advance(1), 1).Get())

	cursor.ReadAt(view, 2).Set(-1)
	assert.Equal(t, -1, data[5])
}

func TestOffset_ContiguousAliases(t *testing.T) {
	data := []int{1, 2, 3}
	view := Contiguous(memory.Host(data))
	for i := range data {
		assert.Same(t, &data[i], cursor.ReadAt(view, i).Addr())
	}
	assert.Equal(t, cursor.Read(view), cursor.ReadAt(view, 0))
	assert.Equal(t, backend.Host{}, backend.Of(view))
}

func TestOffset_OverSinkBreaksIdentity(t *testing.T) {
	assert.True(t, cursor.IsSink[Offset[Discard[int], Discard[int]]]())
	assert.ErrorIs(t, cursor.Verify[Offset[Discard[int], Discard[int]], Discard[int]](), cursor.ErrSinkResult)
}

func TestOffsetSink_VendsItself(t *testing.T) {
	out := newTape()
	view := NewOffsetSink(out, 3, 2)

	require.NoError(t, cursor.Verify[OffsetSink[tape, int], OffsetSink[tape, int]]())
	assert.True(t, cursor.IsSink[OffsetSink[tape, int]]())

	assert.Equal(t, view, cursor.Read(view))
	handle := cursor.ReadAt(view, 1)
	assert.Equal(t, view.Advance(1), handle)
	assert.Equal(t, 0, view.Position())

	handle.Set(42)
	cursor.ReadAt(view, 3).Set(7)
	assert.Equal(t, map[int]int{5: 42, 9: 7}, out.written())
	assert.Equal(t, cursor.Read(view), cursor.ReadAt(view, 0))
}
