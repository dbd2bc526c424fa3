package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
	"github.com/mesh-intelligence/cursors/pkg/memory"
)

func TestHost_Example(t *testing.T) {
	data := []int{10, 20, 30}
	p := memory.Host(data)
	cursor.ReadAt(p, 1).Set(99)
	assert.Equal(t, []int{10, 99, 30}, data)
}

func TestBackends_SameReadSemantics(t *testing.T) {
	vals := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	mc := memory.MultiCore(vals)
	cursor.ReadAt(mc.Begin(), 8).Set(90)
	assert.Equal(t, 90, cursor.Read(mc.Begin().Advance(8)).Get())

	vec := memory.Vector(vals)
	cursor.ReadAt(vec.Begin(), 8).Set(90)
	assert.Equal(t, 90, vec.Lane(1)[0])
	assert.Equal(t, memory.VectorWidth, len(vec.Lane(0)))

	dev := memory.NewMemoryDevice()
	defer dev.Close()
	acc, err := memory.Upload(dev, vals)
	require.NoError(t, err)
	cursor.ReadAt(acc.Begin(), 8).Set(90)
	got, err := acc.Download()
	require.NoError(t, err)
	assert.Equal(t, 90, got[8])

	assert.Equal(t, backend.MultiCore{}, backend.Of(mc.Begin()))
	assert.Equal(t, backend.Vector{}, backend.Of(vec.Begin()))
	assert.Equal(t, backend.Accelerator{}, backend.Of(acc.Begin()))
}

func TestOpenSQLiteDevice(t *testing.T) {
	if testing.Short() {
		t.Skip("sqlite device")
	}
	dev, err := memory.OpenSQLiteDevice(t.TempDir())
	require.NoError(t, err)
	defer dev.Close()
	assert.Equal(t, "sqlite", dev.Name())
}
