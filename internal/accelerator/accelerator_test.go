package accelerator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// devices returns one fresh instance of every device kind. Short mode skips
// the SQLite device.
func devices(t *testing.T) map[string]Device {
	t.Helper()
	devs := map[string]Device{"memory": NewMemoryDevice()}
	if !testing.Short() {
		sq, err := OpenSQLite(t.TempDir())
		require.NoError(t, err)
		devs["sqlite"] = sq
	}
	t.Cleanup(func() {
		for _, d := range devs {
			d.Close()
		}
	})
	return devs
}

func TestPointer_TransferThenRead(t *testing.T) {
	for name, dev := range devices(t) {
		t.Run(name, func(t *testing.T) {
			buf, err := Upload(dev, []int{10, 20, 30})
			require.NoError(t, err)
			p := buf.Begin()

			ref := cursor.ReadAt(p, 1)
			assert.Equal(t, 20, ref.Get())

			ref.Set(99)
			got, err := buf.Download()
			require.NoError(t, err)
			assert.Equal(t, []int{10, 99, 30}, got)
			assert.NoError(t, buf.Err())
		})
	}
}

func TestPointer_OffsetMatchesCurrent(t *testing.T) {
	for name, dev := range devices(t) {
		t.Run(name, func(t *testing.T) {
			buf, err := Upload(dev, []float64{1.5, 2.5, 3.5})
			require.NoError(t, err)
			p := buf.Begin().Advance(2)

			assert.Equal(t, cursor.Read(p), cursor.ReadAt(p, 0))
			assert.Equal(t, 3.5, cursor.Read(p).Get())
			assert.Equal(t, 1.5, cursor.ReadAt(p, -2).Get())
		})
	}
}

func TestRef_FaultIsSticky(t *testing.T) {
	for name, dev := range devices(t) {
		t.Run(name, func(t *testing.T) {
			buf, err := Upload(dev, []int32{1, 2})
			require.NoError(t, err)

			past := cursor.ReadAt(buf.Begin(), 5)
			assert.Equal(t, int32(0), past.Get())
			assert.ErrorIs(t, buf.Err(), ErrOutOfRange)

			_, err = past.Load()
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.ErrorIs(t, past.Store(7), ErrOutOfRange)
		})
	}
}

func TestBuffer_Free(t *testing.T) {
	for name, dev := range devices(t) {
		t.Run(name, func(t *testing.T) {
			buf, err := NewBuffer[uint16](dev, 4)
			require.NoError(t, err)
			require.NoError(t, buf.Free())

			assert.ErrorIs(t, buf.Free(), ErrUnknownAllocation)
			_, err = buf.Download()
			assert.ErrorIs(t, err, ErrUnknownAllocation)
		})
	}
}

func TestDevice_Closed(t *testing.T) {
	for name, dev := range devices(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, dev.Close())
			require.NoError(t, dev.Close())

			_, err := dev.Alloc(1, 8)
			assert.ErrorIs(t, err, ErrDeviceClosed)
			assert.ErrorIs(t, dev.Load(uuid.New(), 0, make([]byte, 8)), ErrDeviceClosed)
		})
	}
}

func TestDevice_WidthMismatch(t *testing.T) {
	for name, dev := range devices(t) {
		t.Run(name, func(t *testing.T) {
			id, err := dev.Alloc(2, 4)
			require.NoError(t, err)
			assert.ErrorIs(t, dev.Store(id, 0, make([]byte, 8)), ErrWidthMismatch)
		})
	}
}

func TestNewBuffer_ElementType(t *testing.T) {
	_, err := NewBuffer[string](NewMemoryDevice(), 1)
	assert.ErrorIs(t, err, ErrElementType)
}

func TestOpenSQLite_CreatesDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("sqlite device")
	}
	dir := filepath.Join(t.TempDir(), "nested")
	dev, err := OpenSQLite(dir)
	require.NoError(t, err)
	defer dev.Close()

	_, err = os.Stat(filepath.Join(dir, DeviceFileName))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DeviceFileName), dev.Path())
}

func TestPointer_Contract(t *testing.T) {
	require.NoError(t, cursor.Verify[Pointer[int], Ref[int]]())
	assert.False(t, cursor.IsSink[Pointer[int]]())
	assert.Equal(t, backend.Accelerator{}, backend.Of(Pointer[int]{}))
}

// flakyDevice fails the store with index failAt and remembers the last
// allocation it handed out.
type flakyDevice struct {
	Device
	failAt int
	last   uuid.UUID
}

var errInjected = errors.New("injected store failure")

func (d *flakyDevice) Alloc(count, width int) (uuid.UUID, error) {
	id, err := d.Device.Alloc(count, width)
	d.last = id
	return id, err
}

func (d *flakyDevice) Store(id uuid.UUID, index int, src []byte) error {
	if index == d.failAt {
		return errInjected
	}
	return d.Device.Store(id, index, src)
}

func TestUpload_FailedStoreFreesAllocation(t *testing.T) {
	for name, dev := range devices(t) {
		t.Run(name, func(t *testing.T) {
			flaky := &flakyDevice{Device: dev, failAt: 2}
			buf, err := Upload[int32](flaky, []int32{1, 2, 3, 4})
			require.ErrorIs(t, err, errInjected)
			assert.Nil(t, buf)

			err = dev.Load(flaky.last, 0, make([]byte, 4))
			assert.ErrorIs(t, err, ErrUnknownAllocation)
			assert.ErrorIs(t, dev.Free(flaky.last), ErrUnknownAllocation)
		})
	}
}
