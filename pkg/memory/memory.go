// Package memory is the public API for the backend memory cursors. It exposes
// constructors and type names while keeping the backend implementations
// internal.
//
// Example:
//
//	data := []int{10, 20, 30}
//	p := memory.Host(data)
//	cursor.ReadAt(p, 1).Set(99) // data is now [10 99 30]
package memory

import (
	"github.com/mesh-intelligence/cursors/internal/accelerator"
	"github.com/mesh-intelligence/cursors/internal/host"
	"github.com/mesh-intelligence/cursors/internal/multicore"
	"github.com/mesh-intelligence/cursors/internal/vector"
)

// Host backend.
type (
	HostPointer[T any] = host.Pointer[T]
	HostRef[T any]     = host.Ref[T]
)

// Multi-core backend.
type (
	MultiCoreBuffer[T any]  = multicore.Buffer[T]
	MultiCorePointer[T any] = multicore.Pointer[T]
	MultiCoreRef[T any]     = multicore.Ref[T]
)

// Vector backend.
type (
	VectorBuffer[T any]  = vector.Buffer[T]
	VectorPointer[T any] = vector.Pointer[T]
	VectorRef[T any]     = vector.Ref[T]
)

// Accelerator backend.
type (
	Device                    = accelerator.Device
	AcceleratorBuffer[T any]  = accelerator.Buffer[T]
	AcceleratorPointer[T any] = accelerator.Pointer[T]
	AcceleratorRef[T any]     = accelerator.Ref[T]
)

// VectorWidth is the number of elements per vector lane.
const VectorWidth = vector.Width

// Host returns a host cursor at the first element of data. The slice is
// shared, not copied.
func Host[T any](data []T) HostPointer[T] {
	return host.New(data)
}

// MultiCore copies vals into a new multi-core buffer.
func MultiCore[T any](vals []T) *MultiCoreBuffer[T] {
	return multicore.FromSlice(vals)
}

// Vector copies vals into a new lane buffer.
func Vector[T any](vals []T) *VectorBuffer[T] {
	return vector.FromSlice(vals)
}

// NewMemoryDevice returns an in-process accelerator device.
func NewMemoryDevice() Device {
	return accelerator.NewMemoryDevice()
}

// OpenSQLiteDevice opens an accelerator device backed by a SQLite database in
// dataDir.
func OpenSQLiteDevice(dataDir string) (Device, error) {
	dev, err := accelerator.OpenSQLite(dataDir)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// Upload copies vals onto dev.
func Upload[T any](dev Device, vals []T) (*AcceleratorBuffer[T], error) {
	return accelerator.Upload(dev, vals)
}
