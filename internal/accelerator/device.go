// Package accelerator implements the accelerator backend. Element storage lives
// on a Device that the host cannot address; a read transfers the element into
// host memory and decodes it, a write encodes it and transfers it back.
//
// Two devices are provided: MemoryDevice, an in-process arena, and
// SQLiteDevice, which keeps allocations in a SQLite database.
package accelerator

import (
	"errors"

	"github.com/google/uuid"
)

// Device errors.
var (
	ErrDeviceClosed      = errors.New("device is closed")
	ErrUnknownAllocation = errors.New("unknown allocation")
	ErrOutOfRange        = errors.New("element index out of range")
	ErrElementType       = errors.New("element type has no fixed encoded size")
	ErrWidthMismatch     = errors.New("transfer width does not match allocation")
)

// Device owns accelerator memory. Allocations are arrays of count cells of
// width bytes; transfers move one cell at a time.
type Device interface {
	// Name identifies the device kind for logs and diagnostics.
	Name() string

	// Alloc reserves count zeroed cells of width bytes each.
	Alloc(count, width int) (uuid.UUID, error)

	// Load copies cell index of allocation id into dst.
	Load(id uuid.UUID, index int, dst []byte) error

	// Store copies src into cell index of allocation id.
	Store(id uuid.UUID, index int, src []byte) error

	// Free releases an allocation.
	Free(id uuid.UUID) error

	// Close releases the device. Further calls return ErrDeviceClosed.
	Close() error
}

// shape records the geometry of one allocation.
type shape struct {
	count int
	width int
}

func (s shape) check(index int, buf []byte) error {
	if index < 0 || index >= s.count {
		return ErrOutOfRange
	}
	if len(buf) != s.width {
		return ErrWidthMismatch
	}
	return nil
}

func newAllocationID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
