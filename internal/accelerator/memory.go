package accelerator

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/cursors/internal/logger"
)

// MemoryDevice keeps allocations in process memory. Transfers are serialised
// by a single lock.
type MemoryDevice struct {
	mu     sync.Mutex
	closed bool
	cells  map[uuid.UUID][]byte
	shapes map[uuid.UUID]shape
}

// NewMemoryDevice returns an empty in-process device.
func NewMemoryDevice() *MemoryDevice {
	return &MemoryDevice{
		cells:  make(map[uuid.UUID][]byte),
		shapes: make(map[uuid.UUID]shape),
	}
}

// Name returns "memory".
func (d *MemoryDevice) Name() string { return "memory" }

// Alloc reserves count zeroed cells of width bytes.
func (d *MemoryDevice) Alloc(count, width int) (uuid.UUID, error) {
	if count < 0 || width <= 0 {
		return uuid.Nil, fmt.Errorf("alloc %d x %d: %w", count, width, ErrOutOfRange)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return uuid.Nil, ErrDeviceClosed
	}

	id := newAllocationID()
	d.cells[id] = make([]byte, count*width)
	d.shapes[id] = shape{count: count, width: width}
	logger.L().Debug("device.alloc", "device", d.Name(), "id", id, "count", count, "width", width)
	return id, nil
}

// Load copies one cell into dst.
func (d *MemoryDevice) Load(id uuid.UUID, index int, dst []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	mem, s, err := d.lookup(id)
	if err != nil {
		return err
	}
	if err := s.check(index, dst); err != nil {
		return fmt.Errorf("load %s[%d]: %w", id, index, err)
	}
	copy(dst, mem[index*s.width:(index+1)*s.width])
	return nil
}

// Store copies src into one cell.
func (d *MemoryDevice) Store(id uuid.UUID, index int, src []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	mem, s, err := d.lookup(id)
	if err != nil {
		return err
	}
	if err := s.check(index, src); err != nil {
		return fmt.Errorf("store %s[%d]: %w", id, index, err)
	}
	copy(mem[index*s.width:(index+1)*s.width], src)
	return nil
}

// Free releases an allocation.
func (d *MemoryDevice) Free(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, _, err := d.lookup(id); err != nil {
		return err
	}
	delete(d.cells, id)
	delete(d.shapes, id)
	return nil
}

// Close drops every allocation. Idempotent.
func (d *MemoryDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.cells = nil
	d.shapes = nil
	return nil
}

func (d *MemoryDevice) lookup(id uuid.UUID) ([]byte, shape, error) {
	if d.closed {
		return nil, shape{}, ErrDeviceClosed
	}
	mem, ok := d.cells[id]
	if !ok {
		return nil, shape{}, fmt.Errorf("%s: %w", id, ErrUnknownAllocation)
	}
	return mem, d.shapes[id], nil
}
