package probe

import (
	"context"
	"fmt"
	"slices"

	"github.com/mesh-intelligence/cursors/internal/config"
	"github.com/mesh-intelligence/cursors/internal/logger"
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
	"github.com/mesh-intelligence/cursors/pkg/memory"
)

// Pointer is an elementary int cursor of one backend.
type Pointer[C any, R cursor.Reference[int]] interface {
	cursor.RandomAccess[R]
	cursor.Advancer[C]
}

// Array is an int array allocated on one backend.
type Array[C Pointer[C, R], R cursor.Reference[int]] interface {
	Begin() C
	// Values copies the array back to the host.
	Values() ([]int, error)
}

// Env allocates arrays on one backend.
type Env[C Pointer[C, R], R cursor.Reference[int]] struct {
	Tag   backend.Tag
	Size  int
	Alloc func(vals []int) (Array[C, R], error)
}

type hostArray []int

func (a hostArray) Begin() memory.HostPointer[int] { return memory.Host([]int(a)) }
func (a hostArray) Values() ([]int, error)         { return slices.Clone(a), nil }

type multicoreArray struct{ buf *memory.MultiCoreBuffer[int] }

func (a multicoreArray) Begin() memory.MultiCorePointer[int] { return a.buf.Begin() }
func (a multicoreArray) Values() ([]int, error)              { return a.buf.Snapshot(), nil }

type vectorArray struct{ buf *memory.VectorBuffer[int] }

func (a vectorArray) Begin() memory.VectorPointer[int] { return a.buf.Begin() }
func (a vectorArray) Values() ([]int, error)           { return a.buf.Snapshot(), nil }

type acceleratorArray struct{ buf *memory.AcceleratorBuffer[int] }

func (a acceleratorArray) Begin() memory.AcceleratorPointer[int] { return a.buf.Begin() }

// Values reports any fault left by Ref.Get or Ref.Set before downloading.
func (a acceleratorArray) Values() ([]int, error) {
	if err := a.buf.Err(); err != nil {
		return nil, err
	}
	return a.buf.Download()
}

// HostEnv allocates plain slices.
func HostEnv(size int) Env[memory.HostPointer[int], memory.HostRef[int]] {
	return Env[memory.HostPointer[int], memory.HostRef[int]]{
		Tag:  backend.Host{},
		Size: size,
		Alloc: func(vals []int) (Array[memory.HostPointer[int], memory.HostRef[int]], error) {
			return hostArray(slices.Clone(vals)), nil
		},
	}
}

// MultiCoreEnv allocates lock-striped buffers.
func MultiCoreEnv(size int) Env[memory.MultiCorePointer[int], memory.MultiCoreRef[int]] {
	return Env[memory.MultiCorePointer[int], memory.MultiCoreRef[int]]{
		Tag:  backend.MultiCore{},
		Size: size,
		Alloc: func(vals []int) (Array[memory.MultiCorePointer[int], memory.MultiCoreRef[int]], error) {
			return multicoreArray{memory.MultiCore(vals)}, nil
		},
	}
}

// VectorEnv allocates lane buffers.
func VectorEnv(size int) Env[memory.VectorPointer[int], memory.VectorRef[int]] {
	return Env[memory.VectorPointer[int], memory.VectorRef[int]]{
		Tag:  backend.Vector{},
		Size: size,
		Alloc: func(vals []int) (Array[memory.VectorPointer[int], memory.VectorRef[int]], error) {
			return vectorArray{memory.Vector(vals)}, nil
		},
	}
}

// AcceleratorEnv uploads arrays to dev.
func AcceleratorEnv(dev memory.Device, size int) Env[memory.AcceleratorPointer[int], memory.AcceleratorRef[int]] {
	return Env[memory.AcceleratorPointer[int], memory.AcceleratorRef[int]]{
		Tag:  backend.Accelerator{},
		Size: size,
		Alloc: func(vals []int) (Array[memory.AcceleratorPointer[int], memory.AcceleratorRef[int]], error) {
			buf, err := memory.Upload(dev, vals)
			if err != nil {
				return nil, err
			}
			return acceleratorArray{buf}, nil
		},
	}
}

// Open binds the scenarios for every backend named in cfg, plus the
// backend-independent ones. The returned func closes the accelerator device
// when one was opened.
func Open(cfg config.Config) ([]Scenario, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	closer := func() error { return nil }
	var out []Scenario
	seen := make(map[string]bool)
	for _, name := range cfg.Backends {
		if seen[name] {
			continue
		}
		seen[name] = true
		switch name {
		case backend.Host{}.Name():
			out = append(out, Bind(HostEnv(cfg.Size))...)
		case backend.MultiCore{}.Name():
			out = append(out, Bind(MultiCoreEnv(cfg.Size))...)
			out = append(out, Scenario{
				Name:    "parallel",
				Backend: name,
				Run:     func(ctx context.Context) error { return parallel(ctx, cfg.Size, cfg.Workers) },
			})
		case backend.Vector{}.Name():
			out = append(out, Bind(VectorEnv(cfg.Size))...)
		case backend.Accelerator{}.Name():
			dev, err := openDevice(cfg)
			if err != nil {
				return nil, nil, err
			}
			closer = dev.Close
			out = append(out, Bind(AcceleratorEnv(dev, cfg.Size))...)
		default:
			return nil, nil, fmt.Errorf("%q: %w", name, config.ErrBackendUnknown)
		}
	}
	out = append(out, Portable(cfg.Size)...)

	logger.L().Debug("probe.open", "backends", cfg.Backends, "scenarios", len(out), "device", cfg.Device)
	return out, closer, nil
}

func openDevice(cfg config.Config) (memory.Device, error) {
	if cfg.Device == config.DeviceSQLite {
		dev, err := memory.OpenSQLiteDevice(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open accelerator device: %w", err)
		}
		return dev, nil
	}
	return memory.NewMemoryDevice(), nil
}
