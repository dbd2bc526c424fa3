package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cursors/internal/config"
	"github.com/mesh-intelligence/cursors/pkg/memory"
)

var builtinNames = []string{
	"alias", "offset-consistency", "idempotence", "zip-discard",
	"reverse", "transform", "permutation", "offset-view",
	"parallel", "discard", "counting", "constant",
}

func TestOpen_AllBackendsPass(t *testing.T) {
	for _, device := range []string{config.DeviceMemory, config.DeviceSQLite} {
		t.Run(device, func(t *testing.T) {
			if device == config.DeviceSQLite && testing.Short() {
				t.Skip("sqlite device")
			}
			cfg := config.Default()
			cfg.Size = 9
			cfg.Device = device
			cfg.DataDir = t.TempDir()

			scenarios, closeFn, err := Open(cfg)
			require.NoError(t, err)
			defer closeFn()

			r := NewRunner(scenarios, cfg.Workers)
			assert.ElementsMatch(t, builtinNames, r.Names())

			outcomes, err := r.Run(context.Background())
			require.NoError(t, err)
			assert.Len(t, outcomes, 4*8+1+3)
			for _, o := range outcomes {
				assert.True(t, o.Passed, "%s on %s: %s", o.Scenario, o.Backend, o.Error)
			}
		})
	}
}

func TestBind_EachBackend(t *testing.T) {
	dev := memory.NewMemoryDevice()
	defer dev.Close()

	sets := map[string][]Scenario{
		"host":        Bind(HostEnv(1)),
		"multicore":   Bind(MultiCoreEnv(3)),
		"vector":      Bind(VectorEnv(memory.VectorWidth + 3)),
		"accelerator": Bind(AcceleratorEnv(dev, 2)),
	}
	for name, scenarios := range sets {
		t.Run(name, func(t *testing.T) {
			for _, s := range scenarios {
				assert.Equal(t, name, s.Backend)
				assert.NoError(t, s.Run(context.Background()), s.Name)
			}
		})
	}
}

func TestRunner_SelectsByName(t *testing.T) {
	r := NewRunner(append(Bind(HostEnv(4)), Portable(4)...), 2)

	outcomes, err := r.Run(context.Background(), "alias", "counting")
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "alias", outcomes[0].Scenario)
	assert.Equal(t, "host", outcomes[0].Backend)
	assert.Equal(t, "counting", outcomes[1].Scenario)
	assert.Equal(t, "any", outcomes[1].Backend)
}

func TestRunner_UnknownScenario(t *testing.T) {
	r := NewRunner(Portable(1), 1)
	_, err := r.Run(context.Background(), "teleport")
	assert.ErrorIs(t, err, ErrScenarioUnknown)
}

func TestRunner_ReportsFailures(t *testing.T) {
	boom := errors.New("boom")
	r := NewRunner([]Scenario{
		{Name: "ok", Backend: "any", Run: func(context.Context) error { return nil }},
		{Name: "bad", Backend: "any", Run: func(context.Context) error { return boom }},
		{Name: "panics", Backend: "host", Run: func(context.Context) error { panic("index out of range") }},
	}, 0)

	outcomes, err := r.Run(context.Background())
	require.ErrorIs(t, err, ErrScenarioFailed)
	require.Len(t, outcomes, 3)
	assert.True(t, outcomes[0].Passed)
	assert.False(t, outcomes[1].Passed)
	assert.Equal(t, "boom", outcomes[1].Error)
	assert.False(t, outcomes[2].Passed)
	assert.Contains(t, outcomes[2].Error, "panic: index out of range")
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := NewRunner(Portable(2), 1).Run(ctx)
	require.ErrorIs(t, err, ErrScenarioFailed)
	for _, o := range outcomes {
		assert.Equal(t, context.Canceled.Error(), o.Error)
	}
}

func TestOpen_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Backends = []string{"quantum"}
	_, _, err := Open(cfg)
	assert.ErrorIs(t, err, config.ErrBackendUnknown)
}

func TestOpen_DuplicateBackends(t *testing.T) {
	cfg := config.Default()
	cfg.Backends = []string{"host", "host"}
	scenarios, closeFn, err := Open(cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.Len(t, scenarios, 8+3)
}
