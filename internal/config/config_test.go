package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"host", "multicore", "vector", "accelerator"}, cfg.Backends)
	assert.Equal(t, DeviceMemory, cfg.Device)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"unknown backend", func(c *Config) { c.Backends = []string{"host", "gpu"} }, ErrBackendUnknown},
		{"no backends", func(c *Config) { c.Backends = nil }, ErrBackendUnknown},
		{"zero size", func(c *Config) { c.Size = 0 }, ErrSizeInvalid},
		{"huge size", func(c *Config) { c.Size = maxSize + 1 }, ErrSizeInvalid},
		{"bad device", func(c *Config) { c.Device = "cuda" }, ErrDeviceUnknown},
		{"no workers", func(c *Config) { c.Workers = 0 }, ErrWorkersInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Size = -1
	cfg.Device = "tpu"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrSizeInvalid)
	assert.ErrorIs(t, err, ErrDeviceUnknown)
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	body := "backends: [host, vector]\nsize: 5\ndevice: sqlite\nlog_level: debug\ndata_dir: /tmp/cursors\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileExt), []byte(body), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "vector"}, cfg.Backends)
	assert.Equal(t, 5, cfg.Size)
	assert.Equal(t, DeviceSQLite, cfg.Device)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/cursors", cfg.DataDir)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CURSORS_SIZE", "9")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Size)
}

func TestLoad_BackendsFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want []string
	}{
		{"comma separated", "host,vector", []string{"host", "vector"}},
		{"comma and space", "host, vector", []string{"host", "vector"}},
		{"space separated", "multicore accelerator", []string{"multicore", "accelerator"}},
		{"trailing comma", "vector,", []string{"vector"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CURSORS_BACKENDS", tt.env)
			cfg, err := Load(t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Backends)
		})
	}
}

func TestLoad_BackendsFromFileList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileExt), []byte("backends: [host, accelerator]\n"), 0o644))
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "accelerator"}, cfg.Backends)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileExt), []byte("device: fpga\n"), 0o644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrDeviceUnknown)
}

func TestWriteDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")

	wrote, err := WriteDefault(dir, Default())
	require.NoError(t, err)
	assert.True(t, wrote)

	data, err := os.ReadFile(filepath.Join(dir, FileExt))
	require.NoError(t, err)
	var got Config
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, Default(), got)

	wrote, err = WriteDefault(dir, Config{Size: 1})
	require.NoError(t, err)
	assert.False(t, wrote, "existing file must be kept")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
