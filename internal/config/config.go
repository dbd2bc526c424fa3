// Package config loads cursorctl settings from config.yaml in the
// configuration directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/cursors/internal/logger"
	"github.com/mesh-intelligence/cursors/pkg/backend"
)

const (
	fileName = "config"
	fileType = "yaml"

	// FileExt is the name of the config file inside the config directory.
	FileExt = "config.yaml"

	// Config keys.
	KeyBackends = "backends"
	KeySize     = "size"
	KeyDevice   = "device"
	KeyLogLevel = "log_level"
	KeyDataDir  = "data_dir"
	KeyWorkers  = "workers"

	// envPrefix lets CURSORS_SIZE, CURSORS_DEVICE and friends override the file.
	envPrefix = "CURSORS"
)

// Accelerator device kinds.
const (
	DeviceMemory = "memory"
	DeviceSQLite = "sqlite"
)

// Defaults.
const (
	DefaultSize    = 16
	DefaultWorkers = 4
	maxSize        = 1 << 20
)

// Validation errors.
var (
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDeviceUnknown  = errors.New("unknown accelerator device")
	ErrSizeInvalid    = errors.New("size out of range")
	ErrWorkersInvalid = errors.New("workers must be positive")
)

// Config holds the probe settings.
type Config struct {
	Backends []string `yaml:"backends"`
	Size     int      `yaml:"size"`
	Device   string   `yaml:"device"`
	Workers  int      `yaml:"workers"`
	LogLevel string   `yaml:"log_level"`
	DataDir  string   `yaml:"data_dir,omitempty"`
}

// Default returns a configuration that probes every backend on the memory
// device.
func Default() Config {
	return Config{
		Backends: slices.Clone(backend.Names),
		Size:     DefaultSize,
		Device:   DeviceMemory,
		Workers:  DefaultWorkers,
		LogLevel: "info",
	}
}

// Validate checks every field and joins all problems found.
func (c Config) Validate() error {
	var errs []error
	if len(c.Backends) == 0 {
		errs = append(errs, fmt.Errorf("backends: empty list: %w", ErrBackendUnknown))
	}
	for _, name := range c.Backends {
		if !slices.Contains(backend.Names, name) {
			errs = append(errs, fmt.Errorf("backends: %q: %w", name, ErrBackendUnknown))
		}
	}
	if c.Size < 1 || c.Size > maxSize {
		errs = append(errs, fmt.Errorf("size %d: %w", c.Size, ErrSizeInvalid))
	}
	if c.Device != DeviceMemory && c.Device != DeviceSQLite {
		errs = append(errs, fmt.Errorf("device %q: %w", c.Device, ErrDeviceUnknown))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d: %w", c.Workers, ErrWorkersInvalid))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Load reads config.yaml from configDir using Viper, layered over Default.
// A missing file is not an error. Environment variables prefixed CURSORS_
// override file values.
func Load(configDir string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault(KeyBackends, def.Backends)
	v.SetDefault(KeySize, def.Size)
	v.SetDefault(KeyDevice, def.Device)
	v.SetDefault(KeyWorkers, def.Workers)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyDataDir, "")
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Backends: splitList(v.GetStringSlice(KeyBackends)),
		Size:     v.GetInt(KeySize),
		Device:   strings.ToLower(v.GetString(KeyDevice)),
		Workers:  v.GetInt(KeyWorkers),
		LogLevel: v.GetString(KeyLogLevel),
		DataDir:  v.GetString(KeyDataDir),
	}
	return cfg, cfg.Validate()
}

// splitList splits each item on commas so CURSORS_BACKENDS=host,vector and a
// YAML list both yield one name per backend. Blank names are dropped.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for name := range strings.SplitSeq(item, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// WriteDefault writes cfg to configDir/config.yaml unless the file already
// exists. It reports whether a file was written.
func WriteDefault(configDir string, cfg Config) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(configDir, FileExt)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
