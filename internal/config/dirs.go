package config

import (
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/cursors/internal/accelerator"
)

// Project-local directory names used when nothing overrides them.
const (
	DefaultConfigDirName = ".cursors"
	DefaultDataDirName   = ".cursors-db"
)

// EnvConfigDir overrides the configuration directory. The data directory is
// overridden through CURSORS_DATA_DIR like every other config key.
const EnvConfigDir = envPrefix + "_CONFIG_DIR"

// ResolveConfigDir returns the configuration directory: flag, then
// CURSORS_CONFIG_DIR, then .cursors in the working directory.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return inWorkDir(DefaultConfigDirName)
}

// ResolveDataDir fixes c.DataDir to an absolute path. A non-empty flag wins
// over the loaded value (file or CURSORS_DATA_DIR); with neither the data
// directory is .cursors-db in the working directory, so device databases stay
// next to the project being probed.
func (c *Config) ResolveDataDir(flag string) error {
	var (
		dir string
		err error
	)
	switch {
	case flag != "":
		dir, err = filepath.Abs(flag)
	case c.DataDir != "":
		dir, err = filepath.Abs(c.DataDir)
	default:
		dir, err = inWorkDir(DefaultDataDirName)
	}
	if err != nil {
		return err
	}
	c.DataDir = dir
	return nil
}

// DevicePath returns the database file the SQLite accelerator device uses,
// or "" when the memory device is selected.
func (c Config) DevicePath() string {
	if c.Device != DeviceSQLite {
		return ""
	}
	return filepath.Join(c.DataDir, accelerator.DeviceFileName)
}

func inWorkDir(name string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, name), nil
}
