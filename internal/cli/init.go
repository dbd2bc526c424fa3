package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cursors/internal/config"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml and create the data directory",
		Long:  "Create the configuration and data directories and write config.yaml with\ndefault values. An existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.flags.dataDir != "" {
		cfg.DataDir = a.cfg.DataDir
	}

	wrote, err := config.WriteDefault(a.configDir, cfg)
	if err != nil {
		return sysError{fmt.Errorf("write config: %w", err)}
	}
	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		return sysError{fmt.Errorf("create data directory: %w", err)}
	}

	path := filepath.Join(a.configDir, config.FileExt)
	if wrote {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Kept existing %s\n", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Data directory %s\n", a.cfg.DataDir)
	if path := a.cfg.DevicePath(); path != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Device database %s\n", path)
	}
	return nil
}
