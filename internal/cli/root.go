// Package cli implements the cursorctl command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cursors/internal/config"
	"github.com/mesh-intelligence/cursors/internal/logger"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// sysError marks failures of the environment (file system, device) rather
// than of the user's input or of a probe.
type sysError struct{ err error }

func (e sysError) Error() string { return e.err.Error() }
func (e sysError) Unwrap() error { return e.err }

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by one command tree.
type app struct {
	flags     rootFlags
	configDir string
	cfg       config.Config
}

// NewRootCmd creates the top-level "cursorctl" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:     "cursorctl",
		Short:   "Inspect and probe backend memory cursors",
		Long:    "cursorctl describes the built-in cursor families and runs read-dispatch\nscenarios against the host, multi-core, vector and accelerator backends.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/cursors)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.cursors-db)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "override log_level from config.yaml")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newDescribeCmd())
	root.AddCommand(a.newProbeCmd())

	return root
}

// load resolves directories, reads config.yaml and installs the logger.
func (a *app) load(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := config.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError{fmt.Errorf("resolve config dir: %w", err)}
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.ResolveDataDir(a.flags.dataDir); err != nil {
		return sysError{fmt.Errorf("resolve data dir: %w", err)}
	}

	if _, err := logger.Setup(logger.Config{Output: cmd.ErrOrStderr(), Level: cfg.LogLevel, JSON: a.flags.jsonMode}); err != nil {
		return err
	}
	logger.L().Debug("cli.config", "config_dir", configDir, "data_dir", cfg.DataDir, "backends", cfg.Backends)

	a.configDir = configDir
	a.cfg = cfg
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Stderr))
}

func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	var se sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
