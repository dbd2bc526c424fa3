package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cursors/internal/probe"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func (a *app) newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe [scenario...]",
		Short: "Run read-dispatch scenarios against the configured backends",
		Long: `Probe runs each scenario on every backend listed in config.yaml and reports
pass or fail. With no arguments every scenario runs.

Scenarios: alias, offset-consistency, idempotence, zip-discard, reverse,
transform, permutation, offset-view, parallel (multicore only), discard,
counting, constant

Example:
  cursorctl probe
  cursorctl probe alias zip-discard
  cursorctl probe --json`,
		RunE: a.runProbe,
	}
}

func (a *app) runProbe(cmd *cobra.Command, args []string) error {
	scenarios, closeDevice, err := probe.Open(a.cfg)
	if err != nil {
		return sysError{err}
	}
	defer closeDevice()

	outcomes, runErr := probe.NewRunner(scenarios, a.cfg.Workers).Run(cmd.Context(), args...)
	if outcomes == nil && runErr != nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		data, err := json.MarshalIndent(outcomes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal outcomes: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else if err := writeOutcomes(out, outcomes, colorize(out)); err != nil {
		return err
	}
	return runErr
}

// colorize reports whether w is a terminal.
func colorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeOutcomes(w io.Writer, outcomes []probe.Outcome, color bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tBACKEND\tRESULT\tDETAIL")
	for _, o := range outcomes {
		status, tint := "PASS", ansiGreen
		if !o.Passed {
			status, tint = "FAIL", ansiRed
		}
		if color {
			status = tint + status + ansiReset
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Scenario, o.Backend, status, o.Error)
	}
	return tw.Flush()
}
