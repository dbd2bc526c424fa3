// Package probe runs the read-dispatch scenarios against live cursors on each
// configured backend and reports one Outcome per scenario.
package probe

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/cursors/internal/logger"
)

// Probe errors.
var (
	ErrScenarioUnknown = errors.New("unknown scenario")
	ErrScenarioFailed  = errors.New("scenario failed")
)

// Scenario is one check bound to one backend.
type Scenario struct {
	Name    string
	Backend string
	Run     func(ctx context.Context) error
}

// Outcome records the result of running a Scenario.
type Outcome struct {
	Scenario string        `json:"scenario"`
	Backend  string        `json:"backend"`
	Passed   bool          `json:"passed"`
	Error    string        `json:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Runner executes scenarios with bounded concurrency.
type Runner struct {
	scenarios []Scenario
	workers   int
}

// NewRunner returns a Runner over scenarios. workers below one means one.
func NewRunner(scenarios []Scenario, workers int) *Runner {
	return &Runner{scenarios: scenarios, workers: max(workers, 1)}
}

// Names returns the distinct scenario names in registration order.
func (r *Runner) Names() []string {
	var names []string
	for _, s := range r.scenarios {
		if !slices.Contains(names, s.Name) {
			names = append(names, s.Name)
		}
	}
	return names
}

// Run executes every scenario whose name is in names, or all of them when
// names is empty. Outcomes come back in registration order. If any scenario
// fails the error wraps ErrScenarioFailed.
func (r *Runner) Run(ctx context.Context, names ...string) ([]Outcome, error) {
	selected, err := r.selectScenarios(names)
	if err != nil {
		return nil, err
	}

	log := logger.L()
	out := make([]Outcome, len(selected))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, s := range selected {
		g.Go(func() error {
			start := time.Now()
			err := runOne(ctx, s)
			o := Outcome{Scenario: s.Name, Backend: s.Backend, Passed: err == nil, Elapsed: time.Since(start)}
			if err != nil {
				o.Error = err.Error()
				log.Warn("probe.scenario", "scenario", s.Name, "backend", s.Backend, "error", err)
			} else {
				log.Debug("probe.scenario", "scenario", s.Name, "backend", s.Backend, "elapsed", o.Elapsed)
			}
			out[i] = o
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, o := range out {
		if !o.Passed {
			failed++
		}
	}
	if failed > 0 {
		return out, fmt.Errorf("%d of %d: %w", failed, len(out), ErrScenarioFailed)
	}
	return out, nil
}

func (r *Runner) selectScenarios(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return r.scenarios, nil
	}
	known := r.Names()
	for _, n := range names {
		if !slices.Contains(known, n) {
			return nil, fmt.Errorf("%q: %w", n, ErrScenarioUnknown)
		}
	}
	var out []Scenario
	for _, s := range r.scenarios {
		if slices.Contains(names, s.Name) {
			out = append(out, s)
		}
	}
	return out, nil
}

// runOne runs s, turning a panic (an out-of-range read, say) into an error.
func runOne(ctx context.Context, s Scenario) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return s.Run(ctx)
}
