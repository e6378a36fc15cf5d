package orchestration

import (
	"io"

	"github.com/agbru/parbench/internal/bench"
)

// ProgressReporter displays progress for one phase at a time.
type ProgressReporter interface {
	// StartPhase begins displaying progress for a phase of total tasks. The
	// returned update function is passed to the runner; stop is called once
	// the phase has finished, before its result is presented.
	StartPhase(phase bench.Phase, total int) (update bench.ProgressFunc, stop func())
}

// NullProgressReporter displays nothing. Used for non-terminal output and tests.
type NullProgressReporter struct{}

// StartPhase returns no-op callbacks.
func (NullProgressReporter) StartPhase(bench.Phase, int) (bench.ProgressFunc, func()) {
	return nil, func() {}
}

// ResultPresenter renders benchmark output.
type ResultPresenter interface {
	// PresentBanner announces the experiment.
	PresentBanner(out io.Writer, tasks, cores int)
	// PresentPhase reports one completed phase.
	PresentPhase(out io.Writer, res bench.Result)
}
