package cli

import (
	"io"

	"github.com/agbru/parbench/internal/bench"
	"github.com/agbru/parbench/internal/orchestration"
)

var (
	_ orchestration.ResultPresenter  = CLIResultPresenter{}
	_ orchestration.ProgressReporter = CLIProgressReporter{}
)

// CLIResultPresenter prints the plain benchmark lines.
type CLIResultPresenter struct{}

// PresentBanner implements orchestration.ResultPresenter.
func (CLIResultPresenter) PresentBanner(out io.Writer, tasks, cores int) {
	DisplayBanner(out, tasks, cores)
}

// PresentPhase implements orchestration.ResultPresenter.
func (CLIResultPresenter) PresentPhase(out io.Writer, res bench.Result) {
	DisplayPhaseResult(out, res)
}

// CLIProgressReporter draws a spinner on Out for each phase.
type CLIProgressReporter struct {
	Out io.Writer
}

// StartPhase implements orchestration.ProgressReporter.
func (r CLIProgressReporter) StartPhase(phase bench.Phase, total int) (bench.ProgressFunc, func()) {
	p := StartPhaseProgress(r.Out, string(phase), total)
	return p.Update, p.Stop
}
