//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner abstracts the terminal spinner so progress display can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation and clears its line.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix holds the spinner lock because the animation goroutine reads Suffix.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(out), spinner.WithHiddenCursor(true))
	return &realSpinner{s}
}

// PhaseProgress shows "<phase>: done/total tasks" next to a spinner.
type PhaseProgress struct {
	spinner Spinner
	label   string
}

// StartPhaseProgress starts a spinner on out for a phase of total tasks.
func StartPhaseProgress(out io.Writer, label string, total int) *PhaseProgress {
	p := &PhaseProgress{spinner: newSpinner(out), label: label}
	p.spinner.UpdateSuffix(p.suffix(0, total))
	p.spinner.Start()
	return p
}

// Update matches bench.ProgressFunc and may be called concurrently.
func (p *PhaseProgress) Update(done, total int) {
	p.spinner.UpdateSuffix(p.suffix(done, total))
}

// Stop halts the spinner.
func (p *PhaseProgress) Stop() {
	p.spinner.Stop()
}

func (p *PhaseProgress) suffix(done, total int) string {
	return fmt.Sprintf(" %s: %d/%d tasks", p.label, done, total)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
