package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/parbench/internal/bench"
	"github.com/agbru/parbench/internal/cli/mocks"
)

// withSpinner swaps the spinner factory for the duration of a test.
func withSpinner(t *testing.T, s Spinner) {
	t.Helper()
	orig := newSpinner
	newSpinner = func(io.Writer) Spinner { return s }
	t.Cleanup(func() { newSpinner = orig })
}

func TestPhaseProgress_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSpinner(ctrl)
	withSpinner(t, s)

	gomock.InOrder(
		s.EXPECT().UpdateSuffix(" sequential: 0/3 tasks"),
		s.EXPECT().Start(),
		s.EXPECT().UpdateSuffix(" sequential: 1/3 tasks"),
		s.EXPECT().UpdateSuffix(" sequential: 3/3 tasks"),
		s.EXPECT().Stop(),
	)

	p := StartPhaseProgress(&bytes.Buffer{}, "sequential", 3)
	p.Update(1, 3)
	p.Update(3, 3)
	p.Stop()
}

func TestCLIProgressReporter_StartPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSpinner(ctrl)
	withSpinner(t, s)

	gomock.InOrder(
		s.EXPECT().UpdateSuffix(" parallel: 0/2 tasks"),
		s.EXPECT().Start(),
		s.EXPECT().UpdateSuffix(" parallel: 2/2 tasks"),
		s.EXPECT().Stop(),
	)

	update, stop := CLIProgressReporter{Out: &bytes.Buffer{}}.StartPhase(bench.Parallel, 2)
	update(2, 2)
	stop()
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
