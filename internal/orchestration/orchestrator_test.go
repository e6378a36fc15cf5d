package orchestration

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/parbench/internal/bench"
	apperrors "github.com/agbru/parbench/internal/errors"
	"github.com/agbru/parbench/internal/hashwork"
	"github.com/agbru/parbench/internal/logging"
	"github.com/agbru/parbench/internal/metrics"
)

type recordingReporter struct {
	started []bench.Phase
	updates atomic.Int32
	stops   int
}

func (r *recordingReporter) StartPhase(phase bench.Phase, _ int) (bench.ProgressFunc, func()) {
	r.started = append(r.started, phase)
	return func(int, int) { r.updates.Add(1) }, func() { r.stops++ }
}

func newOrchestrator(t *testing.T, reporter ProgressReporter) *Orchestrator {
	t.Helper()
	w, err := hashwork.New(hashwork.SHA256, 10)
	if err != nil {
		t.Fatal(err)
	}
	return &Orchestrator{
		Logger:   logging.NewNopLogger(),
		Progress: reporter,
		Sampler:  func() float64 { return 50 },
		Memory:   metrics.NewMemoryCollector(),
		Recorder: metrics.NewRecorder(),
		Workload: w,
	}
}

func TestOrchestrator_RunPhase(t *testing.T) {
	t.Parallel()
	for _, phase := range []bench.Phase{bench.Sequential, bench.Parallel} {
		t.Run(string(phase), func(t *testing.T) {
			t.Parallel()
			reporter := &recordingReporter{}
			o := newOrchestrator(t, reporter)
			var calls atomic.Int32

			res, err := o.RunPhase(context.Background(), phase, 3, bench.TaskFunc(func() { calls.Add(1) }))
			if err != nil {
				t.Fatalf("RunPhase: %v", err)
			}
			if res.Phase != phase || res.Tasks != 3 {
				t.Errorf("result = %+v", res)
			}
			if res.CPUPercent != 50 {
				t.Errorf("CPUPercent = %v, want 50", res.CPUPercent)
			}
			if calls.Load() != 3 {
				t.Errorf("task ran %d times, want 3", calls.Load())
			}
			if len(reporter.started) != 1 || reporter.started[0] != phase {
				t.Errorf("started = %v", reporter.started)
			}
			if reporter.updates.Load() != 3 || reporter.stops != 1 {
				t.Errorf("updates = %d, stops = %d", reporter.updates.Load(), reporter.stops)
			}

			expected := `
# HELP parbench_hash_iterations_total Digest rounds computed, by phase and algorithm.
# TYPE parbench_hash_iterations_total counter
parbench_hash_iterations_total{algorithm="sha256",phase="` + string(phase) + `"} 30
`
			if err := testutil.GatherAndCompare(o.Recorder.Gatherer(), strings.NewReader(expected), "parbench_hash_iterations_total"); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestOrchestrator_RunPhaseFailure(t *testing.T) {
	t.Parallel()
	reporter := &recordingReporter{}
	o := newOrchestrator(t, reporter)

	_, err := o.RunPhase(context.Background(), bench.Parallel, 2, bench.TaskFunc(func() { panic("boom") }))
	if !errors.Is(err, apperrors.ErrTaskPanicked) {
		t.Fatalf("err = %v, want ErrTaskPanicked", err)
	}
	if reporter.stops != 1 {
		t.Errorf("progress stopped %d times, want 1", reporter.stops)
	}
	n, err := testutil.GatherAndCount(o.Recorder.Gatherer(), "parbench_phase_duration_seconds")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("recorded %d duration samples for a failed phase", n)
	}
}

func TestOrchestrator_NilProgress(t *testing.T) {
	t.Parallel()
	o := newOrchestrator(t, nil)
	if _, err := o.RunPhase(context.Background(), bench.Sequential, 1, bench.TaskFunc(func() {})); err != nil {
		t.Fatalf("RunPhase: %v", err)
	}
}

func TestNullProgressReporter(t *testing.T) {
	update, stop := NullProgressReporter{}.StartPhase(bench.Sequential, 4)
	if update != nil {
		t.Error("update should be nil")
	}
	stop()
}
