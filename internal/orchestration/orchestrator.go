package orchestration

import (
	"context"

	"github.com/agbru/parbench/internal/bench"
	"github.com/agbru/parbench/internal/hashwork"
	"github.com/agbru/parbench/internal/logging"
	"github.com/agbru/parbench/internal/metrics"
)

// Orchestrator runs phases with progress display and bookkeeping.
type Orchestrator struct {
	Logger   logging.Logger
	Progress ProgressReporter
	Sampler  bench.CPUSampler
	Memory   *metrics.MemoryCollector
	Recorder *metrics.Recorder
	Workload hashwork.Workload
}

// RunPhase executes phase with n units of task and returns its timing. Failed
// phases are returned unrecorded.
func (o *Orchestrator) RunPhase(ctx context.Context, phase bench.Phase, n int, task bench.Task) (bench.Result, error) {
	run := bench.RunSequential
	if phase == bench.Parallel {
		run = bench.RunParallel
	}

	opts := []bench.Option{bench.WithCPUSampler(o.Sampler)}
	update, stop := o.progress().StartPhase(phase, n)
	if update != nil {
		opts = append(opts, bench.WithProgress(update))
	}

	log := o.Logger.With(logging.String("phase", string(phase)))
	log.Debug("phase starting", logging.Int("tasks", n))

	before := o.Memory.Snapshot()
	res, err := run(ctx, n, task, opts...)
	stop()
	if err != nil {
		log.Error("phase failed", err)
		return bench.Result{}, err
	}
	mem := o.Memory.Snapshot().Since(before)

	log.Debug("phase complete",
		logging.Duration("elapsed", res.Elapsed),
		logging.Duration("per_task", res.PerTask()),
		logging.Float64("cpu_percent", res.CPUPercent),
		logging.Uint64("allocated_bytes", mem.Allocated),
		logging.Int("gc_cycles", int(mem.GCCycles)),
	)
	o.Recorder.ObservePhase(string(phase), o.Workload.Algorithm.Name, n, res.Seconds(), res.CPUPercent, o.Workload.TotalIterations(n))
	return res, nil
}

func (o *Orchestrator) progress() ProgressReporter {
	if o.Progress == nil {
		return NullProgressReporter{}
	}
	return o.Progress
}
