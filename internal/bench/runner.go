package bench

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/parbench/internal/errors"
)

// Phase names a runner.
type Phase string

const (
	Sequential Phase = "sequential"
	Parallel   Phase = "parallel"
)

// Result is the timing of one completed phase.
type Result struct {
	Phase   Phase
	Tasks   int
	Elapsed time.Duration
	// CPUPercent is system-wide utilisation over the phase, 0 when not sampled.
	CPUPercent float64
}

// Seconds returns the elapsed wall-clock time in seconds.
func (r Result) Seconds() float64 { return r.Elapsed.Seconds() }

// PerTask returns the average elapsed time per task.
func (r Result) PerTask() time.Duration {
	if r.Tasks == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Tasks)
}

// RunSequential runs task n times on the calling goroutine and reports the
// wall-clock time of the whole loop.
func RunSequential(ctx context.Context, n int, task Task, opts ...Option) (Result, error) {
	if err := validate(n, task); err != nil {
		return Result{}, err
	}
	o := newOptions(opts)
	span := startSpan(ctx, o, Sequential, n)
	defer span.End()

	o.sampleCPU()
	start := o.now()
	for i := range n {
		if err := runTask(Sequential, i, task); err != nil {
			failSpan(span, err)
			return Result{}, err
		}
		o.report(i+1, n)
	}
	return finish(o, span, Sequential, n, start), nil
}

// RunParallel starts n goroutines that each run task once and waits for all of
// them before taking the end timestamp. The first task failure is returned
// after every goroutine has finished.
func RunParallel(ctx context.Context, n int, task Task, opts ...Option) (Result, error) {
	if err := validate(n, task); err != nil {
		return Result{}, err
	}
	o := newOptions(opts)
	span := startSpan(ctx, o, Parallel, n)
	defer span.End()

	var (
		g    errgroup.Group
		done atomic.Int64
	)
	o.sampleCPU()
	start := o.now()
	for i := range n {
		g.Go(func() error {
			if err := runTask(Parallel, i, task); err != nil {
				return err
			}
			o.report(int(done.Add(1)), n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		failSpan(span, err)
		return Result{}, err
	}
	return finish(o, span, Parallel, n, start), nil
}

func validate(n int, task Task) error {
	if n < 1 {
		return apperrors.ValidationError{Field: "tasks", Message: "must be at least 1"}
	}
	if task == nil {
		return apperrors.ValidationError{Field: "task", Message: "must not be nil"}
	}
	return nil
}

// runTask converts a panic in task into a TaskPanicError.
func runTask(phase Phase, index int, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &apperrors.TaskPanicError{
				Phase: string(phase),
				Index: index,
				Value: r,
				Stack: debug.Stack(),
			}
		}
	}()
	task.Run()
	return nil
}

func startSpan(ctx context.Context, o options, phase Phase, n int) trace.Span {
	_, span := o.tracer.Start(ctx, "bench."+string(phase),
		trace.WithAttributes(
			attribute.String("parbench.phase", string(phase)),
			attribute.Int("parbench.tasks", n),
		),
	)
	return span
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func finish(o options, span trace.Span, phase Phase, n int, start time.Time) Result {
	elapsed := max(o.now().Sub(start), 0)
	res := Result{
		Phase:      phase,
		Tasks:      n,
		Elapsed:    elapsed,
		CPUPercent: o.sampleCPU(),
	}
	span.SetAttributes(attribute.Float64("parbench.elapsed_seconds", res.Seconds()))
	span.SetStatus(codes.Ok, "")
	return res
}
