package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agbru/parbench/internal/bench"
	"github.com/agbru/parbench/internal/cli"
	"github.com/agbru/parbench/internal/config"
	apperrors "github.com/agbru/parbench/internal/errors"
	"github.com/agbru/parbench/internal/hashwork"
	"github.com/agbru/parbench/internal/logging"
	"github.com/agbru/parbench/internal/metrics"
	"github.com/agbru/parbench/internal/orchestration"
	"github.com/agbru/parbench/internal/sysinfo"
)

// Application represents one benchmark run.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger

	// Task replaces the hashing workload, e.g. with a counter in tests.
	Task bench.Task
	// Parallelism reports the host's usable core count.
	Parallelism func() int
	// Sampler measures CPU utilisation over each phase.
	Sampler bench.CPUSampler

	presenter orchestration.ResultPresenter
	memory    *metrics.MemoryCollector
	recorder  *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithTask runs task in both phases instead of the configured hash workload.
func WithTask(task bench.Task) AppOption {
	return func(a *Application) { a.Task = task }
}

// WithLogger sets a custom logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithParallelism overrides host core detection.
func WithParallelism(fn func() int) AppOption {
	return func(a *Application) { a.Parallelism = fn }
}

// WithCPUSampler overrides the CPU utilisation sampler.
func WithCPUSampler(fn bench.CPUSampler) AppOption {
	return func(a *Application) { a.Sampler = fn }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "parbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Config:      cfg,
		ErrWriter:   errWriter,
		Parallelism: sysinfo.Parallelism,
		Sampler:     sysinfo.CPUPercent,
		presenter:   cli.CLIResultPresenter{},
		memory:      metrics.NewMemoryCollector(),
		recorder:    metrics.NewRecorder(),
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		noColor := os.Getenv("NO_COLOR") != "" || !cli.IsTerminal(errWriter)
		app.Logger = logging.NewConsoleLogger(errWriter, "parbench", logging.ParseLevel(cfg.Verbose), noColor)
	}
	return app, nil
}

// Run executes the sequential phase and then the parallel phase, printing the
// banner and one timing line per phase to out. It returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	workload, err := hashwork.New(a.Config.Algo, a.Config.Iterations)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	task := a.Task
	if task == nil {
		task = bench.TaskFunc(workload.Task())
	}

	cores := max(a.Parallelism(), 1)
	n := a.Config.Tasks
	if n == 0 {
		n = cores
	}
	a.logHost(n, workload)

	orch := a.orchestrator(workload)
	a.presenter.PresentBanner(out, n, cores)

	seq, err := orch.RunPhase(ctx, bench.Sequential, n, task)
	if err != nil {
		return a.fail(bench.Sequential, err)
	}
	a.presenter.PresentPhase(out, seq)

	par, err := orch.RunPhase(ctx, bench.Parallel, n, task)
	if err != nil {
		return a.fail(bench.Parallel, err)
	}
	a.presenter.PresentPhase(out, par)

	cmp := cli.Comparison{Algorithm: workload.Algorithm.Name, Sequential: seq, Parallel: par}
	a.recorder.SetSpeedup(cmp.Speedup())
	a.Logger.Info("benchmark complete",
		logging.Int("tasks", n),
		logging.Float64("speedup", cmp.Speedup()),
		logging.Float64("efficiency_percent", cmp.Efficiency()),
	)

	if a.Config.Details {
		fmt.Fprintln(a.ErrWriter)
		cli.DisplayComparisonTable(a.ErrWriter, cmp)
	}

	if a.Config.MetricsFile != "" {
		if err := a.recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			err = apperrors.WrapError(err, "writing metrics to %s", a.Config.MetricsFile)
			a.Logger.Error("metrics export failed", err)
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
	}

	return apperrors.ExitSuccess
}

func (a *Application) orchestrator(w hashwork.Workload) *orchestration.Orchestrator {
	var progress orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if a.Config.Progress && cli.IsTerminal(a.ErrWriter) {
		progress = cli.CLIProgressReporter{Out: a.ErrWriter}
	}
	return &orchestration.Orchestrator{
		Logger:   a.Logger,
		Progress: progress,
		Sampler:  a.Sampler,
		Memory:   a.memory,
		Recorder: a.recorder,
		Workload: w,
	}
}

// fail reports a failed phase and maps it to an exit code. No timing line is
// printed for the failed phase or any phase after it.
func (a *Application) fail(phase bench.Phase, err error) int {
	a.Logger.Error("benchmark phase failed", err, logging.String("phase", string(phase)))
	fmt.Fprintf(a.ErrWriter, "Error: %s phase failed: %v\n", phase, err)

	var tpe *apperrors.TaskPanicError
	if a.Config.Verbose && errors.As(err, &tpe) {
		fmt.Fprintf(a.ErrWriter, "%s\n", tpe.Stack)
	}
	return apperrors.ExitCodeFor(err)
}

func (a *Application) logHost(n int, w hashwork.Workload) {
	host := sysinfo.Describe()
	a.Logger.Debug("host",
		logging.String("cpu", host.Model),
		logging.Int("logical_cores", host.LogicalCores),
		logging.Int("physical_cores", host.PhysicalCores),
		logging.Int("gomaxprocs", host.GOMAXPROCS),
		logging.Field{Key: "cpu_features", Value: host.Features},
		logging.Float64("mem_percent", sysinfo.Sample().MemPercent),
	)
	a.Logger.Debug("workload",
		logging.Int("tasks", n),
		logging.String("algorithm", w.Algorithm.Name),
		logging.Int("iterations", w.Iterations),
	)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
